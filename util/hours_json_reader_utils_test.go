package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadVenueHoursRecordFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"venue": "farewell",
		"timezone": "America/Chicago",
		"regular": {
			"monday": {"open": "18:00", "close": "02:00", "closed": false}
		},
		"special": {
			"2025-07-04": {"open": "12:00", "close": "04:00", "reason": "Block party", "created": "2025-01-01T00:00:00Z"}
		},
		"closures": {
			"2025-12-25": {"reason": "Holiday", "allDay": true, "created": "2025-01-01T00:00:00Z"}
		},
		"version": 3,
		"created": "2025-01-01T00:00:00Z"
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	rec, err := ReadVenueHoursRecordFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Venue != "farewell" {
		t.Errorf("Expected venue 'farewell', got %s", rec.Venue)
	}
	if rec.Version != 3 {
		t.Errorf("Expected version 3, got %d", rec.Version)
	}
	if rec.Regular["monday"].Open != "18:00" {
		t.Errorf("Expected monday open '18:00', got %s", rec.Regular["monday"].Open)
	}
	if rec.Closures["2025-12-25"].Reason != "Holiday" {
		t.Errorf("Expected closure reason 'Holiday', got %s", rec.Closures["2025-12-25"].Reason)
	}
}

func TestReadVenueHoursRecordFromJSON_MissingFile(t *testing.T) {
	_, err := ReadVenueHoursRecordFromJSON("/no/such/file.json")
	if err == nil {
		t.Error("Expected error for missing file, got none")
	}
}

func TestReadEventsFromJSON(t *testing.T) {
	content := `[
		{"id": "1", "title": "Doom Night", "date": "2025-02-01", "venue": "howdy", "created": "2025-01-01T00:00:00Z"}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	events, err := ReadEventsFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Title != "Doom Night" {
		t.Errorf("Expected title 'Doom Night', got %s", events[0].Title)
	}
}
