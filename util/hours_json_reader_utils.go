package util

import (
	"encoding/json"
	"fmt"
	"os"

	"vh-server/models/event"
	"vh-server/models/hours"
)

// ReadVenueHoursRecordFromJSON loads a VenueHoursRecord from JSON on disk.
func ReadVenueHoursRecordFromJSON(filePath string) (*hours.VenueHoursRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var rec hours.VenueHoursRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueHoursRecord: %w", err)
	}
	return &rec, nil
}

// ReadEventsFromJSON loads a venue's events document from JSON on disk.
func ReadEventsFromJSON(filePath string) ([]event.Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}
	return events, nil
}
