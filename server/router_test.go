package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"vh-server/dao/redis"
	"vh-server/db"
	"vh-server/server/handlers"
	services "vh-server/service"
	"vh-server/util"
)

// newTestRouter wires the full stack over the in-memory Redis client with
// a fixed clock (Monday 2025-01-06, 15:00).
func newTestRouter() *mux.Router {
	client := db.NewMockRedisClient(context.Background())
	clock := util.FixedClock{Instant: time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC)}

	hoursDao := redis.NewRedisHoursDAO(client)
	eventsDao := redis.NewRedisEventsDAO(client)
	hoursService := services.NewHoursService(hoursDao, clock)
	eventService := services.NewEventService(eventsDao, clock)

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		handlers.NewHoursHandler(hoursService),
		handlers.NewEventHandler(eventService),
		muxRouter,
	)
	appRouter.RegisterRoutes()
	return muxRouter
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{"Ping Route", "GET", "/ping", http.StatusOK},
		{"Get Hours", "GET", "/v1/hours?venue=farewell", http.StatusOK},
		{"Get Hours With Date", "GET", "/v1/hours?venue=farewell&date=2025-01-06", http.StatusOK},
		{"Get Hours With Range", "GET", "/v1/hours?venue=farewell&range=3", http.StatusOK},
		{"Get Hours Bad Range", "GET", "/v1/hours?venue=farewell&range=soon", http.StatusBadRequest},
		{"Get Status", "GET", "/v1/hours/status?venue=howdy", http.StatusOK},
		{"List Events", "GET", "/v1/events?venue=farewell", http.StatusOK},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound},
		{"Wrong Method", "POST", "/ping", http.StatusMethodNotAllowed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := doRequest(t, router, test.method, test.path, "")
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
		})
	}
}

func TestRouter_HoursMutationFlow(t *testing.T) {
	router := newTestRouter()

	// Set a closure for Christmas.
	rr := doRequest(t, router, "POST", "/v1/hours/closures",
		`{"venue":"farewell","date":"2025-12-25","reason":"Holiday"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var closureResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &closureResp))
	assert.Equal(t, true, closureResp["success"])

	// The day now resolves closed with the closure reason.
	rr = doRequest(t, router, "GET", "/v1/hours?venue=farewell&date=2025-12-25", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var dayResp struct {
		Resolution struct {
			Closed bool   `json:"closed"`
			Reason string `json:"reason"`
			Type   string `json:"type"`
		} `json:"resolution"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dayResp))
	assert.True(t, dayResp.Resolution.Closed)
	assert.Equal(t, "Holiday", dayResp.Resolution.Reason)
	assert.Equal(t, "closure", dayResp.Resolution.Type)

	// Remove it; the day falls back to the regular schedule.
	rr = doRequest(t, router, "DELETE", "/v1/hours/closures?venue=farewell&date=2025-12-25", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, "GET", "/v1/hours?venue=farewell&date=2025-12-25", "")
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dayResp))
	assert.False(t, dayResp.Resolution.Closed)
	assert.Equal(t, "regular", dayResp.Resolution.Type)
}

func TestRouter_ValidationErrors(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"Special missing venue", "POST", "/v1/hours/special", `{"date":"2025-07-04","open":"12:00","close":"04:00"}`},
		{"Special bad date", "POST", "/v1/hours/special", `{"venue":"farewell","date":"july 4","open":"12:00","close":"04:00"}`},
		{"Closure missing date", "POST", "/v1/hours/closures", `{"venue":"farewell"}`},
		{"Regular bad day", "PUT", "/v1/hours/regular", `{"venue":"farewell","regular":{"someday":{"open":"18:00","close":"02:00"}}}`},
		{"Malformed JSON", "POST", "/v1/hours/special", `{"venue":`},
		{"Bad single date", "GET", "/v1/hours?venue=farewell&date=12-25-2025", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := doRequest(t, router, test.method, test.path, test.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestRouter_DefaultVenueFallback(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, "GET", "/v1/hours", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "farewell", resp["venue"])
	assert.Equal(t, "America/Chicago", resp["timezone"])
}

func TestRouter_EventsFlow(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, "POST", "/v1/events",
		`{"venue":"howdy","title":"Doom Night","date":"2025-02-01"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	var upsertResp struct {
		Success bool `json:"success"`
		Event   struct {
			ID string `json:"id"`
		} `json:"event"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &upsertResp))
	assert.True(t, upsertResp.Success)
	assert.NotEmpty(t, upsertResp.Event.ID)

	rr = doRequest(t, router, "GET", "/v1/events?venue=howdy&upcoming=true", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var events []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 1)

	rr = doRequest(t, router, "DELETE", "/v1/events/"+upsertResp.Event.ID+"?venue=howdy", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, "GET", "/v1/events?venue=howdy", "")
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Empty(t, events)
}
