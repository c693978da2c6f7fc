package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vh-server/models/event"
	services "vh-server/service"
)

const (
	UPCOMING_QUERY_ARG = "upcoming"
	LIMIT_QUERY_ARG    = "limit"
	OFFSET_QUERY_ARG   = "offset"
)

// EventHandler exposes the per-venue events document over HTTP.
type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /v1/events.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	venue := venueArg(vals)

	upcoming := false
	if v := vals.Get(UPCOMING_QUERY_ARG); v != "" {
		upcoming, _ = strconv.ParseBool(v)
	}
	offset := 0
	if v := vals.Get(OFFSET_QUERY_ARG); v != "" {
		parsed, err := parseArgInt(vals, OFFSET_QUERY_ARG)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid argument "+OFFSET_QUERY_ARG, http.StatusBadRequest)
			return
		}
		offset = parsed
	}
	limit := 0
	if v := vals.Get(LIMIT_QUERY_ARG); v != "" {
		parsed, err := parseArgInt(vals, LIMIT_QUERY_ARG)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid argument "+LIMIT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := h.eventService.ListEvents(venue, upcoming, offset, limit)
	if err != nil {
		writeServiceError(w, "list events", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// UpsertEvent handles POST /v1/events.
func (h *EventHandler) UpsertEvent(w http.ResponseWriter, r *http.Request) {
	var e event.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	venue := e.Venue
	if venue == "" {
		venue = venueArg(r.URL.Query())
	}
	saved, err := h.eventService.UpsertEvent(venue, e)
	if err != nil {
		writeServiceError(w, "upsert event", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"event":   saved,
	})
}

// DeleteEvent handles DELETE /v1/events/{id}.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	venue := venueArg(r.URL.Query())
	if err := h.eventService.DeleteEvent(venue, id); err != nil {
		writeServiceError(w, "delete event", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
