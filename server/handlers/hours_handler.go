package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"vh-server/config"
	"vh-server/models/hours"
	services "vh-server/service"
)

const (
	VENUE_QUERY_ARG = "venue"
	DATE_QUERY_ARG  = "date"
	RANGE_QUERY_ARG = "range"
)

// HoursHandler exposes the hours engine over HTTP: the combined schedule
// query plus the five mutation endpoints.
type HoursHandler struct {
	hoursService *services.HoursService
}

func NewHoursHandler(hoursService *services.HoursService) *HoursHandler {
	return &HoursHandler{hoursService: hoursService}
}

// updateRegularRequest is the body for PUT /v1/hours/regular.
type updateRegularRequest struct {
	Venue   string                    `json:"venue"`
	Regular map[string]hours.DayHours `json:"regular"`
}

// specialHoursRequest is the body for POST /v1/hours/special.
type specialHoursRequest struct {
	Venue  string `json:"venue"`
	Date   string `json:"date"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Reason string `json:"reason"`
}

// closureRequest is the body for POST /v1/hours/closures. AllDay defaults
// to true when omitted.
type closureRequest struct {
	Venue  string `json:"venue"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	AllDay *bool  `json:"allDay"`
}

// GetHours handles GET /v1/hours. One endpoint, three shapes:
// with ?date= a single-day resolution, with ?range= an ordered multi-day
// schedule, with neither the full stored record.
func (h *HoursHandler) GetHours(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	venue := venueArg(vals)

	if date := vals.Get(DATE_QUERY_ARG); date != "" {
		view, err := h.hoursService.GetDay(venue, date)
		if err != nil {
			writeServiceError(w, "get hours", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
		return
	}

	if rangeArg := vals.Get(RANGE_QUERY_ARG); rangeArg != "" {
		days, err := parseArgInt(vals, RANGE_QUERY_ARG)
		if err != nil {
			http.Error(w, "Invalid argument "+RANGE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		schedule, err := h.hoursService.GetRange(venue, days)
		if err != nil {
			writeServiceError(w, "get hours range", err)
			return
		}
		writeJSON(w, http.StatusOK, schedule)
		return
	}

	rec, err := h.hoursService.GetSchedule(venue)
	if err != nil {
		writeServiceError(w, "get schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"venue":    rec.Venue,
		"timezone": rec.Timezone,
		"regular":  rec.Regular,
		"special":  rec.Special,
		"closures": rec.Closures,
	})
}

// GetStatus handles GET /v1/hours/status.
func (h *HoursHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	venue := venueArg(r.URL.Query())
	status, err := h.hoursService.GetOpenStatus(venue)
	if err != nil {
		writeServiceError(w, "get status", err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// UpdateRegularHours handles PUT /v1/hours/regular.
func (h *HoursHandler) UpdateRegularHours(w http.ResponseWriter, r *http.Request) {
	var req updateRegularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	rec, err := h.hoursService.UpdateRegularHours(req.Venue, req.Regular)
	if err != nil {
		writeServiceError(w, "update regular hours", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"regular": rec.Regular,
		"version": rec.Version,
	})
}

// SetSpecialHours handles POST /v1/hours/special.
func (h *HoursHandler) SetSpecialHours(w http.ResponseWriter, r *http.Request) {
	var req specialHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	entry, err := h.hoursService.SetSpecialHours(req.Venue, req.Date, req.Open, req.Close, req.Reason)
	if err != nil {
		writeServiceError(w, "set special hours", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"date":    req.Date,
		"special": entry,
	})
}

// RemoveSpecialHours handles DELETE /v1/hours/special. Removing an entry
// that was never set still reports success.
func (h *HoursHandler) RemoveSpecialHours(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	if err := h.hoursService.RemoveSpecialHours(vals.Get(VENUE_QUERY_ARG), vals.Get(DATE_QUERY_ARG)); err != nil {
		writeServiceError(w, "remove special hours", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// SetClosure handles POST /v1/hours/closures.
func (h *HoursHandler) SetClosure(w http.ResponseWriter, r *http.Request) {
	var req closureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	allDay := true
	if req.AllDay != nil {
		allDay = *req.AllDay
	}
	entry, err := h.hoursService.SetClosure(req.Venue, req.Date, req.Reason, allDay)
	if err != nil {
		writeServiceError(w, "set closure", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"date":    req.Date,
		"closure": entry,
	})
}

// RemoveClosure handles DELETE /v1/hours/closures.
func (h *HoursHandler) RemoveClosure(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	if err := h.hoursService.RemoveClosure(vals.Get(VENUE_QUERY_ARG), vals.Get(DATE_QUERY_ARG)); err != nil {
		writeServiceError(w, "remove closure", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Ping handles GET /ping
func (h *HoursHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func venueArg(vals url.Values) string {
	if v := vals.Get(VENUE_QUERY_ARG); v != "" {
		return v
	}
	return config.DEFAULT_VENUE
}

func parseArgInt(vals url.Values, name string) (int, error) {
	s := vals.Get(name)
	return strconv.Atoi(s)
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("Error during %s: %v", op, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
