package hours

import (
	"fmt"
	"time"
)

// DayHours is one weekday's entry in the regular schedule. Open/Close are
// "HH:MM" strings; when Closed is true they carry no meaning.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// SpecialHours overrides the regular schedule for one exact date without
// closing the venue.
type SpecialHours struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Reason  string `json:"reason,omitempty"`
	Created string `json:"created"`
}

// Closure marks the venue fully closed on one exact date. Highest
// precedence: it wins over special and regular entries for that date.
type Closure struct {
	Reason  string `json:"reason,omitempty"`
	AllDay  bool   `json:"allDay"`
	Created string `json:"created"`
}

// VenueHoursRecord is the single persisted document per venue, stored as
// JSON under the key hours:{venue}.
type VenueHoursRecord struct {
	Venue       string                  `json:"venue"`
	Timezone    string                  `json:"timezone"`
	Regular     map[Weekday]DayHours    `json:"regular"`
	Special     map[string]SpecialHours `json:"special"`
	Closures    map[string]Closure      `json:"closures"`
	LastUpdated string                  `json:"lastUpdated"`
	Version     int                     `json:"version"`
	Created     string                  `json:"created"`
}

// Default schedule values used when a venue has no stored record yet.
const (
	DefaultOpen        = "18:00"
	DefaultClose       = "02:00"
	DefaultSundayClose = "24:00"
	DefaultTimezone    = "America/Chicago"
)

// DefaultRecord builds the schedule a venue gets before anything has been
// written for it. The default is not persisted until the first mutation.
func DefaultRecord(venue string, now time.Time) *VenueHoursRecord {
	regular := make(map[Weekday]DayHours, len(AllWeekdays))
	for _, d := range AllWeekdays {
		entry := DayHours{Open: DefaultOpen, Close: DefaultClose}
		if d == Sunday {
			entry.Close = DefaultSundayClose
		}
		regular[d] = entry
	}
	return &VenueHoursRecord{
		Venue:    venue,
		Timezone: DefaultTimezone,
		Regular:  regular,
		Special:  make(map[string]SpecialHours),
		Closures: make(map[string]Closure),
		Version:  1,
		Created:  now.Format(time.RFC3339),
	}
}

// Touch records a mutation: bumps the version and stamps lastUpdated.
// Every write path goes through here exactly once.
func (r *VenueHoursRecord) Touch(now time.Time) {
	r.LastUpdated = now.Format(time.RFC3339)
	r.Version++
}

// MergeRegular folds a partial weekly schedule into the record, leaving
// untouched days as they were.
func (r *VenueHoursRecord) MergeRegular(partial map[Weekday]DayHours) {
	if r.Regular == nil {
		r.Regular = make(map[Weekday]DayHours, len(AllWeekdays))
	}
	for d, entry := range partial {
		r.Regular[d] = entry
	}
}

func (r *VenueHoursRecord) ToString() string {
	return fmt.Sprintf("VenueHoursRecord(venue=%s, version=%d, special=%d, closures=%d)",
		r.Venue, r.Version, len(r.Special), len(r.Closures))
}
