package hours

// Resolution source markers: which layer of the schedule decided the day.
const (
	TypeClosure = "closure"
	TypeSpecial = "special"
	TypeRegular = "regular"
)

// DayResolution is the effective schedule for one concrete date after
// applying closures, then special hours, then the regular week.
type DayResolution struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Reason string `json:"reason,omitempty"`
	Type   string `json:"type"`
}

// ScheduleDay pairs a date with its resolution. Ranges are returned as an
// ordered slice so consumers see ascending dates.
type ScheduleDay struct {
	Date       string        `json:"date"`
	Resolution DayResolution `json:"resolution"`
}

// NextOpen points at the first upcoming day the venue opens.
type NextOpen struct {
	Date string  `json:"date"`
	Time string  `json:"time"`
	Day  Weekday `json:"day"`
}

// OpenStatus is the cached "is the venue open right now" snapshot kept
// under status:{venue} and refreshed periodically.
type OpenStatus struct {
	Venue     string    `json:"venue"`
	Open      bool      `json:"open"`
	Until     string    `json:"until,omitempty"`
	OpensAt   *NextOpen `json:"opensAt,omitempty"`
	CheckedAt string    `json:"checkedAt"`
}
