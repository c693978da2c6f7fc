package hours

import (
	"fmt"
	"time"
)

// Weekday is a lowercase English day name used to key regular schedules.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists every weekday in calendar order, monday first.
var AllWeekdays = []Weekday{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// ParseWeekday validates a raw day-name key coming from the outside.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range AllWeekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf maps a calendar time to its schedule key (Go's time.Weekday
// uses Sunday=0; the names here are what we key on).
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date string and returns its calendar
// day. Parsing is calendar-naive: no timezone conversion is applied.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a calendar day back into the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
