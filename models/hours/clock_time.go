package hours

import "time"

// ValidClockTime reports whether s is an "HH:MM" wall-clock value.
// "24:00" is accepted as an end-of-day close time.
func ValidClockTime(s string) bool {
	if s == "24:00" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
