package services

import (
	"time"

	"vh-server/models/hours"
)

// Schedule resolution: pure functions of (record, date), no I/O. A date
// resolves through exactly one of three layers, in precedence order:
// closures, then special hours, then the regular week.

// ResolveDate computes the effective schedule for one calendar date.
// The date string must already be validated (see hours.ParseDate); date
// math is calendar-naive and ignores the record's timezone field.
func ResolveDate(rec *hours.VenueHoursRecord, date string) hours.DayResolution {
	if closure, ok := rec.Closures[date]; ok {
		return hours.DayResolution{
			Closed: true,
			Reason: closure.Reason,
			Type:   hours.TypeClosure,
		}
	}

	if special, ok := rec.Special[date]; ok {
		return hours.DayResolution{
			Closed: false,
			Open:   special.Open,
			Close:  special.Close,
			Reason: special.Reason,
			Type:   hours.TypeSpecial,
		}
	}

	day, _ := hours.ParseDate(date)
	regular := rec.Regular[hours.WeekdayOf(day)]
	if regular.Closed {
		return hours.DayResolution{Closed: true, Type: hours.TypeRegular}
	}
	return hours.DayResolution{
		Closed: false,
		Open:   regular.Open,
		Close:  regular.Close,
		Type:   hours.TypeRegular,
	}
}

// IsOpenAt reports whether the venue is open at the given wall-clock
// instant under the day's resolution. When close < open the window wraps
// past midnight (e.g. 18:00-02:00), so the instant matches either side.
func IsOpenAt(res hours.DayResolution, now time.Time) bool {
	if res.Closed {
		return false
	}
	hhmm := now.Format("15:04")
	if res.Close < res.Open {
		return hhmm >= res.Open || hhmm <= res.Close
	}
	return res.Open <= hhmm && hhmm <= res.Close
}

// ResolveRange resolves consecutive dates starting at start, returning
// them in ascending order. Each entry matches what ResolveDate would
// return standalone.
func ResolveRange(rec *hours.VenueHoursRecord, start time.Time, days int) []hours.ScheduleDay {
	out := make([]hours.ScheduleDay, 0, days)
	for i := 0; i < days; i++ {
		date := hours.FormatDate(start.AddDate(0, 0, i))
		out = append(out, hours.ScheduleDay{
			Date:       date,
			Resolution: ResolveDate(rec, date),
		})
	}
	return out
}

// nextOpenWindowDays bounds the forward scan for the next open day.
const nextOpenWindowDays = 7

// NextOpenTime scans forward from the given day, inclusive, for the first
// date the venue opens. Returns nil when every day in the window is
// closed.
func NextOpenTime(rec *hours.VenueHoursRecord, from time.Time) *hours.NextOpen {
	for i := 0; i < nextOpenWindowDays; i++ {
		day := from.AddDate(0, 0, i)
		date := hours.FormatDate(day)
		res := ResolveDate(rec, date)
		if !res.Closed {
			return &hours.NextOpen{
				Date: date,
				Time: res.Open,
				Day:  hours.WeekdayOf(day),
			}
		}
	}
	return nil
}
