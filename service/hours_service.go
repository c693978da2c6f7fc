package services

import (
	"log"
	"time"

	"vh-server/dao/redis"
	"vh-server/models/hours"
	"vh-server/util"
)

// HoursService is the query surface over the hours store and resolver:
// it loads records (substituting defaults for venues never written),
// delegates date math to the resolver, and applies the single targeted
// change of each mutation before saving.
type HoursService struct {
	hoursDao *redis.RedisHoursDAO
	clock    util.Clock
}

// NewHoursService constructs a HoursService with its dependencies.
func NewHoursService(hoursDao *redis.RedisHoursDAO, clock util.Clock) *HoursService {
	return &HoursService{
		hoursDao: hoursDao,
		clock:    clock,
	}
}

// DayView is the single-date query result: the resolution plus the two
// derived lookups.
type DayView struct {
	Date       string              `json:"date"`
	Resolution hours.DayResolution `json:"resolution"`
	OpenNow    bool                `json:"openNow"`
	NextOpen   *hours.NextOpen     `json:"nextOpen,omitempty"`
}

// loadOrDefault returns the stored record, or a fresh default when the
// venue has never been written. Defaults are not persisted here.
func (hs *HoursService) loadOrDefault(venue string) (*hours.VenueHoursRecord, error) {
	rec, err := hs.hoursDao.LoadHours(venue)
	if err != nil {
		log.Printf("[HoursService] Failed to load hours for venue=%s: %v", venue, err)
		return nil, err
	}
	if rec == nil {
		rec = hours.DefaultRecord(venue, hs.clock.Now())
	}
	return rec, nil
}

// GetSchedule returns the venue's full record: regular week, special
// overrides, closures and timezone, verbatim.
func (hs *HoursService) GetSchedule(venue string) (*hours.VenueHoursRecord, error) {
	return hs.loadOrDefault(venue)
}

// GetDay resolves one date and derives openNow and the next open time.
func (hs *HoursService) GetDay(venue, date string) (*DayView, error) {
	if date == "" {
		return nil, invalidField("date", "required")
	}
	if _, err := hours.ParseDate(date); err != nil {
		return nil, invalidField("date", "expected YYYY-MM-DD")
	}
	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	now := hs.clock.Now()
	res := ResolveDate(rec, date)
	return &DayView{
		Date:       date,
		Resolution: res,
		OpenNow:    IsOpenAt(res, now),
		NextOpen:   NextOpenTime(rec, now),
	}, nil
}

// GetRange resolves the next `days` dates starting today, in ascending
// order.
func (hs *HoursService) GetRange(venue string, days int) ([]hours.ScheduleDay, error) {
	if days <= 0 {
		return nil, invalidField("range", "must be a positive number of days")
	}
	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	return ResolveRange(rec, hs.clock.Now(), days), nil
}

// GetOpenStatus returns the cached open/closed snapshot for a venue,
// computing a fresh one when nothing has been cached yet.
func (hs *HoursService) GetOpenStatus(venue string) (*hours.OpenStatus, error) {
	status, err := hs.hoursDao.GetOpenStatus(venue)
	if err != nil {
		log.Printf("[HoursService] Failed to read open status for venue=%s: %v", venue, err)
		return nil, err
	}
	if status != nil {
		return status, nil
	}
	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	return BuildOpenStatus(rec, hs.clock.Now()), nil
}

// UpdateRegularHours merges a partial weekly schedule into the record.
// Day-name keys are validated before anything is loaded.
func (hs *HoursService) UpdateRegularHours(venue string, partial map[string]hours.DayHours) (*hours.VenueHoursRecord, error) {
	if venue == "" {
		return nil, invalidField("venue", "required")
	}
	if len(partial) == 0 {
		return nil, invalidField("regular", "required")
	}
	typed := make(map[hours.Weekday]hours.DayHours, len(partial))
	for name, entry := range partial {
		day, err := hours.ParseWeekday(name)
		if err != nil {
			return nil, invalidField("regular", err.Error())
		}
		if !entry.Closed {
			if !hours.ValidClockTime(entry.Open) {
				return nil, invalidField("regular", "open must be HH:MM for "+name)
			}
			if !hours.ValidClockTime(entry.Close) {
				return nil, invalidField("regular", "close must be HH:MM for "+name)
			}
		}
		typed[day] = entry
	}

	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	rec.MergeRegular(typed)
	rec.Touch(hs.clock.Now())
	if err := hs.saveRecord(rec, "update regular hours"); err != nil {
		return nil, err
	}
	return rec, nil
}

// SetSpecialHours inserts or replaces the special-hours override for one
// date.
func (hs *HoursService) SetSpecialHours(venue, date, open, close, reason string) (*hours.SpecialHours, error) {
	if venue == "" {
		return nil, invalidField("venue", "required")
	}
	if date == "" {
		return nil, invalidField("date", "required")
	}
	if _, err := hours.ParseDate(date); err != nil {
		return nil, invalidField("date", "expected YYYY-MM-DD")
	}
	if !hours.ValidClockTime(open) {
		return nil, invalidField("open", "must be HH:MM")
	}
	if !hours.ValidClockTime(close) {
		return nil, invalidField("close", "must be HH:MM")
	}

	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	now := hs.clock.Now()
	entry := hours.SpecialHours{
		Open:    open,
		Close:   close,
		Reason:  reason,
		Created: now.Format(time.RFC3339),
	}
	rec.Special[date] = entry
	rec.Touch(now)
	if err := hs.saveRecord(rec, "set special hours"); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveSpecialHours deletes the special-hours override for one date.
// Removing an override that was never set is a no-op success.
func (hs *HoursService) RemoveSpecialHours(venue, date string) error {
	return hs.removeOverride(venue, date, "remove special hours", func(rec *hours.VenueHoursRecord) {
		delete(rec.Special, date)
	})
}

// SetClosure inserts or replaces the closure for one date. Closures take
// precedence over any special or regular entry.
func (hs *HoursService) SetClosure(venue, date, reason string, allDay bool) (*hours.Closure, error) {
	if venue == "" {
		return nil, invalidField("venue", "required")
	}
	if date == "" {
		return nil, invalidField("date", "required")
	}
	if _, err := hours.ParseDate(date); err != nil {
		return nil, invalidField("date", "expected YYYY-MM-DD")
	}

	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return nil, err
	}
	now := hs.clock.Now()
	entry := hours.Closure{
		Reason:  reason,
		AllDay:  allDay,
		Created: now.Format(time.RFC3339),
	}
	rec.Closures[date] = entry
	rec.Touch(now)
	if err := hs.saveRecord(rec, "set closure"); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveClosure deletes the closure for one date. No-op success when
// absent.
func (hs *HoursService) RemoveClosure(venue, date string) error {
	return hs.removeOverride(venue, date, "remove closure", func(rec *hours.VenueHoursRecord) {
		delete(rec.Closures, date)
	})
}

func (hs *HoursService) removeOverride(venue, date, op string, apply func(*hours.VenueHoursRecord)) error {
	if venue == "" {
		return invalidField("venue", "required")
	}
	if date == "" {
		return invalidField("date", "required")
	}
	if _, err := hours.ParseDate(date); err != nil {
		return invalidField("date", "expected YYYY-MM-DD")
	}
	rec, err := hs.loadOrDefault(venue)
	if err != nil {
		return err
	}
	apply(rec)
	rec.Touch(hs.clock.Now())
	return hs.saveRecord(rec, op)
}

func (hs *HoursService) saveRecord(rec *hours.VenueHoursRecord, op string) error {
	if err := hs.hoursDao.SaveHours(rec); err != nil {
		log.Printf("[HoursService] Failed to save hours (venue=%s, op=%s): %v", rec.Venue, op, err)
		return err
	}
	return nil
}

// BuildOpenStatus derives the open/closed snapshot for a venue at the
// given instant.
func BuildOpenStatus(rec *hours.VenueHoursRecord, now time.Time) *hours.OpenStatus {
	res := ResolveDate(rec, hours.FormatDate(now))
	status := &hours.OpenStatus{
		Venue:     rec.Venue,
		Open:      IsOpenAt(res, now),
		CheckedAt: now.Format(time.RFC3339),
	}
	if status.Open {
		status.Until = res.Close
	} else {
		status.OpensAt = NextOpenTime(rec, now)
	}
	return status
}
