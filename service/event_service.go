package services

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"vh-server/dao/redis"
	"vh-server/models/event"
	"vh-server/models/hours"
	"vh-server/util"
)

// EventService manages each venue's events document: one JSON array per
// venue, filtered/sorted/paginated in memory on every read.
type EventService struct {
	eventsDao *redis.RedisEventsDAO
	clock     util.Clock
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(eventsDao *redis.RedisEventsDAO, clock util.Clock) *EventService {
	return &EventService{
		eventsDao: eventsDao,
		clock:     clock,
	}
}

// ListEvents returns a venue's events sorted ascending by date. When
// upcomingOnly is set, events before today are dropped. Offset/limit
// paginate the sorted slice; limit <= 0 means no limit.
func (es *EventService) ListEvents(venue string, upcomingOnly bool, offset, limit int) ([]event.Event, error) {
	events, err := es.eventsDao.LoadEvents(venue)
	if err != nil {
		log.Printf("[EventService] Failed to load events for venue=%s: %v", venue, err)
		return nil, err
	}

	if upcomingOnly {
		today := hours.FormatDate(es.clock.Now())
		filtered := events[:0]
		for _, e := range events {
			if e.Date >= today {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})

	if offset > len(events) {
		offset = len(events)
	}
	events = events[offset:]
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	return events, nil
}

// UpsertEvent inserts or replaces one event in the venue's document. An
// event without an ID gets a fresh one.
func (es *EventService) UpsertEvent(venue string, e event.Event) (*event.Event, error) {
	if venue == "" {
		return nil, invalidField("venue", "required")
	}
	if e.Title == "" {
		return nil, invalidField("title", "required")
	}
	if _, err := hours.ParseDate(e.Date); err != nil {
		return nil, invalidField("date", "expected YYYY-MM-DD")
	}

	events, err := es.eventsDao.LoadEvents(venue)
	if err != nil {
		log.Printf("[EventService] Failed to load events for venue=%s: %v", venue, err)
		return nil, err
	}

	e.Venue = venue
	if e.ID == "" {
		e.ID = uuid.NewString()
		e.Created = es.clock.Now().Format(time.RFC3339)
	}

	replaced := false
	for i := range events {
		if events[i].ID == e.ID {
			if e.Created == "" {
				e.Created = events[i].Created
			}
			events[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, e)
	}

	if err := es.eventsDao.SaveEvents(venue, events); err != nil {
		log.Printf("[EventService] Failed to save events (venue=%s, op=upsert): %v", venue, err)
		return nil, err
	}
	return &e, nil
}

// DeleteEvent removes one event by ID. Deleting an unknown ID is a no-op
// success: the desired end state already holds.
func (es *EventService) DeleteEvent(venue, id string) error {
	if venue == "" {
		return invalidField("venue", "required")
	}
	if id == "" {
		return invalidField("id", "required")
	}

	events, err := es.eventsDao.LoadEvents(venue)
	if err != nil {
		log.Printf("[EventService] Failed to load events for venue=%s: %v", venue, err)
		return err
	}

	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := es.eventsDao.SaveEvents(venue, kept); err != nil {
		log.Printf("[EventService] Failed to save events (venue=%s, op=delete): %v", venue, err)
		return err
	}
	return nil
}
