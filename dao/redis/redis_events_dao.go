package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"vh-server/db"
	"vh-server/models/event"
)

const EVENTS_KEY_FORMAT = "events:%s"

// RedisEventsDAO stores each venue's events as a single JSON array
// document, the same one-document-per-venue shape as the hours record.
type RedisEventsDAO struct {
	client db.RedisClient
}

// NewRedisEventsDAO initializes a RedisEventsDAO with the Redis client.
func NewRedisEventsDAO(client db.RedisClient) *RedisEventsDAO {
	return &RedisEventsDAO{client: client}
}

// LoadEvents fetches the full events document for a venue. A venue with no
// document yet yields an empty slice.
func (dao *RedisEventsDAO) LoadEvents(venue string) ([]event.Event, error) {
	key := fmt.Sprintf(EVENTS_KEY_FORMAT, venue)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return []event.Event{}, nil
		}
		return nil, fmt.Errorf("failed to get events for venue %s: %w", venue, err)
	}
	var events []event.Event
	if err := json.Unmarshal([]byte(str), &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events JSON for venue %s: %w", venue, err)
	}
	return events, nil
}

// SaveEvents overwrites the full events document for a venue.
func (dao *RedisEventsDAO) SaveEvents(venue string, events []event.Event) error {
	key := fmt.Sprintf(EVENTS_KEY_FORMAT, venue)
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal events for venue %s: %w", venue, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set events in redis: %w", err)
	}
	return nil
}
