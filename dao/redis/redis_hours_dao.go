package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"vh-server/db"
	"vh-server/models/hours"
)

const HOURS_KEY_FORMAT = "hours:%s"

// OPEN_STATUS_KEY_FORMAT is used to cache open/closed snapshots per venue.
const OPEN_STATUS_KEY_FORMAT = "status:%s"

// RedisHoursDAO handles venue hours records using Redis.
type RedisHoursDAO struct {
	client db.RedisClient
}

// NewRedisHoursDAO initializes a RedisHoursDAO with the Redis client.
func NewRedisHoursDAO(client db.RedisClient) *RedisHoursDAO {
	return &RedisHoursDAO{client: client}
}

// LoadHours fetches the hours record for a venue. A venue that has never
// been written returns (nil, nil); the caller substitutes the default
// schedule without persisting it.
func (dao *RedisHoursDAO) LoadHours(venue string) (*hours.VenueHoursRecord, error) {
	key := fmt.Sprintf(HOURS_KEY_FORMAT, venue)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hours record for venue %s: %w", venue, err)
	}
	var rec hours.VenueHoursRecord
	if err := json.Unmarshal([]byte(str), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hours record for venue %s: %w", venue, err)
	}
	return &rec, nil
}

// SaveHours persists the full record under hours:{venue}. The write is an
// unconditional overwrite: no version compare-and-swap is performed, so
// concurrent writers race under last-writer-wins.
func (dao *RedisHoursDAO) SaveHours(rec *hours.VenueHoursRecord) error {
	key := fmt.Sprintf(HOURS_KEY_FORMAT, rec.Venue)
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal hours record for venue %s: %w", rec.Venue, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set hours record in redis: %w", err)
	}
	return nil
}

// SetOpenStatus caches the open/closed snapshot for a venue.
func (dao *RedisHoursDAO) SetOpenStatus(status *hours.OpenStatus) error {
	key := fmt.Sprintf(OPEN_STATUS_KEY_FORMAT, status.Venue)
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal open status for venue %s: %w", status.Venue, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set open status in redis: %w", err)
	}
	return nil
}

// GetOpenStatus retrieves the cached open/closed snapshot for a venue.
// Returns (nil, nil) when no snapshot has been cached yet.
func (dao *RedisHoursDAO) GetOpenStatus(venue string) (*hours.OpenStatus, error) {
	key := fmt.Sprintf(OPEN_STATUS_KEY_FORMAT, venue)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open status from redis: %w", err)
	}
	var status hours.OpenStatus
	if err := json.Unmarshal([]byte(str), &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal open status JSON: %w", err)
	}
	return &status, nil
}

// DeleteOpenStatus drops the cached snapshot for a venue.
func (dao *RedisHoursDAO) DeleteOpenStatus(venue string) error {
	key := fmt.Sprintf(OPEN_STATUS_KEY_FORMAT, venue)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete open status key %s: %w", key, err)
	}
	log.Printf("[RedisHoursDAO] Deleted open status cache for %s", venue)
	return nil
}

// ListVenues returns all venue names that have a persisted hours record.
func (dao *RedisHoursDAO) ListVenues() ([]string, error) {
	pattern := fmt.Sprintf(HOURS_KEY_FORMAT, "*") // "hours:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list hours keys: %w", err)
	}
	venues := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(HOURS_KEY_FORMAT, "")
	for _, k := range keys {
		venues = append(venues, strings.TrimPrefix(k, prefix))
	}
	return venues, nil
}
