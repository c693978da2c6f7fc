package services

import (
	"log"
	"time"

	"vh-server/config"
	"vh-server/dao/redis"
	"vh-server/models/hours"
	"vh-server/util"
)

// StatusRefresherService periodically recomputes each venue's open/closed
// snapshot and caches it, so status reads never resolve schedules on the
// hot path.
type StatusRefresherService struct {
	hoursDao *redis.RedisHoursDAO
	clock    util.Clock
}

// NewStatusRefresherService constructs a new refresher with dependencies.
func NewStatusRefresherService(hoursDao *redis.RedisHoursDAO, clock util.Clock) *StatusRefresherService {
	return &StatusRefresherService{
		hoursDao: hoursDao,
		clock:    clock,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *StatusRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *StatusRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[StatusRefresherService] Running periodic status refresh job.")
		if err := sr.RefreshStatuses(); err != nil {
			log.Printf("[StatusRefresherService] RefreshStatuses returned error: %v", err)
		} else {
			log.Println("[StatusRefresherService] RefreshStatuses completed successfully.")
		}
	}
}

// RefreshStatuses recomputes and caches the snapshot for every venue with
// a persisted record, plus the known venues that still run on defaults.
func (sr *StatusRefresherService) RefreshStatuses() error {
	stored, err := sr.hoursDao.ListVenues()
	if err != nil {
		log.Printf("[StatusRefresherService] Error listing venues: %v", err)
		return err
	}

	venues := sr.mergeKnownVenues(stored)
	log.Printf("[StatusRefresherService] Refreshing status for %d venues", len(venues))

	for _, venue := range venues {
		rec, err := sr.hoursDao.LoadHours(venue)
		if err != nil {
			log.Printf("[StatusRefresherService] Failed to load hours for %s: %v", venue, err)
			continue
		}
		now := sr.clock.Now()
		if rec == nil {
			rec = hours.DefaultRecord(venue, now)
		}

		status := BuildOpenStatus(rec, now)
		if err := sr.hoursDao.SetOpenStatus(status); err != nil {
			log.Printf("[StatusRefresherService] Failed to cache status for %s: %v", venue, err)
			continue
		}
		log.Printf("[StatusRefresherService] Cached status for venue=%s open=%v", venue, status.Open)
	}
	return nil
}

// mergeKnownVenues unions stored venues with the configured known list,
// preserving stored order and deduplicating.
func (sr *StatusRefresherService) mergeKnownVenues(stored []string) []string {
	seen := make(map[string]struct{}, len(stored))
	out := make([]string, 0, len(stored)+len(config.KNOWN_VENUES))
	for _, v := range stored {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range config.KNOWN_VENUES {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
