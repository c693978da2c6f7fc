package config

import "os"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// HTTP server config
const SERVER_ADDRESS = ":8080"

// Open-status refresher config
const STATUS_REFRESHER_SCHEDULE_MINUTES = 5

// DEFAULT_VENUE is used when a query does not name a venue. Callers are
// expected to pass an explicit venue; this is a documented fallback, not a
// general default.
const DEFAULT_VENUE = "farewell"

// KNOWN_VENUES seeds the status refresher before any record is written.
var KNOWN_VENUES = []string{"farewell", "howdy"}

// RedisAddress returns the Redis address, honoring the REDIS_ADDR override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// ServerAddress returns the listen address, honoring the SERVER_ADDR override.
func ServerAddress() string {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		return addr
	}
	return SERVER_ADDRESS
}
