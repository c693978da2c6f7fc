package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
// Callers treat it as "no record yet", not as a backend failure.
var ErrNotFound = errors.New("key not found")

// RedisClient defines the key-value operations available to the DAOs.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	GetContext() context.Context
	Ping() error
}
