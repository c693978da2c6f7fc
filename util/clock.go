package util

import "time"

// Clock abstracts "now" so schedule resolution stays deterministic in
// tests instead of reading ambient system time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real local clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
