// Package clock provides an injectable time source so application code never
// reads the ambient wall clock directly. Handlers take a Clock dependency,
// which lets tests supply deterministic times for processed-at and
// delivered-at timestamps.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default wall-clock implementation.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Fixed returns a Clock that always reports the given instant.
// Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }
