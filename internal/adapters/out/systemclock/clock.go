// Package systemclock adapts the wall clock to the ports.Clock interface.
// Production wiring injects this implementation; tests substitute fixed
// clocks to keep timestamps deterministic.
package systemclock

import (
	"time"

	"parceltrack/internal/core/ports"
)

// Clock reads the system wall clock in UTC.
type Clock struct{}

// NewClock creates a system clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current time in UTC.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.Clock = Clock{}
