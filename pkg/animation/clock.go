package animation

import "time"

// Clock provides wall-clock time to [Scheduler.Step]. Tests can inject a
// fake clock via SetClock to drive Step deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = systemClock{}

// SetClock replaces the clock read by Step and returns the previous one so
// callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
