package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic scheduler tests.
// It satisfies animation.Clock. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. A negative d moves it backwards,
// which schedulers treat as no time passing.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// AdvanceFrames moves the clock forward by n frames at the given rate.
func (c *FakeClock) AdvanceFrames(n int, fps float64) {
	frame := time.Duration(float64(time.Second) / fps)
	c.Advance(time.Duration(n) * frame)
}
