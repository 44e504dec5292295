package animation

import (
	stderrors "errors"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// stepper is an animation the scheduler advances on each tick.
type stepper interface {
	Animation
	step(now time.Duration) error
}

// Scheduler owns the timeline that drives direct and delegated animations.
//
// The timeline is a monotonic [time.Duration] advanced by the host through
// [Scheduler.Tick], [Scheduler.TickSeconds] or [Scheduler.Step]. Animations
// compute progress from the absolute time since they started, so irregular
// or dropped frames never accumulate drift.
//
// Ticks must be serialized by the host. Starting or cancelling animations
// from a completion callback is allowed; ticking from one is not.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	active  []stepper
	ticking bool
	last    time.Time

	// seconds is the float-second total fed through TickSeconds. It is only
	// trusted while secondsAt still equals now.
	seconds   float64
	secondsAt time.Duration
}

// NewScheduler returns a scheduler whose timeline starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current position of the timeline.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Active returns the number of registered animations that are not terminal.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.active {
		if !a.State().IsTerminal() {
			n++
		}
	}
	return n
}

// HasActive reports whether any registered animation is still active.
func (s *Scheduler) HasActive() bool {
	return s.Active() > 0
}

// register adds a freshly started animation and returns the timeline
// position it started at.
func (s *Scheduler) register(a stepper) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, a)
	return s.now
}

// Tick advances the timeline by delta and steps every active animation in
// the order it was started. Animations started during the tick first advance
// on the following tick. Errors from individual animations are joined; they
// never stop the remaining animations from advancing.
func (s *Scheduler) Tick(delta time.Duration) error {
	const op = "animation.Scheduler.Tick"
	if delta < 0 {
		return errors.Configuration(op, errors.ErrNegativeDelta)
	}

	s.mu.Lock()
	if s.ticking {
		s.mu.Unlock()
		return errors.State(op, errors.ErrReentrantTick)
	}
	s.ticking = true
	s.now += delta
	now := s.now
	// Copy to avoid holding the lock during callbacks
	snapshot := slices.Clone(s.active)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.ticking = false
		s.active = slices.DeleteFunc(s.active, func(a stepper) bool {
			return a.State().IsTerminal()
		})
		s.mu.Unlock()
	}()

	var errs []error
	for _, a := range snapshot {
		if !a.State().IsActive() {
			continue
		}
		if err := a.step(now); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// TickSeconds is Tick for hosts that measure frame time in float seconds.
// The running total is kept in seconds and rounded to the nearest
// nanosecond after each call, so deltas that sum to a duration reach it
// exactly. Mixing in Tick or Step restarts the total from Now.
func (s *Scheduler) TickSeconds(delta float64) error {
	const op = "animation.Scheduler.TickSeconds"
	if !(delta >= 0) {
		return errors.Configuration(op, errors.ErrNegativeDelta)
	}

	s.mu.Lock()
	total := s.seconds
	if s.secondsAt != s.now {
		total = s.now.Seconds()
	}
	total += delta
	target := time.Duration(math.Round(total * float64(time.Second)))
	step := max(target-s.now, 0)
	s.mu.Unlock()

	if err := s.Tick(step); err != nil {
		return err
	}

	s.mu.Lock()
	s.seconds, s.secondsAt = total, s.now
	s.mu.Unlock()
	return nil
}

// Step advances the timeline by the wall-clock time elapsed since the
// previous Step, read from the package clock. The first call only records
// the reference time. A clock that moves backwards is treated as no time
// passing.
func (s *Scheduler) Step() error {
	now := Now()
	s.mu.Lock()
	last := s.last
	s.last = now
	s.mu.Unlock()

	if last.IsZero() {
		return nil
	}
	return s.Tick(max(now.Sub(last), 0))
}
