package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/curve"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/interp"
)

// Target is the endpoint a [Property] animation reads from and writes to.
// The animated object itself is owned elsewhere; Target only captures how
// to reach it.
type Target[T any] struct {
	// Get returns the current value. Required when no From value is given.
	Get func() T
	// Set writes a new value. Required.
	Set func(T)
}

// Config describes a direct property animation.
type Config[T any] struct {
	Target Target[T]

	// From is the start value. When nil it is read from Target.Get at the
	// moment the animation starts.
	From *T
	// To is the end value.
	To T

	Duration time.Duration
	Delay    time.Duration

	// Curve shapes progress. Defaults to curve.Linear.
	Curve curve.Curve
	// Interpolator computes intermediate values. Defaults to interp.For[T].
	Interpolator interp.Interpolator[T]

	// OnComplete is called once with finished=true when the end value is
	// written, or finished=false when the animation is cancelled.
	OnComplete func(finished bool)
}

// Property animates a single value by writing interpolated values to its
// target on every scheduler tick.
type Property[T any] struct {
	lifecycle

	sched    *Scheduler
	target   Target[T]
	from     *T
	to       T
	duration time.Duration
	delay    time.Duration
	curve    curve.Curve
	interp   interp.Interpolator[T]

	start     T
	startedAt time.Duration
	elapsed   time.Duration
	progress  float64
	value     T
	written   bool
}

var _ Animation = (*Property[float64])(nil)

// NewProperty validates cfg and returns a Pending animation bound to s.
func NewProperty[T any](s *Scheduler, cfg Config[T]) (*Property[T], error) {
	const op = "animation.NewProperty"
	if s == nil {
		return nil, errors.Configuration(op, errors.ErrMissingScheduler)
	}
	if cfg.Target.Set == nil || (cfg.From == nil && cfg.Target.Get == nil) {
		return nil, errors.Configuration(op, errors.ErrMissingTarget)
	}
	if cfg.Duration < 0 {
		return nil, errors.Configuration(op, errors.ErrNegativeDuration)
	}
	if cfg.Delay < 0 {
		return nil, errors.Configuration(op, errors.ErrNegativeDelay)
	}
	if any(cfg.To) == nil {
		return nil, errors.Configuration(op, errors.ErrMissingEndValue)
	}

	ip := cfg.Interpolator
	if ip == nil {
		var err error
		if ip, err = interp.For[T](); err != nil {
			return nil, err
		}
	}
	c := cfg.Curve
	if c == nil {
		c = curve.Linear
	}

	var from *T
	if cfg.From != nil {
		v := *cfg.From
		from = &v
	}
	return &Property[T]{
		lifecycle: lifecycle{onComplete: cfg.OnComplete},
		sched:     s,
		target:    cfg.Target,
		from:      from,
		to:        cfg.To,
		duration:  cfg.Duration,
		delay:     cfg.Delay,
		curve:     c,
		interp:    ip,
	}, nil
}

// Start resolves the start value, validates it against the end value and
// registers the animation with its scheduler. A validation failure leaves
// the animation Pending.
func (p *Property[T]) Start() error {
	const op = "animation.Property.Start"
	if err := checkStartable(op, p.state); err != nil {
		return err
	}

	var start T
	if p.from != nil {
		start = *p.from
	} else {
		start = p.target.Get()
	}
	if v, ok := p.interp.(interp.Validator[T]); ok {
		if err := v.Validate(start, p.to); err != nil {
			return err
		}
	}

	p.start = start
	if p.delay > 0 {
		p.state = Delaying
	} else {
		p.state = Running
	}
	p.startedAt = p.sched.register(p)
	return nil
}

// Cancel stops the animation. No value is written afterwards, and the
// completion callback has run with finished=false by the time Cancel returns.
func (p *Property[T]) Cancel() error {
	if err := checkCancellable("animation.Property.Cancel", p.state); err != nil {
		return err
	}
	p.elapsed = p.sched.Now() - p.startedAt
	p.finish(Cancelled)
	return nil
}

func (p *Property[T]) step(now time.Duration) error {
	p.elapsed = now - p.startedAt
	if p.elapsed < p.delay {
		return nil
	}
	p.state = Running

	active := p.elapsed - p.delay
	t := 1.0
	if p.duration > 0 && active < p.duration {
		t = float64(active) / float64(p.duration)
	}
	v := p.interp.Interpolate(p.start, p.to, p.curve.Transform(t))
	p.value, p.progress, p.written = v, t, true
	p.target.Set(v)

	if active >= p.duration {
		p.finish(Completed)
	}
	return nil
}

// Value returns the last value written to the target and whether any value
// has been written yet.
func (p *Property[T]) Value() (T, bool) { return p.value, p.written }

// Progress returns the normalized time of the last write, before the curve
// is applied.
func (p *Property[T]) Progress() float64 { return p.progress }

// Elapsed returns the time since Start as of the last tick or cancellation.
func (p *Property[T]) Elapsed() time.Duration { return p.elapsed }

func checkStartable(op string, s State) error {
	switch {
	case s.IsTerminal():
		return errors.State(op, errors.ErrTerminal)
	case s != Pending:
		return errors.State(op, errors.ErrAlreadyStarted)
	}
	return nil
}

func checkCancellable(op string, s State) error {
	switch {
	case s.IsTerminal():
		return errors.State(op, errors.ErrTerminal)
	case s == Pending:
		return errors.State(op, errors.ErrNotStarted)
	}
	return nil
}
