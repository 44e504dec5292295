package animation

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-drift/motion/pkg/curve"
	"github.com/go-drift/motion/pkg/errors"
)

// Request describes an animation handed off to a [Compositor].
type Request struct {
	Key string
	// From is nil when the compositor should start from its current value.
	From     any
	To       any
	Duration time.Duration
	Curve    curve.Curve
}

// Compositor performs interpolation on behalf of a [Delegated] animation,
// typically on a render thread the engine does not control.
type Compositor interface {
	// Submit begins animating req. The compositor calls done once when the
	// animation ends, with finished=false if it was interrupted. done must
	// be called from the goroutine that ticks the scheduler.
	Submit(req Request, done func(finished bool)) error
	// InProgress reports whether the animation for key is still running.
	InProgress(key string) bool
	// Remove stops the animation for key.
	Remove(key string)
}

// InProgress reports whether c is currently animating key. A nil compositor
// has nothing in progress.
func InProgress(c Compositor, key string) bool {
	return c != nil && c.InProgress(key)
}

// DelegatedConfig describes an animation whose interpolation is performed
// by a compositor.
type DelegatedConfig struct {
	Compositor Compositor
	Key        string
	From       any
	To         any
	Duration   time.Duration
	Delay      time.Duration
	// Curve defaults to curve.Linear.
	Curve      curve.Curve
	OnComplete func(finished bool)
}

// Delegated waits out its delay on the scheduler, then submits the
// animation to a compositor and tracks it until the compositor reports it
// done, or stops reporting it as in progress.
type Delegated struct {
	lifecycle

	sched     *Scheduler
	cfg       DelegatedConfig
	startedAt time.Duration
	submitted bool
}

var _ Animation = (*Delegated)(nil)

// NewDelegated validates cfg and returns a Pending animation bound to s.
func NewDelegated(s *Scheduler, cfg DelegatedConfig) (*Delegated, error) {
	const op = "animation.NewDelegated"
	switch {
	case s == nil:
		return nil, errors.Configuration(op, errors.ErrMissingScheduler)
	case cfg.Compositor == nil:
		return nil, errors.Configuration(op, errors.ErrMissingTarget)
	case cfg.Duration < 0:
		return nil, errors.Configuration(op, errors.ErrNegativeDuration)
	case cfg.Delay < 0:
		return nil, errors.Configuration(op, errors.ErrNegativeDelay)
	case cfg.To == nil:
		return nil, errors.Configuration(op, errors.ErrMissingEndValue)
	}
	if cfg.Curve == nil {
		cfg.Curve = curve.Linear
	}
	d := &Delegated{sched: s, cfg: cfg}
	d.onComplete = cfg.OnComplete
	d.cfg.OnComplete = nil
	return d, nil
}

// Key returns the compositor key the animation is submitted under.
func (d *Delegated) Key() string { return d.cfg.Key }

// Duration returns the duration the request will be (or was) submitted with.
func (d *Delegated) Duration() time.Duration { return d.cfg.Duration }

// SetDuration changes the duration while the animation is Pending or
// Delaying. Once the request has reached the compositor it is fixed.
func (d *Delegated) SetDuration(v time.Duration) error {
	const op = "animation.Delegated.SetDuration"
	switch {
	case v < 0:
		return errors.Configuration(op, errors.ErrNegativeDuration)
	case d.state.IsTerminal():
		return errors.State(op, errors.ErrTerminal)
	case d.submitted:
		return errors.State(op, errors.ErrSubmitted)
	}
	d.cfg.Duration = v
	return nil
}

// Start registers the animation with its scheduler. Nothing is submitted to
// the compositor until the delay has elapsed.
func (d *Delegated) Start() error {
	const op = "animation.Delegated.Start"
	if err := checkStartable(op, d.state); err != nil {
		return err
	}
	if from := d.cfg.From; from != nil && reflect.TypeOf(from) != reflect.TypeOf(d.cfg.To) {
		return errors.Interpolation(op, fmt.Errorf("%w: %T and %T", errors.ErrTypeMismatch, from, d.cfg.To))
	}
	if d.cfg.Delay > 0 {
		d.state = Delaying
	} else {
		d.state = Running
	}
	d.startedAt = d.sched.register(d)
	return nil
}

// Cancel removes the animation from the compositor if it was submitted.
func (d *Delegated) Cancel() error {
	if err := checkCancellable("animation.Delegated.Cancel", d.state); err != nil {
		return err
	}
	if d.submitted {
		d.cfg.Compositor.Remove(d.cfg.Key)
	}
	d.finish(Cancelled)
	return nil
}

func (d *Delegated) step(now time.Duration) error {
	if d.submitted {
		if !d.cfg.Compositor.InProgress(d.cfg.Key) {
			d.finish(Completed)
		}
		return nil
	}
	if now-d.startedAt < d.cfg.Delay {
		return nil
	}
	return d.submit()
}

func (d *Delegated) submit() error {
	d.state = Running
	d.submitted = true
	req := Request{
		Key:      d.cfg.Key,
		From:     d.cfg.From,
		To:       d.cfg.To,
		Duration: d.cfg.Duration,
		Curve:    d.cfg.Curve,
	}
	if err := d.cfg.Compositor.Submit(req, d.hostDone); err != nil {
		d.submitted = false
		d.finish(Cancelled)
		return errors.Configuration("animation.Delegated.Submit", err)
	}
	return nil
}

// hostDone receives the compositor's completion. Notifications that arrive
// after the animation has already ended are ignored.
func (d *Delegated) hostDone(finished bool) {
	if finished {
		d.finish(Completed)
	} else {
		d.finish(Cancelled)
	}
}
