package testing

import (
	"slices"

	"github.com/go-drift/motion/pkg/animation"
)

// Recorder is an in-memory animation target that remembers every write.
type Recorder[T any] struct {
	value  T
	writes []T
}

// NewRecorder returns a Recorder holding initial.
func NewRecorder[T any](initial T) *Recorder[T] {
	return &Recorder[T]{value: initial}
}

// Target returns the getter/setter pair for use in animation.Config.
func (r *Recorder[T]) Target() animation.Target[T] {
	return animation.Target[T]{Get: r.Get, Set: r.Set}
}

// Get returns the current value.
func (r *Recorder[T]) Get() T { return r.value }

// Set stores v and appends it to the write log.
func (r *Recorder[T]) Set(v T) {
	r.value = v
	r.writes = append(r.writes, v)
}

// Writes returns a copy of every value written so far.
func (r *Recorder[T]) Writes() []T { return slices.Clone(r.writes) }

// Count returns the number of writes.
func (r *Recorder[T]) Count() int { return len(r.writes) }

// Last returns the current value.
func (r *Recorder[T]) Last() T { return r.value }

// Reset clears the write log without changing the current value.
func (r *Recorder[T]) Reset() { r.writes = nil }

// Completion records the calls made to a completion callback.
type Completion struct {
	Calls    int
	Finished []bool
}

// Func returns a completion callback that records into c.
func (c *Completion) Func() func(bool) {
	return func(finished bool) {
		c.Calls++
		c.Finished = append(c.Finished, finished)
	}
}

// Last returns the most recent finished flag, or false if never called.
func (c *Completion) Last() bool {
	if len(c.Finished) == 0 {
		return false
	}
	return c.Finished[len(c.Finished)-1]
}
