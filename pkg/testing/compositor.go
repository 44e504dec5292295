package testing

import (
	"errors"
	"slices"
	"sync"

	"github.com/go-drift/motion/pkg/animation"
)

// ErrRejected is returned by Submit when a FakeCompositor is set to reject.
var ErrRejected = errors.New("compositor rejected request")

// FakeCompositor records submitted requests and lets tests end them.
type FakeCompositor struct {
	mu        sync.Mutex
	running   map[string]func(bool)
	submitted []animation.Request
	removed   []string

	// Reject makes Submit fail.
	Reject bool
}

// NewFakeCompositor returns an empty FakeCompositor.
func NewFakeCompositor() *FakeCompositor {
	return &FakeCompositor{running: make(map[string]func(bool))}
}

// Submit implements animation.Compositor.
func (c *FakeCompositor) Submit(req animation.Request, done func(bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Reject {
		return ErrRejected
	}
	c.submitted = append(c.submitted, req)
	c.running[req.Key] = done
	return nil
}

// InProgress implements animation.Compositor.
func (c *FakeCompositor) InProgress(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.running[key]
	return ok
}

// Remove implements animation.Compositor. Like most hosts, it reports the
// interruption through the done callback.
func (c *FakeCompositor) Remove(key string) {
	c.mu.Lock()
	done, ok := c.running[key]
	delete(c.running, key)
	c.removed = append(c.removed, key)
	c.mu.Unlock()
	if ok {
		done(false)
	}
}

// Finish ends the animation for key and calls its done callback.
func (c *FakeCompositor) Finish(key string, finished bool) {
	c.mu.Lock()
	done, ok := c.running[key]
	delete(c.running, key)
	c.mu.Unlock()
	if ok {
		done(finished)
	}
}

// Drop forgets the animation for key without calling done, as a host does
// when it tears down a layer silently.
func (c *FakeCompositor) Drop(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.running, key)
}

// Submitted returns a copy of every accepted request.
func (c *FakeCompositor) Submitted() []animation.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.submitted)
}

// Removed returns the keys passed to Remove.
func (c *FakeCompositor) Removed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.removed)
}
