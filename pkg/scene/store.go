package scene

import (
	"maps"
	"slices"
	"sync"

	"github.com/go-drift/motion/pkg/animation"
)

// Store holds the current value of every scene property. It is the target
// endpoint that scene animations write to. Reads are safe from any
// goroutine, which lets a renderer sample values while the scheduler ticks.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
	order  []string
}

// NewStore returns a store seeded with the scene's initial values.
func (sc *Scene) NewStore() *Store {
	st := &Store{values: make(map[string]any, len(sc.Properties))}
	for _, p := range sc.Properties {
		st.Set(p.Name, p.Value.V)
	}
	return st
}

// Get returns the current value of name.
func (st *Store) Get(name string) (any, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	v, ok := st.values[name]
	return v, ok
}

// Set stores v under name, defining the property if it is new.
func (st *Store) Set(name string, v any) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.values[name]; !ok {
		st.order = append(st.order, name)
	}
	st.values[name] = v
}

// Names returns property names in declaration order.
func (st *Store) Names() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return slices.Clone(st.order)
}

// Snapshot returns a copy of every current value.
func (st *Store) Snapshot() map[string]any {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return maps.Clone(st.values)
}

// Target returns the animation endpoint for name.
func (st *Store) Target(name string) animation.Target[any] {
	return animation.Target[any]{
		Get: func() any {
			v, _ := st.Get(name)
			return v
		},
		Set: func(v any) { st.Set(name, v) },
	}
}
