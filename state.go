// State[T] wraps a value and notifies bindings when it changes. It is
// the default Cell implementation: the dispatch loop commits merged
// models into it, and bindings are how a host triggers a re-render.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the host's main loop
//
// Example usage:
//
//	cell := elm.NewState(&model{})
//	cell.Bind(func(m *model) {
//	    render(m)
//	})
package elm

import (
	"sync"
	"sync/atomic"
)

// globalBindingID generates unique binding IDs across all State
// instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
// State is generic over any type T. State[*S] satisfies Cell[S].
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewState creates a new state cell with the given initial value.
// The type T is inferred from the initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all bindings.
//
// IMPORTANT: Must be called from the host's main loop only. Background
// work should reach the cell through a dispatcher configured with
// WithScheduler.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	// Copy active bindings while holding the lock and drop inactive ones
	// to prevent memory leaks from accumulated unbound bindings
	activeBindings := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			activeBindings = append(activeBindings, b)
		}
	}
	s.bindings = activeBindings
	s.mu.Unlock()

	for _, b := range activeBindings {
		b.fn(v)
	}
}

// Update applies a function to the current value and sets the result.
// This is a convenience method for read-modify-write operations.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
//
// The binding callback receives the new value as its argument.
// Bindings are executed in registration order.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}
