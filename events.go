package elm

import "sync"

// Events is a simple event bus for feeding messages into dispatchers
// from outside the loop (UI event handlers, other components). It is
// generic over the event type T.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit sends an event to all listeners in subscription order.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// Subscribe adds a listener for events.
func (e *Events[T]) Subscribe(fn func(T)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// WatchEvents returns a command that subscribes to the bus and
// dispatches fn(event) for every emitted event. Events arriving after
// the dispatcher stops are dropped. A nil message from fn is skipped.
func WatchEvents[T, S, P any](d *Dispatcher[S, P], events *Events[T], fn func(T) Msg) Cmd {
	return func(dispatch Dispatch) {
		events.Subscribe(func(event T) {
			select {
			case <-d.done:
				return
			default:
			}
			d.post(func() {
				if msg := fn(event); msg != nil {
					dispatch(msg)
				}
			})
		})
	}
}
