package elm

import (
	"time"

	"github.com/grindlemire/go-elm/internal/debug"
)

// Command sources: commands whose effect starts a goroutine feeding
// messages back into the loop from the asynchrony boundary. Each source
// runs until the dispatcher stops (its Done channel closes) and routes
// every dispatch through the configured scheduler so it lands on the
// host's main loop.

// Watch returns a command that reads ch and dispatches fn(value) for
// each value received. The goroutine exits when the channel closes or
// the dispatcher stops. A nil message from fn is skipped.
//
// Example:
//
//	dataCh := make(chan string)
//	sub := func(m *model) ([]elm.Cmd, func()) {
//	    return []elm.Cmd{elm.Watch(d, dataCh, func(s string) elm.Msg {
//	        return DataReceived{Line: s}
//	    })}, nil
//	}
func Watch[T, S, P any](d *Dispatcher[S, P], ch <-chan T, fn func(T) Msg) Cmd {
	return func(dispatch Dispatch) {
		go func() {
			for {
				select {
				case <-d.done:
					return
				case val, ok := <-ch:
					if !ok {
						return // channel closed
					}
					v := val
					d.post(func() {
						if msg := fn(v); msg != nil {
							dispatch(msg)
						}
					})
				}
			}
		}()
	}
}

// Every returns a command that dispatches fn(now) at the given interval
// until the dispatcher stops.
func Every[S, P any](d *Dispatcher[S, P], interval time.Duration, fn func(time.Time) Msg) Cmd {
	return func(dispatch Dispatch) {
		go func() {
			debug.Log("Every: ticker started (%v)", interval)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-d.done:
					return
				case now := <-ticker.C:
					t := now
					d.post(func() {
						if msg := fn(t); msg != nil {
							dispatch(msg)
						}
					})
				}
			}
		}()
	}
}

// Async returns a command that runs fn in a background goroutine once
// and dispatches its result. If the dispatcher stops before fn returns,
// the result is dropped.
func Async[S, P any](d *Dispatcher[S, P], fn func() Msg) Cmd {
	return func(dispatch Dispatch) {
		go func() {
			msg := fn()
			select {
			case <-d.done:
				return
			default:
			}
			d.post(func() {
				if msg != nil {
					dispatch(msg)
				}
			})
		}()
	}
}
