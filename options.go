package elm

import "errors"

var (
	errNilInit   = errors.New("elm: init function is required")
	errNilUpdate = errors.New("elm: update logic is required")
)

// Option is a functional option for configuring a Dispatcher.
type Option[S, P any] func(*Dispatcher[S, P]) error

// WithCell binds the dispatcher to an externally owned state cell.
// By default the dispatcher owns a fresh State[*S].
func WithCell[S, P any](cell Cell[S]) Option[S, P] {
	return func(d *Dispatcher[S, P]) error {
		if cell == nil {
			return errors.New("elm: nil cell")
		}
		d.cell = cell
		return nil
	}
}

// WithSubscription registers a subscription run exactly once, after
// init. Its commands execute once and its cleanup runs at Stop.
func WithSubscription[S, P any](sub Subscription[S]) Option[S, P] {
	return func(d *Dispatcher[S, P]) error {
		if sub == nil {
			return errors.New("elm: nil subscription")
		}
		d.sub = sub
		return nil
	}
}

// WithLogger sets the structured logger. Absence of a logger suppresses
// logging and changes nothing else.
func WithLogger[S, P any](l Logger) Option[S, P] {
	return func(d *Dispatcher[S, P]) error {
		d.logger = l
		return nil
	}
}

// WithMiddleware sets a hook called synchronously with every dispatched
// message before it is queued or processed, including messages dropped
// because the model is not yet initialized. The hook must not mutate the
// message; use it for cross-cutting concerns like tracing.
func WithMiddleware[S, P any](fn func(Msg)) Option[S, P] {
	return func(d *Dispatcher[S, P]) error {
		if fn == nil {
			return errors.New("elm: nil middleware")
		}
		d.middleware = fn
		return nil
	}
}

// WithScheduler sets the host's main-loop queue. Command sources (Watch,
// Every, Async) route their callbacks through it so Dispatch only ever
// runs on the main loop. Without a scheduler, callbacks dispatch inline
// from their own goroutine.
func WithScheduler[S, P any](schedule func(func())) Option[S, P] {
	return func(d *Dispatcher[S, P]) error {
		if schedule == nil {
			return errors.New("elm: nil scheduler")
		}
		d.scheduler = schedule
		return nil
	}
}
