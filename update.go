package elm

import "fmt"

// Init builds the initial model from props. It returns the full model
// and optional commands to run immediately after the model is committed.
type Init[S, P any] func(props P) (*S, []Cmd)

// Update transforms a message into a partial model and commands.
//
// The returned *S is a partial model: zero-valued exported fields mean
// "unchanged" and are skipped by the merge. Returning nil, a pointer to
// the zero value, or the model argument itself all mean "no change".
type Update[S, P any] func(model *S, msg Msg, props P) (*S, []Cmd)

// Handler processes one message kind for a handler-map dispatcher.
type Handler[S, P any] func(msg Msg, model *S, props P) (*S, []Cmd)

// Handlers maps message names to handlers. Dispatching a message whose
// name has no entry panics with *UnhandledMsgError: a missing handler is
// a programming error, and failing loud beats silently corrupting state.
type Handlers[S, P any] map[string]Handler[S, P]

// Subscription is run exactly once per dispatcher lifetime, after init.
// It receives the initialized model and returns commands (executed once)
// plus an optional cleanup invoked when the dispatcher stops.
type Subscription[S any] func(model *S) ([]Cmd, func())

// UnhandledMsgError reports a message name with no entry in a handler
// map. The dispatch loop never recovers it.
type UnhandledMsgError struct {
	Msg string
}

func (e *UnhandledMsgError) Error() string {
	return fmt.Sprintf("elm: no handler registered for message %q", e.Msg)
}
