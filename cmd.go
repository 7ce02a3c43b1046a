package elm

// Dispatch feeds a message back into the dispatch loop. It is handed to
// every command effect and may be called zero or more times, either
// synchronously or later from a callback.
type Dispatch func(Msg)

// Cmd is a single side effect produced by init, update, or a
// subscription. Effects in a command list run in order, each one
// independently: a panic inside one effect is caught and logged and does
// not stop its siblings.
type Cmd func(Dispatch)

// Emit returns a command that dispatches the given messages in order.
//
// Example:
//
//	return &model{Saved: true}, []elm.Cmd{elm.Emit(Refresh{})}
func Emit(msgs ...Msg) Cmd {
	return func(dispatch Dispatch) {
		for _, msg := range msgs {
			dispatch(msg)
		}
	}
}

// Batch concatenates command lists, skipping nil lists and nil commands.
func Batch(lists ...[]Cmd) []Cmd {
	var out []Cmd
	for _, list := range lists {
		for _, cmd := range list {
			if cmd != nil {
				out = append(out, cmd)
			}
		}
	}
	return out
}
