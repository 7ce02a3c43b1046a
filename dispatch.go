package elm

import (
	"github.com/google/uuid"

	"github.com/grindlemire/go-elm/internal/debug"
)

// Cell is the reactive state handle the dispatch loop commits models
// into. The dispatcher is the sole writer for the model it owns; a host
// framework implements Set to trigger its re-render.
//
// State[*S] is the default implementation.
type Cell[S any] interface {
	Get() *S
	Set(*S)
}

// Dispatcher runs the Elm dispatch loop for one component instance:
// it resolves update logic for each message, merges partial models,
// executes commands, and guarantees in-order processing under reentrant
// dispatch by buffering messages in a FIFO queue.
//
// A Dispatcher is bound to the host's main loop. Dispatch, Start, and
// Stop must be called from that loop only; background work hops onto it
// via the scheduler configured with WithScheduler.
type Dispatcher[S, P any] struct {
	id       string
	init     Init[S, P]
	update   Update[S, P]
	handlers Handlers[S, P]
	sub      Subscription[S]

	cell       Cell[S]
	logger     Logger
	middleware func(Msg)
	scheduler  func(func())

	props   P
	started bool
	stopped bool
	cleanup func()
	done    chan struct{}

	// Reentrancy state. draining is true while a dispatch cycle is
	// processing; messages dispatched during that window queue up and
	// drain in FIFO order before the outer Dispatch returns.
	draining bool
	queue    []Msg
}

// New creates a dispatcher whose update logic is a single function.
func New[S, P any](init Init[S, P], update Update[S, P], opts ...Option[S, P]) (*Dispatcher[S, P], error) {
	if update == nil {
		return nil, errNilUpdate
	}
	return newDispatcher(init, update, nil, opts)
}

// NewFromHandlers creates a dispatcher whose update logic is a map from
// message name to handler. Dispatching a message with no entry in the
// map panics with *UnhandledMsgError; see Handlers.
func NewFromHandlers[S, P any](init Init[S, P], handlers Handlers[S, P], opts ...Option[S, P]) (*Dispatcher[S, P], error) {
	if len(handlers) == 0 {
		return nil, errNilUpdate
	}
	return newDispatcher(init, nil, handlers, opts)
}

func newDispatcher[S, P any](init Init[S, P], update Update[S, P], handlers Handlers[S, P], opts []Option[S, P]) (*Dispatcher[S, P], error) {
	if init == nil {
		return nil, errNilInit
	}
	if err := validateModelType[S](); err != nil {
		return nil, err
	}
	d := &Dispatcher[S, P]{
		id:       uuid.NewString(),
		init:     init,
		update:   update,
		handlers: handlers,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.cell == nil {
		d.cell = NewState[*S](nil)
	}
	return d, nil
}

// Start initializes the dispatcher: it calls init with the given props,
// commits the initial model to the cell synchronously, executes the
// initial commands, and then runs the subscription (if any) exactly
// once. Start is idempotent; calls after the first are no-ops.
func (d *Dispatcher[S, P]) Start(props P) {
	if d.started {
		return
	}
	d.started = true
	d.props = props

	model, cmds := d.init(props)
	d.cell.Set(model)
	d.logInfo("dispatcher started")

	d.runCmds(cmds)

	if d.sub != nil {
		subCmds, cleanup := d.sub(d.cell.Get())
		d.cleanup = cleanup
		d.runCmds(subCmds)
	}
}

// Dispatch feeds one message through the loop.
//
// Before the model exists (Start not yet called) this is a silent no-op,
// so setup code may dispatch early without guarding. The middleware hook
// still sees every message, including those dropped here.
//
// If a cycle is already running, the message is appended to the internal
// queue and processed, in order, before the outer Dispatch returns.
func (d *Dispatcher[S, P]) Dispatch(msg Msg) {
	if d.middleware != nil {
		d.middleware(msg)
	}
	if !d.started || d.stopped || d.cell.Get() == nil {
		debug.Log("Dispatch: dropping %q (model not initialized)", msg.Name())
		return
	}
	if d.draining {
		d.queue = append(d.queue, msg)
		return
	}
	d.drain(msg)
}

// drain runs one full dispatch cycle starting with first: update, merge,
// commands, then any messages buffered meanwhile. Partial models
// accumulate and commit to the cell once, merged onto the latest
// committed model so external cell writes during the cycle are not lost.
func (d *Dispatcher[S, P]) drain(first Msg) {
	d.draining = true

	working := d.cell.Get()
	accum := new(S)
	modified := false

	msg := first
	for {
		d.logDebug("message received", "msg", msg.Name())

		partial, cmds := d.applyUpdate(working, msg)
		if partial != nil && partial != working && !isZeroPartial(partial) {
			mergeInto(accum, partial)
			working = cloneModel(working)
			mergeInto(working, partial)
			modified = true
			d.logDebug("model updated", "msg", msg.Name())
		}

		d.runCmds(cmds)

		if len(d.queue) == 0 {
			break
		}
		msg = d.queue[0]
		d.queue = d.queue[1:]
	}

	d.draining = false

	if modified {
		latest := cloneModel(d.cell.Get())
		mergeInto(latest, accum)
		d.cell.Set(latest)
	}
}

// applyUpdate resolves and invokes the update logic for msg. A panic
// inside the update call is recovered and logged, and msg produces no
// partial and no commands. A handler-map miss panics before the recover
// is installed, so it propagates.
func (d *Dispatcher[S, P]) applyUpdate(working *S, msg Msg) (partial *S, cmds []Cmd) {
	run := d.update
	if d.handlers != nil {
		h, ok := d.handlers[msg.Name()]
		if !ok {
			panic(&UnhandledMsgError{Msg: msg.Name()})
		}
		run = func(model *S, msg Msg, props P) (*S, []Cmd) {
			return h(msg, model, props)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			d.logError("update failed", "msg", msg.Name(), "panic", r)
			partial, cmds = nil, nil
		}
	}()
	return run(working, msg, d.props)
}

// runCmds executes each effect in order. Effects are independent: a
// panic in one is recovered and logged and the rest still run.
func (d *Dispatcher[S, P]) runCmds(cmds []Cmd) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		d.runCmd(cmd)
	}
}

func (d *Dispatcher[S, P]) runCmd(cmd Cmd) {
	defer func() {
		if r := recover(); r != nil {
			d.logError("command failed", "panic", r)
		}
	}()
	cmd(d.Dispatch)
}

// Stop tears the dispatcher down: it closes the done channel (stopping
// command sources) and runs the subscription cleanup. Stop is
// idempotent. Messages dispatched after Stop are dropped.
func (d *Dispatcher[S, P]) Stop() {
	if !d.started || d.stopped {
		return
	}
	d.stopped = true
	close(d.done)
	if d.cleanup != nil {
		d.cleanup()
		d.cleanup = nil
	}
	d.logInfo("dispatcher stopped")
}

// Model returns the current committed model, or nil before Start.
func (d *Dispatcher[S, P]) Model() *S {
	return d.cell.Get()
}

// Done returns a channel closed when the dispatcher stops. Command
// sources select on it to end their goroutines.
func (d *Dispatcher[S, P]) Done() <-chan struct{} {
	return d.done
}

// post runs fn on the host's main loop via the configured scheduler, or
// inline when no scheduler is set.
func (d *Dispatcher[S, P]) post(fn func()) {
	if d.scheduler != nil {
		d.scheduler(fn)
		return
	}
	fn()
}

func (d *Dispatcher[S, P]) logDebug(msg string, keyvals ...any) {
	debug.Log("%s %v", msg, keyvals)
	if d.logger != nil {
		d.logger.Debug(msg, append(keyvals, "dispatcher", d.id)...)
	}
}

func (d *Dispatcher[S, P]) logInfo(msg string, keyvals ...any) {
	debug.Log("%s %v", msg, keyvals)
	if d.logger != nil {
		d.logger.Info(msg, append(keyvals, "dispatcher", d.id)...)
	}
}

func (d *Dispatcher[S, P]) logError(msg string, keyvals ...any) {
	debug.Log("%s %v", msg, keyvals)
	if d.logger != nil {
		d.logger.Error(msg, append(keyvals, "dispatcher", d.id)...)
	}
}
