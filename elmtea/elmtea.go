// Package elmtea runs an elm.Dispatcher inside a Bubble Tea program.
// Bubble Tea supplies the main loop and rendering; the dispatcher
// supplies update logic, model merging, and command execution.
package elmtea

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	elm "github.com/grindlemire/go-elm"
)

// Translator maps an incoming tea.Msg to a dispatch-loop message.
// Returning nil leaves the host message unhandled (it is dropped).
type Translator func(tea.Msg) elm.Msg

// execMsg carries a callback queued onto the Bubble Tea loop by a
// Scheduler. Program.Update runs it on the main loop.
type execMsg struct {
	fn func()
}

// Scheduler queues dispatcher callbacks onto the Bubble Tea loop.
// Create one, pass its Schedule method to elm.WithScheduler, and hand
// the scheduler to New; Program.Run attaches it to the tea.Program.
// Callbacks scheduled before the program starts are buffered.
type Scheduler struct {
	mu      sync.Mutex
	prog    *tea.Program
	pending []func()
}

// NewScheduler creates an unattached scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues fn onto the Bubble Tea loop. Safe to call from any
// goroutine.
func (s *Scheduler) Schedule(fn func()) {
	s.mu.Lock()
	if s.prog == nil {
		s.pending = append(s.pending, fn)
		s.mu.Unlock()
		return
	}
	prog := s.prog
	s.mu.Unlock()
	prog.Send(execMsg{fn: fn})
}

// attach binds the scheduler to a running program and flushes callbacks
// buffered before startup.
func (s *Scheduler) attach(prog *tea.Program) {
	s.mu.Lock()
	s.prog = prog
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range pending {
		prog.Send(execMsg{fn: fn})
	}
}

// Program adapts a Dispatcher to tea.Model. The dispatcher starts on
// Init, host messages are translated and dispatched on Update, and View
// renders the committed model. The program quits when the dispatcher
// stops.
type Program[S, P any] struct {
	dispatcher *elm.Dispatcher[S, P]
	props      P
	translate  Translator
	view       func(*S) string
	scheduler  *Scheduler
}

// New creates a Program. The scheduler may be nil when no command
// sources need to hop onto the loop.
func New[S, P any](d *elm.Dispatcher[S, P], props P, translate Translator, view func(*S) string, scheduler *Scheduler) *Program[S, P] {
	return &Program[S, P]{
		dispatcher: d,
		props:      props,
		translate:  translate,
		view:       view,
		scheduler:  scheduler,
	}
}

// Init starts the dispatcher: init runs, the initial model commits, and
// the subscription registers.
func (p *Program[S, P]) Init() tea.Cmd {
	p.dispatcher.Start(p.props)
	return nil
}

// Update feeds host messages through the translator into the dispatch
// loop. Scheduled callbacks run here so they execute on the main loop.
func (p *Program[S, P]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if em, ok := msg.(execMsg); ok {
		em.fn()
		return p, p.quitIfStopped()
	}
	if m := p.translate(msg); m != nil {
		p.dispatcher.Dispatch(m)
	}
	return p, p.quitIfStopped()
}

// View renders the committed model, or nothing before init.
func (p *Program[S, P]) View() string {
	m := p.dispatcher.Model()
	if m == nil {
		return ""
	}
	return p.view(m)
}

func (p *Program[S, P]) quitIfStopped() tea.Cmd {
	select {
	case <-p.dispatcher.Done():
		return tea.Quit
	default:
		return nil
	}
}

// Run builds the tea.Program, attaches the scheduler, and blocks until
// the program exits. The dispatcher is stopped on the way out so the
// subscription cleanup always runs.
func (p *Program[S, P]) Run(opts ...tea.ProgramOption) error {
	prog := tea.NewProgram(p, opts...)
	if p.scheduler != nil {
		p.scheduler.attach(prog)
	}
	_, err := prog.Run()
	p.dispatcher.Stop()
	return err
}
