package elm

import "log/slog"

// Logger receives structured log records from the dispatch loop at
// well-defined points: message received (debug), model updated (debug),
// error caught (error), dispatcher started and stopped (info).
//
// The logger is optional. A nil logger suppresses logging and changes
// nothing else about dispatch behavior.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NewSlogLogger adapts a *slog.Logger to the Logger interface. Keyvals
// are passed through as alternating slog keys and values.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, keyvals ...any) { s.l.Debug(msg, keyvals...) }
func (s slogLogger) Info(msg string, keyvals ...any)  { s.l.Info(msg, keyvals...) }
func (s slogLogger) Error(msg string, keyvals ...any) { s.l.Error(msg, keyvals...) }
