package logx

import (
	"log/slog"
	"sync/atomic"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// holder keeps atomic.Value fed with a single concrete type.
type holder struct{ l Logger }

var current atomic.Value

func init() {
	current.Store(holder{l: slog.Default()})
}

func L() Logger {
	return current.Load().(holder).l
}

// SetLogger replaces the process-wide logger. nil silences logging.
func SetLogger(l Logger) {
	if l == nil {
		l = nop{}
	}
	current.Store(holder{l: l})
}

// With returns the current logger with args prepended to every record.
func With(args ...any) Logger {
	l := L()
	if sl, ok := l.(*slog.Logger); ok {
		return sl.With(args...)
	}
	if _, ok := l.(nop); ok {
		return l
	}
	return withArgs{next: l, args: args}
}

type withArgs struct {
	next Logger
	args []any
}

func (w withArgs) merge(args []any) []any {
	out := make([]any, 0, len(w.args)+len(args))
	out = append(out, w.args...)
	return append(out, args...)
}

func (w withArgs) Debug(msg string, args ...any) { w.next.Debug(msg, w.merge(args)...) }
func (w withArgs) Info(msg string, args ...any)  { w.next.Info(msg, w.merge(args)...) }
func (w withArgs) Warn(msg string, args ...any)  { w.next.Warn(msg, w.merge(args)...) }
func (w withArgs) Error(msg string, args ...any) { w.next.Error(msg, w.merge(args)...) }
