package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/axent-pl/securitycontext/common/logx"
	"github.com/stretchr/testify/assert"
)

type record struct {
	level string
	msg   string
	args  []any
}

type recorder struct{ records []record }

func (r *recorder) add(level, msg string, args []any) {
	r.records = append(r.records, record{level: level, msg: msg, args: args})
}
func (r *recorder) Debug(msg string, args ...any) { r.add("debug", msg, args) }
func (r *recorder) Info(msg string, args ...any)  { r.add("info", msg, args) }
func (r *recorder) Warn(msg string, args ...any)  { r.add("warn", msg, args) }
func (r *recorder) Error(msg string, args ...any) { r.add("error", msg, args) }

func TestWith_CustomLogger(t *testing.T) {
	rec := &recorder{}
	logx.SetLogger(rec)
	t.Cleanup(func() { logx.SetLogger(slog.Default()) })

	logx.With("component", "test").Warn("something", "key", "value")

	assert.Equal(t, []record{{
		level: "warn",
		msg:   "something",
		args:  []any{"component", "test", "key", "value"},
	}}, rec.records)
}

func TestWith_SlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logx.SetLogger(slog.Default()) })

	logx.With("component", "test").Debug("hello")

	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestSetLogger_Nil(t *testing.T) {
	logx.SetLogger(nil)
	t.Cleanup(func() { logx.SetLogger(slog.Default()) })

	assert.NotPanics(t, func() {
		logx.L().Error("dropped")
		logx.With("component", "test").Info("dropped")
	})
}
