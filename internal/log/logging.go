// Package log builds the slog.Logger shared by every apigen command.
//
// Without a log file, records below ERROR go to stdout and errors go to
// stderr, so a build system can capture failures separately from progress.
// With a log file, the console only receives stderr output and the file gets
// everything at the configured level.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// LevelTrace sits below Debug and enables template-level detail.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter passes only records accepted by pass to the wrapped handler.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// WarnCounter counts WARN records flowing through it. Attribute and group
// derivations share the same counter.
type WarnCounter struct {
	h slog.Handler
	n *atomic.Int64
}

func NewWarnCounter(h slog.Handler) *WarnCounter {
	return &WarnCounter{h: h, n: new(atomic.Int64)}
}

func (c *WarnCounter) Count() int64 { return c.n.Load() }

func (c *WarnCounter) Enabled(ctx context.Context, level slog.Level) bool {
	return level == slog.LevelWarn || c.h.Enabled(ctx, level)
}

func (c *WarnCounter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level == slog.LevelWarn {
		c.n.Add(1)
	}
	if !c.h.Enabled(ctx, r.Level) {
		return nil
	}
	return c.h.Handle(ctx, r)
}

func (c *WarnCounter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &WarnCounter{h: c.h.WithAttrs(attrs), n: c.n}
}

func (c *WarnCounter) WithGroup(name string) slog.Handler {
	return &WarnCounter{h: c.h.WithGroup(name), n: c.n}
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
// The returned WarnCounter reports how many warnings the run emitted.
func SetupLogger(logLevel, logFile string) (*slog.Logger, *WarnCounter, []io.Closer, error) {
	return setup(logLevel, logFile, os.Stdout, os.Stderr)
}

func setup(logLevel, logFile string, stdout, stderr io.Writer) (*slog.Logger, *WarnCounter, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers []slog.Handler
	var closeFiles []io.Closer

	if logFile == "" {
		stdoutHandler := slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level})
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: stdoutHandler})

		stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError})
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: stderrHandler})
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers,
			slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		)
	}

	counter := NewWarnCounter(MultiHandler{hs: handlers})
	return slog.New(counter), counter, closeFiles, nil
}

// Options are the global logging flags shared by every command.
type Options struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"APIGEN_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of stdout" env:"APIGEN_LOG_FILE"`
}
