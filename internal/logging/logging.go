// Package logging builds the slog loggers used by the switch hosts.
//
// Console output goes to the writer the host passes in; setting File adds a
// size-rotated JSON log through lumberjack. The resulting logger is also
// installed as the errors package handler so reported switch errors and
// recovered panics land in the same stream.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	drifterrors "github.com/go-drift/switchbutton/pkg/errors"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// Format is text or json for the console handler. Empty means text.
	Format string
	// File enables a rotated JSON log at this path.
	File string
	// MaxSizeMB is the rotation threshold. Zero means 10.
	MaxSizeMB int
	// Verbose adds stack traces to reported errors.
	Verbose bool
}

// Logger is a configured logger and the resources behind it.
type Logger struct {
	*slog.Logger
	file *lj.Logger
	prev drifterrors.ErrorHandler
}

// New builds a logger writing to console. A nil console disables console
// output, which leaves only the file log (if any).
func New(opts Options, console io.Writer) (*Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var handlers []slog.Handler
	if console != nil {
		switch strings.ToLower(strings.TrimSpace(opts.Format)) {
		case "", "text", "console":
			handlers = append(handlers, slog.NewTextHandler(console, hopts))
		case "json":
			handlers = append(handlers, slog.NewJSONHandler(console, hopts))
		default:
			return nil, fmt.Errorf("unknown log format %q (use text or json)", opts.Format)
		}
	}

	l := &Logger{}
	if strings.TrimSpace(opts.File) != "" {
		size := opts.MaxSizeMB
		if size <= 0 {
			size = 10
		}
		l.file = &lj.Logger{Filename: opts.File, MaxSize: size, MaxBackups: 3, MaxAge: 28}
		handlers = append(handlers, slog.NewJSONHandler(l.file, hopts))
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.NewTextHandler(io.Discard, hopts)
	case 1:
		h = handlers[0]
	default:
		h = fanout(handlers)
	}
	l.Logger = slog.New(h)
	l.prev = drifterrors.SetHandler(&drifterrors.LogHandler{Logger: l.Logger, Verbose: opts.Verbose})
	return l, nil
}

// Close restores the previous error handler and closes the file log.
func (l *Logger) Close() error {
	drifterrors.SetHandler(l.prev)
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
