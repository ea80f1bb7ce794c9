// Package logger wires the process-wide slog logger. The sandbox runs a
// terminal UI, so the default sink is a file-friendly writer chosen by the
// caller rather than stdout decoration.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	Level  string
	Format string // "console" (default), "text", or "json"
	Output io.Writer
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init installs the process logger exactly once; later calls are no-ops.
func Init(cfg Config) {
	once.Do(func() {
		if cfg.Output == nil {
			cfg.Output = os.Stderr
		}
		level := ParseLevel(cfg.Level)
		var handler slog.Handler
		switch cfg.Format {
		case "json":
			handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: level})
		case "text":
			handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level})
		default:
			handler = &consoleHandler{out: cfg.Output, level: level}
		}
		lg = slog.New(handler)
		slog.SetDefault(lg)
	})
}

// L returns the process logger, initializing a default one if needed.
func L() *slog.Logger {
	if lg == nil {
		Init(Config{Level: "info"})
	}
	return lg
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler writes compact human-readable lines:
//
//	15:04:05 INFO  sandbox started  terrain=96x96 seed=1
type consoleHandler struct {
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	line := fmt.Sprintf("%s %s %s", r.Time.Format(time.TimeOnly), levelTag(r.Level), r.Message)
	for _, a := range h.attrs {
		line += fmt.Sprintf("  %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf("  %s=%v", a.Key, a.Value)
		return true
	})
	_, err := fmt.Fprintln(h.out, line)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &consoleHandler{out: h.out, level: h.level, attrs: merged}
}

func (h *consoleHandler) WithGroup(string) slog.Handler {
	return h
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}
