package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
)

// Logger keeps a printf-style surface over slog so call sites read like
// log.Info("Blog %d created", id).
type Logger struct {
	base *slog.Logger
}

// New returns a JSON logger writing to stdout.
func New() *Logger {
	return NewWithWriter(os.Stdout, false)
}

// NewForEnvironment switches to the colored development handler for local runs.
func NewForEnvironment(development bool) *Logger {
	return NewWithWriter(os.Stdout, development)
}

func NewWithWriter(w io.Writer, development bool) *Logger {
	var handler slog.Handler
	if development {
		handler = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{base: slog.New(handler)}
}

// With returns a child logger carrying the given attributes on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{base: l.base.With(args...)}
}

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.base
}

func (l *Logger) Debug(format string, args ...any) {
	l.base.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.base.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.base.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.base.Error(fmt.Sprintf(format, args...))
}
