// Package logger is the zerolog-backed logging surface shared by the compiler
// packages and the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New. Level is any zerolog level name and defaults to
// info. Writer defaults to stderr.
type Options struct {
	Level         string
	HumanReadable bool
	NoColor       bool
	Writer        io.Writer
}

// Logger is safe to use as a nil pointer, which discards everything.
type Logger struct {
	zl zerolog.Logger
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: %w", err)
	}
	return level, nil
}

func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opts.NoColor}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a non-nil logger that drops every entry.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// Enabled reports whether an entry at level would be written. Unknown level
// names are never enabled.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	return err == nil && parsed >= l.zl.GetLevel()
}

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	ev := l.zl.WithLevel(level)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }

func (l *Logger) Info(msg string) { l.emit(zerolog.InfoLevel, nil, msg) }

func (l *Logger) Warn(msg string) { l.emit(zerolog.WarnLevel, nil, msg) }

// Error records err under the "error" field.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }
