package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger implements Logger on log/slog. Loggers derived with With share
// the level of their parent.
type SlogLogger struct {
	l     *slog.Logger
	level *slog.LevelVar
}

// NewSlogLogger wraps an existing *slog.Logger. Its level is fixed by the
// handler, so SetLevel has no effect.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// newSlogBackend writes JSON records to w at the named level (debug, info,
// warn, error; unknown names mean info).
func newSlogBackend(w io.Writer, level string) *SlogLogger {
	lv := new(slog.LevelVar)
	lv.Set(slogLevel(level))
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv})
	return &SlogLogger{l: slog.New(h), level: lv}
}

// SetLevel changes the minimum level at runtime.
func (s *SlogLogger) SetLevel(level string) {
	if s.level != nil {
		s.level.Set(slogLevel(level))
	}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...), level: s.level}
}

func slogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
