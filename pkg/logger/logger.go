// Package logger provides structured logging built on Go's slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is a thin printf-style wrapper over slog. The Ctx variants attach
// the context so the correlation handler can inject correlation_id.
type Logger struct {
	slog *slog.Logger
}

// New builds a Logger writing JSON to stdout at the given level.
// LOG_FORMAT=console switches to a human-readable text handler.
func New(level string) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	// Inject correlation_id from context into every record.
	handler = NewCorrelationHandler(handler)

	l := slog.New(handler)
	slog.SetDefault(l)

	return &Logger{slog: l}
}

func (l *Logger) Debug(format string, args ...any) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.slog.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.slog.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.slog.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and terminates the process.
func (l *Logger) Fatal(err error) {
	l.slog.Error(err.Error())
	os.Exit(1)
}

func (l *Logger) DebugCtx(ctx context.Context, format string, args ...any) {
	l.slog.DebugContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) InfoCtx(ctx context.Context, format string, args ...any) {
	l.slog.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) WarnCtx(ctx context.Context, format string, args ...any) {
	l.slog.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) ErrorCtx(ctx context.Context, format string, args ...any) {
	l.slog.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
