package logger

import (
	"io"
	"log/slog"

	"github.com/Koliatoday/goit-algo-hw-04/internal/config"
)

const (
	logLevelDebug = "debug"
	logLevelInfo  = "info"
	logLevelWarn  = "warn"
	logLevelError = "error"
)

func NewLogger(logContext map[string]string, w io.Writer) *slog.Logger {
	attrs := []slog.Attr{}
	for key, value := range logContext {
		attrs = append(attrs, slog.Attr{Key: key, Value: slog.StringValue(value)})
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: getLogLevel()}).WithAttrs(attrs)
	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.Spec.LogLevel {
	case logLevelDebug:
		return slog.LevelDebug
	case logLevelInfo:
		return slog.LevelInfo
	case logLevelWarn:
		return slog.LevelWarn
	case logLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
