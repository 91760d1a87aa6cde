// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStage returns a logger scoped to a pipeline stage
func (l *Logger) WithStage(stage string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("stage", stage)),
	}
}

// WithPlace returns a logger scoped to the queried place
func (l *Logger) WithPlace(place string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("place", place)),
	}
}

// FetchError logs a data source failure
func (l *Logger) FetchError(source string, err error) {
	l.Error("fetch_error",
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

// FeatureSkipped logs a feature dropped during record building
func (l *Logger) FeatureSkipped(id int64, reason string) {
	l.Warn("feature_skipped",
		slog.Int64("feature_id", id),
		slog.String("reason", reason),
	)
}
