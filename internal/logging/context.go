// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// buildIDKey is the context key for the id of the current build run.
	buildIDKey contextKey = "build_id"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateBuildID creates a short identifier for one build run.
// Returns the first 8 characters of a UUID for readability.
func GenerateBuildID() string {
	return uuid.New().String()[:8]
}

// ContextWithBuildID returns a new context carrying the given build id.
func ContextWithBuildID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, buildIDKey, id)
}

// ContextWithNewBuildID returns a context with a freshly generated build id.
//
//	ctx = logging.ContextWithNewBuildID(ctx)
func ContextWithNewBuildID(ctx context.Context) context.Context {
	return ContextWithBuildID(ctx, GenerateBuildID())
}

// BuildIDFromContext retrieves the build id from context.
// Returns empty string if not present.
func BuildIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(buildIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the global logger if no logger is stored in context.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the build id (when present) already attached.
//
//	logging.Ctx(ctx).Info().Int("places", n).Msg("Loaded places")
//	// {"level":"info","build_id":"abc12345","places":42,"message":"Loaded places"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	if id := BuildIDFromContext(ctx); id != "" {
		logger = logger.With().Str("build_id", id).Logger()
	}
	return &logger
}

// CtxComponent is Ctx with an additional component field.
func CtxComponent(ctx context.Context, component string) zerolog.Logger {
	return Ctx(ctx).With().Str("component", component).Logger()
}
