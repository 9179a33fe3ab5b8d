// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the gateway.
//
// The process logger is built once in main with NewLogger. Each inbound
// request gets a child carrying its trace ID (WithTraceID), stored in the
// request context. Code below the HTTP layer takes it back out with
// FromContext, or FromContextOr when a component has its own logger to fall
// back on, so the upstream calls of one request share the request's fields.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Field names shared by the HTTP layer and the upstream adapter.
const (
	FieldRole    = "role"
	FieldTraceID = "trace_id"
	FieldAction  = "action"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout with a role field, a
// timestamp and a "func" caller field holding the function name.
// The global level is reset to debug; narrow it with SetLevel.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str(FieldRole, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel sets the global level by zerolog name. Empty keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagged with the request's trace ID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(FieldTraceID, traceID).Logger()}
}

// WithAction returns a child logger tagged with an upstream SOAP action.
func (l *Logger) WithAction(action string) *Logger {
	return &Logger{l.With().Str(FieldAction, action).Logger()}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one it is zerolog's
// default context logger, disabled unless configured, and never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}

// FromContextOr returns the logger stored in ctx, or fallback when ctx holds
// none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}

// Errorf, Warnf and Debugf satisfy resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Msgf(format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Msgf(format, v...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Msgf(format, v...)
}
