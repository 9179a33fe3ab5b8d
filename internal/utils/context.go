// Package utils provides general-purpose helpers shared by the HTTP layer
// and the upstream adapter: request-scoped context values, JSON response
// writing, the resty based HTTP client and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader carries the trace ID on inbound requests, their responses
// and the upstream calls made while serving them.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey is the key used to store the request trace ID in the context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace ID stored by WithTraceID.
// ok is false when the value is missing, empty or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
