package contextutil

import "context"

// Unexported key type keeps the context key collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID returns the request id previously injected by the
// middleware, or "" when the context carries none.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects the id into the context (also used by tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetKey exposes the raw key for middlewares that need it.
func GetKey() string {
	return string(requestIDKey)
}
