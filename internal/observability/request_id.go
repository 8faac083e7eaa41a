package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader is the HTTP header carrying the request ID, inbound and out.
const RequestIDHeader = "X-Request-ID"

func NewRequestID() string {
	return uuid.New().String()
}

// EnsureRequestID returns id when it is a well-formed UUID, otherwise a fresh
// one. Callers may propagate their own IDs across services, but arbitrary
// strings are not trusted into logs and traces.
func EnsureRequestID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return NewRequestID()
	}
	return id
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
