package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	studentIDKey ctxKey = "student_id"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithStudentID stores the authenticated student ID in the context.
func WithStudentID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, studentIDKey, id)
}

// StudentIDFromCtx returns the authenticated student ID.
// ok is false when the value is missing, nil or of the wrong type.
func StudentIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(studentIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller's IP address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx returns the caller's IP address or "".
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
