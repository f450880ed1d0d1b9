package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithSession stores the authenticated session in the context. The session's
// user ID is also stored so UserIDFromCtx keeps working.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey, s)
	return WithUserID(ctx, s.UserID)
}

// SessionFromCtx extracts the session from the context.
// Returns false if absent or if the session has no user ID.
func SessionFromCtx(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	if !ok || s.UserID == uuid.Nil {
		return domain.Session{}, false
	}
	return s, true
}

// IsAdminCtx reports whether the context carries an admin session.
func IsAdminCtx(ctx context.Context) bool {
	s, ok := SessionFromCtx(ctx)
	return ok && s.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
