// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
	sessionSourceKey
)

// SessionSource tells how the session user was authenticated.
type SessionSource string

const (
	SessionNone   SessionSource = ""
	SessionBearer SessionSource = "bearer"
	SessionCookie SessionSource = "cookie"
)

// WithUserID stores the session user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the session user ID.
// Returns uuid.Nil and false for anonymous requests.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithSession stores the user ID together with where its token came from.
func WithSession(ctx context.Context, id uuid.UUID, src SessionSource) context.Context {
	return context.WithValue(WithUserID(ctx, id), sessionSourceKey, src)
}

// SessionSourceFromCtx returns SessionNone for anonymous requests and for
// contexts built with WithUserID alone.
func SessionSourceFromCtx(ctx context.Context) SessionSource {
	if _, ok := UserIDFromCtx(ctx); !ok {
		return SessionNone
	}
	src, _ := ctx.Value(sessionSourceKey).(SessionSource)
	return src
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID. Returns "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
