// Package ctxutil carries request-scoped values (caller identity and request
// id) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	emailKey     struct{}
	requestIDKey struct{}
)

// WithUserID marks ctx as belonging to a signed-in user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// WithIdentity stores both the user id and email of the caller.
func WithIdentity(ctx context.Context, id uuid.UUID, email string) context.Context {
	return WithEmail(WithUserID(ctx, id), email)
}

// UserIDFromCtx reports the signed-in user. A missing or nil id means the
// request is anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey{}, email)
}

// EmailFromCtx returns the email stored by WithEmail, or "".
func EmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(emailKey{}).(string)
	return email
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
