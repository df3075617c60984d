// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// This package defines context keys and getter/setter functions for values that are
// typically set by middleware but consumed by services. By keeping this package free
// of net/http dependencies, services can import only what they need without pulling
// in HTTP-related code.
//
// The acting user's identity (id, email, category) is always threaded through
// context rather than read from any ambient security holder, so authorization
// rules like "public users only" stay unit-testable.
//
// Usage in services (read values):
//
//	userID := requestcontext.UserID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithUserID(ctx, userID)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithUserType(ctx, requestcontext.UserTypePublic)
package requestcontext

import (
	"context"
	"time"

	id "userhub/pkg/domain"
)

// UserType is the caller category resolved during authentication.
type UserType string

const (
	// UserTypePublic marks portal users; invitation claiming is restricted
	// to this category.
	UserTypePublic UserType = "public"

	// UserTypeAgency marks back-office users.
	UserTypeAgency UserType = "agency"
)

// Context key types (unexported for encapsulation).
type (
	userIDKey      struct{}
	userEmailKey   struct{}
	userTypeKey    struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyUserID      = userIDKey{}
	ContextKeyUserEmail   = userEmailKey{}
	ContextKeyUserType    = userTypeKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// UserID retrieves the authenticated user ID from the context.
// Returns the zero value (nil UUID) if not set.
func UserID(ctx context.Context) id.UserID {
	if userID, ok := ctx.Value(ContextKeyUserID).(id.UserID); ok {
		return userID
	}
	return id.UserID{}
}

// WithUserID injects a user ID into the context.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserEmail retrieves the authenticated user's email from the context.
func UserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(ContextKeyUserEmail).(string); ok {
		return email
	}
	return ""
}

// WithUserEmail injects the authenticated user's email into the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextKeyUserEmail, email)
}

// ActingUserType retrieves the caller category from the context.
func ActingUserType(ctx context.Context) UserType {
	if ut, ok := ctx.Value(ContextKeyUserType).(UserType); ok {
		return ut
	}
	return ""
}

// WithUserType injects the caller category into the context.
func WithUserType(ctx context.Context, ut UserType) context.Context {
	return context.WithValue(ctx, ContextKeyUserType, ut)
}

// Actor returns the identity recorded in created-by/updated-by stamps:
// the acting user's id, or "system" for unauthenticated writes such as
// migrations and seeds.
func Actor(ctx context.Context) string {
	if userID := UserID(ctx); !userID.IsNil() {
		return userID.String()
	}
	return "system"
}

// RequestID retrieves the correlation ID from the context.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now returns the request-scoped timestamp, falling back to the wall clock
// when no middleware captured one. A single timestamp per request keeps
// created/updated stamps consistent across every write in one operation.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now().UTC()
}

// WithTime injects a fixed timestamp into the context. Middleware sets this
// once per request; tests use it to freeze the clock.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
