// Package testutil provides shared helpers for store and integration tests.
package testutil

import (
	"context"
	"time"

	id "userhub/pkg/domain"
	"userhub/pkg/requestcontext"
)

// AgencyContext returns a context carrying a back-office caller identity
// and a fixed request time, as the middleware chain would populate it.
func AgencyContext(userID id.UserID, at time.Time) context.Context {
	ctx := requestcontext.WithTime(context.Background(), at)
	ctx = requestcontext.WithUserID(ctx, userID)
	return requestcontext.WithUserType(ctx, requestcontext.UserTypeAgency)
}

// PublicContext returns a context carrying a portal caller identity.
func PublicContext(userID id.UserID, email string, at time.Time) context.Context {
	ctx := requestcontext.WithTime(context.Background(), at)
	ctx = requestcontext.WithUserID(ctx, userID)
	ctx = requestcontext.WithUserEmail(ctx, email)
	return requestcontext.WithUserType(ctx, requestcontext.UserTypePublic)
}
