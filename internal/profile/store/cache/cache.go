// Package cache decorates a profile store with a Redis read-through layer.
// Profile lookups dominate the read path: every link and invitation
// operation resolves its profile first, so the hot rows stay cached under a
// short TTL while writes invalidate eagerly.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
)

const defaultTTL = 5 * time.Minute

// Inner is the store surface the decorator wraps; both profile kinds
// satisfy it with their own record and filter types.
type Inner[P, F any] interface {
	Save(ctx context.Context, profile *P) error
	FindByID(ctx context.Context, profileID id.ProfileID) (*P, error)
	Delete(ctx context.Context, profileID id.ProfileID) error
	Search(ctx context.Context, filters F) (models.Page[*P], error)
}

// Store is a caching wrapper around a profile store. It satisfies the same
// surface as the store it wraps, so services stay unaware of the cache.
type Store[P, F any] struct {
	inner  Inner[P, F]
	client *redis.Client
	prefix string
	ttl    time.Duration
	keyOf  func(*P) id.ProfileID
}

type Option[P, F any] func(*Store[P, F])

// WithTTL overrides the default cache entry lifetime.
func WithTTL[P, F any](ttl time.Duration) Option[P, F] {
	return func(s *Store[P, F]) { s.ttl = ttl }
}

// New wraps inner with a Redis read-through cache. The prefix namespaces
// keys per profile kind; keyOf extracts the id used for invalidation on
// writes.
func New[P, F any](inner Inner[P, F], client *redis.Client, prefix string, keyOf func(*P) id.ProfileID, opts ...Option[P, F]) *Store[P, F] {
	s := &Store[P, F]{
		inner:  inner,
		client: client,
		prefix: prefix,
		ttl:    defaultTTL,
		keyOf:  keyOf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Store[P, F]) key(profileID id.ProfileID) string {
	return s.prefix + ":" + profileID.String()
}

// FindByID serves from Redis when possible and falls back to the inner
// store on a miss or any Redis failure. Cache population is best effort.
func (s *Store[P, F]) FindByID(ctx context.Context, profileID id.ProfileID) (*P, error) {
	raw, err := s.client.Get(ctx, s.key(profileID)).Bytes()
	if err == nil {
		var cached P
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	}

	profile, err := s.inner.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(profile); err == nil {
		_ = s.client.Set(ctx, s.key(profileID), encoded, s.ttl).Err()
	}
	return profile, nil
}

// Save writes through and invalidates the cached row. An invalidation
// failure leaves a stale entry bounded by the TTL.
func (s *Store[P, F]) Save(ctx context.Context, profile *P) error {
	if err := s.inner.Save(ctx, profile); err != nil {
		return err
	}
	_ = s.client.Del(ctx, s.key(s.keyOf(profile))).Err()
	return nil
}

// Delete removes the row and its cache entry.
func (s *Store[P, F]) Delete(ctx context.Context, profileID id.ProfileID) error {
	if err := s.inner.Delete(ctx, profileID); err != nil {
		return err
	}
	_ = s.client.Del(ctx, s.key(profileID)).Err()
	return nil
}

// Search always hits the inner store; filtered result sets are not cached.
func (s *Store[P, F]) Search(ctx context.Context, filters F) (models.Page[*P], error) {
	return s.inner.Search(ctx, filters)
}
