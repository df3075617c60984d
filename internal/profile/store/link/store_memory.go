package link

import (
	"context"
	"sort"
	"sync"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/requestcontext"
)

// InMemoryStore keeps profile links in a map for tests and local development.
type InMemoryStore struct {
	mu    sync.RWMutex
	links map[id.LinkID]*models.ProfileLink
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{links: make(map[id.LinkID]*models.ProfileLink)}
}

// Save inserts or replaces a link row by ID. A different row for the same
// (profile, user) pair is rejected with ErrConflict, mirroring the unique
// constraint the SQL store relies on.
func (s *InMemoryStore) Save(ctx context.Context, link *models.ProfileLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.links {
		if other.ID != link.ID && other.ProfileID == link.ProfileID && other.UserID == link.UserID {
			return sentinel.ErrConflict
		}
	}

	actor, now := requestcontext.Actor(ctx), requestcontext.Now(ctx)
	if existing, ok := s.links[link.ID]; ok {
		link.Tracking = existing.Tracking
		link.StampUpdate(actor, now)
	} else {
		link.StampCreate(actor, now)
	}

	copied := *link
	s.links[link.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, linkID id.LinkID) (*models.ProfileLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.links[linkID]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByProfileAndUser(_ context.Context, profileID id.ProfileID, userID id.UserID) (*models.ProfileLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.links {
		if l.ProfileID == profileID && l.UserID == userID {
			copied := *l
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID) ([]*models.ProfileLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ProfileLink
	for _, l := range s.links {
		if l.UserID == userID {
			copied := *l
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedTimestamp.Before(out[j].CreatedTimestamp)
	})
	return out, nil
}

func (s *InMemoryStore) Delete(_ context.Context, linkID id.LinkID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[linkID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.links, linkID)
	return nil
}

func (s *InMemoryStore) Search(_ context.Context, filters models.LinkFilters) (models.Page[*models.ProfileLink], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.ProfileLink
	for _, l := range s.links {
		if !matches(l, filters) {
			continue
		}
		copied := *l
		matched = append(matched, &copied)
	}

	page := filters.Page.Normalize()
	sort.Slice(matched, func(i, j int) bool {
		before := matched[i].CreatedTimestamp.Before(matched[j].CreatedTimestamp)
		if page.SortOrder == "DESC" {
			return !before
		}
		return before
	})

	out := models.Page[*models.ProfileLink]{
		Items:      []*models.ProfileLink{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: len(matched),
	}
	start := page.Offset()
	if start >= len(matched) {
		return out, nil
	}
	end := start + page.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	out.Items = matched[start:end]
	return out, nil
}

func matches(l *models.ProfileLink, filters models.LinkFilters) bool {
	if l.ProfileID != filters.ProfileID {
		return false
	}
	if filters.HideAgencyReadonly && l.AccessLevel.IsHiddenForPublicUsers() {
		return false
	}
	if filters.UserIDs != nil {
		found := false
		for _, userID := range filters.UserIDs {
			if l.UserID == userID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
