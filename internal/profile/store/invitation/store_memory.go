package invitation

import (
	"context"
	"sort"
	"strings"
	"sync"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/requestcontext"
)

// InMemoryStore keeps profile invitations in a map for tests and local
// development.
type InMemoryStore struct {
	mu          sync.RWMutex
	invitations map[id.InvitationID]*models.ProfileInvitation
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{invitations: make(map[id.InvitationID]*models.ProfileInvitation)}
}

// Save inserts or replaces an invitation. A fresh row gets its creation
// timestamp and claim window stamped here, so the expiry invariant holds no
// matter what the caller set.
func (s *InMemoryStore) Save(ctx context.Context, invitation *models.ProfileInvitation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invitations[invitation.ID]; !ok {
		now := requestcontext.Now(ctx)
		invitation.CreatedTimestamp = now
		invitation.Expires = now.Add(models.InvitationLifetime)
	}

	copied := *invitation
	s.invitations[invitation.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inv, ok := s.invitations[invitationID]; ok {
		copied := *inv
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindActiveByEmailAndProfile returns an unexpired invitation for the pair,
// claimed or not. Claimed-but-unexpired rows still count as active and block
// new invitations for the same pair.
func (s *InMemoryStore) FindActiveByEmailAndProfile(ctx context.Context, email string, profileID id.ProfileID) (*models.ProfileInvitation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := requestcontext.Now(ctx)
	for _, inv := range s.invitations {
		if strings.EqualFold(inv.Email, email) && inv.ProfileID == profileID && !inv.IsExpired(now) {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, invitationID id.InvitationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invitations[invitationID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.invitations, invitationID)
	return nil
}

func (s *InMemoryStore) Search(_ context.Context, filters models.InvitationFilters) (models.Page[*models.ProfileInvitation], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.ProfileInvitation
	for _, inv := range s.invitations {
		if !matches(inv, filters) {
			continue
		}
		copied := *inv
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

	out := models.Page[*models.ProfileInvitation]{
		Items:      []*models.ProfileInvitation{},
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

func matches(inv *models.ProfileInvitation, filters models.InvitationFilters) bool {
	if inv.ProfileID != filters.ProfileID {
		return false
	}
	if filters.Type != "" && inv.Type != filters.Type {
		return false
	}
	if filters.AccessLevel != "" && inv.AccessLevel != filters.AccessLevel {
		return false
	}
	if filters.Email != "" {
		if filters.ExactEmailMatch {
			if !strings.EqualFold(inv.Email, filters.Email) {
				return false
			}
		} else if !strings.Contains(strings.ToLower(inv.Email), strings.ToLower(filters.Email)) {
			return false
		}
	}
	return true
}
