package individual

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

// InMemoryStore keeps individual profiles in a map for tests and local
// development.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.ProfileID]*models.IndividualProfile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.ProfileID]*models.IndividualProfile)}
}

// Save inserts or replaces a profile, stamping provenance from the request
// context. A fresh row gets create provenance; an existing row keeps its
// original create stamps.
func (s *InMemoryStore) Save(ctx context.Context, profile *models.IndividualProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, now := requestcontext.Actor(ctx), requestcontext.Now(ctx)
	if existing, ok := s.profiles[profile.ID]; ok {
		profile.Tracking = existing.Tracking
		profile.StampUpdate(actor, now)
	} else {
		profile.StampCreate(actor, now)
	}

	copied := *profile
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, profileID id.ProfileID) (*models.IndividualProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[profileID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, profileID id.ProfileID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profileID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.profiles, profileID)
	return nil
}

func (s *InMemoryStore) Search(_ context.Context, filters models.IndividualFilters) (models.Page[*models.IndividualProfile], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.IndividualProfile
	for _, p := range s.profiles {
		if !matches(p, filters) {
			continue
		}
		copied := *p
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

	return paginate(matched, page), nil
}

func matches(p *models.IndividualProfile, filters models.IndividualFilters) bool {
	if filters.SSN != "" && p.SSN != filters.SSN {
		return false
	}
	if filters.Email != "" && !containsFold(p.Email, filters.Email) {
		return false
	}
	if filters.Name != "" {
		full := strings.Join([]string{p.FirstName, p.MiddleName, p.LastName}, " ")
		if !containsFold(full, filters.Name) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func paginate(matched []*models.IndividualProfile, page models.PageRequest) models.Page[*models.IndividualProfile] {
	out := models.Page[*models.IndividualProfile]{
		Items:      []*models.IndividualProfile{},
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: len(matched),
	}
	start := page.Offset()
	if start >= len(matched) {
		return out
	}
	end := start + page.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	out.Items = matched[start:end]
	return out
}
