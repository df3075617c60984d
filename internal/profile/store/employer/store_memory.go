package employer

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

// InMemoryStore keeps employer profiles in a map for tests and local
// development.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.ProfileID]*models.EmployerProfile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.ProfileID]*models.EmployerProfile)}
}

func (s *InMemoryStore) Save(ctx context.Context, profile *models.EmployerProfile) error {
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
	copied.OtherNames = append([]string(nil), profile.OtherNames...)
	s.profiles[profile.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, profileID id.ProfileID) (*models.EmployerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[profileID]; ok {
		copied := *p
		copied.OtherNames = append([]string(nil), p.OtherNames...)
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

func (s *InMemoryStore) Search(_ context.Context, filters models.EmployerFilters) (models.Page[*models.EmployerProfile], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.EmployerProfile
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

	out := models.Page[*models.EmployerProfile]{
		Items:      []*models.EmployerProfile{},
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

// matches applies the filter set; the name filter covers both the legal name
// and any of the other recorded names.
func matches(p *models.EmployerProfile, filters models.EmployerFilters) bool {
	if filters.FEIN != "" && p.FEIN != filters.FEIN {
		return false
	}
	if filters.Name != "" && !nameMatches(p, filters.Name) {
		return false
	}
	if filters.BusinessType != "" && !containsFold(p.BusinessType, filters.BusinessType) {
		return false
	}
	if filters.Industry != "" && !containsFold(p.Industry, filters.Industry) {
		return false
	}
	return true
}

func nameMatches(p *models.EmployerProfile, name string) bool {
	if containsFold(p.LegalName, name) {
		return true
	}
	for _, other := range p.OtherNames {
		if containsFold(other, name) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
