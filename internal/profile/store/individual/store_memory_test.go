package individual

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/requestcontext"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.ctx = requestcontext.WithUserID(s.ctx, id.NewUserID())
}

func (s *InMemoryStoreSuite) seed(first, last, email, ssn string) *models.IndividualProfile {
	p := &models.IndividualProfile{
		ID:        id.NewProfileID(),
		SSN:       ssn,
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
	s.Require().NoError(s.store.Save(s.ctx, p))
	return p
}

func (s *InMemoryStoreSuite) TestSaveStampsProvenance() {
	p := s.seed("Ada", "Lovelace", "ada@example.com", "123-45-6789")

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(s.now, found.CreatedTimestamp)
	s.Equal(s.now, found.LastUpdatedTimestamp)
	s.Equal(requestcontext.Actor(s.ctx), found.CreatedBy)
}

func (s *InMemoryStoreSuite) TestUpdatePreservesCreateStamps() {
	p := s.seed("Ada", "Lovelace", "ada@example.com", "123-45-6789")

	later := s.now.Add(time.Hour)
	otherActor := id.NewUserID()
	ctx := requestcontext.WithUserID(requestcontext.WithTime(context.Background(), later), otherActor)

	p.Email = "ada.lovelace@example.com"
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("ada.lovelace@example.com", found.Email)
	s.Equal(s.now, found.CreatedTimestamp)
	s.Equal(requestcontext.Actor(s.ctx), found.CreatedBy)
	s.Equal(later, found.LastUpdatedTimestamp)
	s.Equal(otherActor.String(), found.LastUpdatedBy)
}

func (s *InMemoryStoreSuite) TestFindByIDMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewProfileID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestDelete() {
	p := s.seed("Ada", "Lovelace", "ada@example.com", "123-45-6789")

	s.Require().NoError(s.store.Delete(s.ctx, p.ID))
	_, err := s.store.FindByID(s.ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(s.ctx, p.ID), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSearch() {
	s.seed("Ada", "Lovelace", "ada@example.com", "111-11-1111")
	s.seed("Grace", "Hopper", "grace@example.com", "222-22-2222")
	s.seed("Adam", "Smith", "adam@other.org", "333-33-3333")

	s.Run("by exact ssn", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{SSN: "222-22-2222"})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
		s.Equal("Grace", page.Items[0].FirstName)
	})

	s.Run("by email substring case-insensitive", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Email: "EXAMPLE.COM"})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("by name substring", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Name: "ada"})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("filters combine", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Name: "ada", Email: "other.org"})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
		s.Equal("Adam", page.Items[0].FirstName)
	})

	s.Run("no match yields empty page", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{SSN: "999-99-9999"})
		s.Require().NoError(err)
		s.Equal(0, page.TotalCount)
		s.Empty(page.Items)
	})
}

func (s *InMemoryStoreSuite) TestSearchPagination() {
	for i := 0; i < 5; i++ {
		ctx := requestcontext.WithTime(context.Background(), s.now.Add(time.Duration(i)*time.Minute))
		p := &models.IndividualProfile{ID: id.NewProfileID(), SSN: "000-00-0000", LastName: "Doe"}
		s.Require().NoError(s.store.Save(ctx, p))
	}

	page, err := s.store.Search(s.ctx, models.IndividualFilters{
		Page: models.PageRequest{PageNumber: 1, PageSize: 2},
	})
	s.Require().NoError(err)
	s.Equal(5, page.TotalCount)
	s.Len(page.Items, 2)
	s.Equal(1, page.PageNumber)
	s.Equal(2, page.PageSize)

	last, err := s.store.Search(s.ctx, models.IndividualFilters{
		Page: models.PageRequest{PageNumber: 2, PageSize: 2},
	})
	s.Require().NoError(err)
	s.Len(last.Items, 1)
}
