package employer

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

func (s *InMemoryStoreSuite) seed(legalName, fein, industry string, otherNames ...string) *models.EmployerProfile {
	p := &models.EmployerProfile{
		ID:         id.NewProfileID(),
		FEIN:       fein,
		LegalName:  legalName,
		OtherNames: otherNames,
		Industry:   industry,
	}
	s.Require().NoError(s.store.Save(s.ctx, p))
	return p
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	p := s.seed("Acme Corp", "12-3456789", "Manufacturing", "Acme Holdings")

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Acme Corp", found.LegalName)
	s.Equal([]string{"Acme Holdings"}, found.OtherNames)
	s.Equal(s.now, found.CreatedTimestamp)
}

func (s *InMemoryStoreSuite) TestUpdatePreservesCreateStamps() {
	p := s.seed("Acme Corp", "12-3456789", "Manufacturing")

	later := s.now.Add(time.Hour)
	ctx := requestcontext.WithTime(context.Background(), later)

	p.Industry = "Logistics"
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Logistics", found.Industry)
	s.Equal(s.now, found.CreatedTimestamp)
	s.Equal(later, found.LastUpdatedTimestamp)
}

func (s *InMemoryStoreSuite) TestDelete() {
	p := s.seed("Acme Corp", "12-3456789", "Manufacturing")

	s.Require().NoError(s.store.Delete(s.ctx, p.ID))
	_, err := s.store.FindByID(s.ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSearch() {
	s.seed("Acme Corp", "11-1111111", "Manufacturing", "Ace Manufacturing")
	s.seed("Globex LLC", "22-2222222", "Technology")
	s.seed("Initech Inc", "33-3333333", "Technology")

	s.Run("by exact fein", func() {
		page, err := s.store.Search(s.ctx, models.EmployerFilters{FEIN: "22-2222222"})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
		s.Equal("Globex LLC", page.Items[0].LegalName)
	})

	s.Run("by legal name substring", func() {
		page, err := s.store.Search(s.ctx, models.EmployerFilters{Name: "globex"})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
	})

	s.Run("name filter also matches other names", func() {
		page, err := s.store.Search(s.ctx, models.EmployerFilters{Name: "ace manufacturing"})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
		s.Equal("Acme Corp", page.Items[0].LegalName)
	})

	s.Run("by industry", func() {
		page, err := s.store.Search(s.ctx, models.EmployerFilters{Industry: "tech"})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("pagination clamps to matches", func() {
		page, err := s.store.Search(s.ctx, models.EmployerFilters{
			Industry: "Technology",
			Page:     models.PageRequest{PageNumber: 1, PageSize: 1},
		})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
		s.Len(page.Items, 1)
	})
}
