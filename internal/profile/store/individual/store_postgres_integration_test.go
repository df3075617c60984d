//go:build integration

package individual

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/testutil"
	"userhub/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite

	pg    *containers.PostgresContainer
	store *PostgresStore
	ctx   context.Context
	actor id.UserID
	now   time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgresStore(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateAll(context.Background()))
	s.actor = id.NewUserID()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = testutil.AgencyContext(s.actor, s.now)
}

func (s *PostgresStoreSuite) TestRoundTripWithAddresses() {
	profile := &models.IndividualProfile{
		ID:        id.NewProfileID(),
		SSN:       "123-45-6789",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		PrimaryAddress: &models.Address{
			ID:         id.NewProfileID().String(),
			Address1:   "12 Analytical Way",
			City:       "London",
			State:      "LN",
			PostalCode: "E1 6AN",
			Country:    "GB",
		},
	}
	s.Require().NoError(s.store.Save(s.ctx, profile))

	got, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal(profile.SSN, got.SSN)
	s.Require().NotNil(got.PrimaryAddress)
	s.Equal("12 Analytical Way", got.PrimaryAddress.Address1)
	s.Nil(got.MailingAddress)
	s.Equal(s.actor.String(), got.CreatedBy)
}

func (s *PostgresStoreSuite) TestUpdatePreservesCreateStamps() {
	profile := &models.IndividualProfile{ID: id.NewProfileID(), SSN: "123-45-6789"}
	s.Require().NoError(s.store.Save(s.ctx, profile))

	otherActor := id.NewUserID()
	later := testutil.AgencyContext(otherActor, s.now.Add(time.Hour))
	profile.Email = "ada@example.com"
	s.Require().NoError(s.store.Save(later, profile))

	got, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal("ada@example.com", got.Email)
	s.Equal(s.actor.String(), got.CreatedBy)
	s.Equal(otherActor.String(), got.LastUpdatedBy)
	s.True(got.CreatedTimestamp.Equal(s.now))
	s.True(got.LastUpdatedTimestamp.Equal(s.now.Add(time.Hour)))
}

func (s *PostgresStoreSuite) TestDelete() {
	profile := &models.IndividualProfile{ID: id.NewProfileID(), SSN: "123-45-6789"}
	s.Require().NoError(s.store.Save(s.ctx, profile))

	s.Require().NoError(s.store.Delete(s.ctx, profile.ID))
	_, err := s.store.FindByID(s.ctx, profile.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSearch() {
	seed := func(ssn, first, last, email string) {
		s.Require().NoError(s.store.Save(s.ctx, &models.IndividualProfile{
			ID: id.NewProfileID(), SSN: ssn, FirstName: first, LastName: last, Email: email,
		}))
	}
	seed("111-11-1111", "Ada", "Lovelace", "ada@example.com")
	seed("222-22-2222", "Grace", "Hopper", "grace@example.com")
	seed("333-33-3333", "Adam", "Smith", "adam@elsewhere.org")

	s.Run("exact ssn match", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{SSN: "111-11-1111"})
		s.Require().NoError(err)
		s.Require().Equal(1, page.TotalCount)
		s.Equal("Ada", page.Items[0].FirstName)
	})

	s.Run("email substring is case-insensitive", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Email: "EXAMPLE.COM"})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("name substring", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Name: "ada"})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("filters combine", func() {
		page, err := s.store.Search(s.ctx, models.IndividualFilters{Name: "ada", Email: "example.com"})
		s.Require().NoError(err)
		s.Require().Equal(1, page.TotalCount)
		s.Equal("Ada", page.Items[0].FirstName)
	})
}

func (s *PostgresStoreSuite) TestSearchPagination() {
	for i := 0; i < 5; i++ {
		ctx := testutil.AgencyContext(s.actor, s.now.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.store.Save(ctx, &models.IndividualProfile{
			ID:  id.NewProfileID(),
			SSN: fmt.Sprintf("00%d-00-000%d", i, i),
		}))
	}

	page, err := s.store.Search(s.ctx, models.IndividualFilters{
		Page: models.PageRequest{PageNumber: 2, PageSize: 2},
	})
	s.Require().NoError(err)
	s.Equal(5, page.TotalCount)
	s.Len(page.Items, 1)
}
