//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userhub/internal/profile/models"
	"userhub/internal/profile/store/individual"
	id "userhub/pkg/domain"
	"userhub/pkg/testutil"
	"userhub/pkg/testutil/containers"
)

type CacheStoreSuite struct {
	suite.Suite

	redis *containers.RedisContainer
	inner *individual.InMemoryStore
	store *Store[models.IndividualProfile, models.IndividualFilters]
	ctx   context.Context
}

func TestCacheStoreSuite(t *testing.T) {
	suite.Run(t, new(CacheStoreSuite))
}

func (s *CacheStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CacheStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.inner = individual.NewInMemoryStore()
	s.store = New[models.IndividualProfile, models.IndividualFilters](
		s.inner, s.redis.Client, "profile:individual",
		func(p *models.IndividualProfile) id.ProfileID { return p.ID },
	)
	s.ctx = testutil.AgencyContext(id.NewUserID(), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func (s *CacheStoreSuite) seed() *models.IndividualProfile {
	profile := &models.IndividualProfile{ID: id.NewProfileID(), SSN: "123-45-6789", FirstName: "Ada"}
	s.Require().NoError(s.store.Save(s.ctx, profile))
	return profile
}

func (s *CacheStoreSuite) TestReadThroughPopulatesCache() {
	profile := s.seed()

	got, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal("Ada", got.FirstName)

	// Second read is served from Redis even after the row vanishes
	// underneath the cache.
	s.Require().NoError(s.inner.Delete(s.ctx, profile.ID))
	got, err = s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal("Ada", got.FirstName)
}

func (s *CacheStoreSuite) TestSaveInvalidates() {
	profile := s.seed()

	_, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)

	profile.FirstName = "Augusta"
	s.Require().NoError(s.store.Save(s.ctx, profile))

	got, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal("Augusta", got.FirstName)
}

func (s *CacheStoreSuite) TestDeleteInvalidates() {
	profile := s.seed()

	_, err := s.store.FindByID(s.ctx, profile.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.store.Delete(s.ctx, profile.ID))
	_, err = s.store.FindByID(s.ctx, profile.ID)
	s.Error(err)
}

func (s *CacheStoreSuite) TestSearchBypassesCache() {
	s.seed()

	page, err := s.store.Search(s.ctx, models.IndividualFilters{SSN: "123-45-6789"})
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
}
