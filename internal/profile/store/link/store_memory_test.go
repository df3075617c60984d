package link

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

func (s *InMemoryStoreSuite) seed(profileID id.ProfileID, userID id.UserID, level models.AccessLevel) *models.ProfileLink {
	l := &models.ProfileLink{
		ID:          id.NewLinkID(),
		ProfileID:   profileID,
		UserID:      userID,
		ProfileType: models.ProfileTypeIndividual,
		AccessLevel: level,
	}
	s.Require().NoError(s.store.Save(s.ctx, l))
	return l
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	l := s.seed(id.NewProfileID(), id.NewUserID(), models.AccessLevelWriter)

	found, err := s.store.FindByID(s.ctx, l.ID)
	s.Require().NoError(err)
	s.Equal(models.AccessLevelWriter, found.AccessLevel)
	s.Equal(s.now, found.CreatedTimestamp)

	byPair, err := s.store.FindByProfileAndUser(s.ctx, l.ProfileID, l.UserID)
	s.Require().NoError(err)
	s.Equal(l.ID, byPair.ID)
}

func (s *InMemoryStoreSuite) TestDuplicatePairRejected() {
	profileID, userID := id.NewProfileID(), id.NewUserID()
	s.seed(profileID, userID, models.AccessLevelReader)

	dup := &models.ProfileLink{
		ID:          id.NewLinkID(),
		ProfileID:   profileID,
		UserID:      userID,
		ProfileType: models.ProfileTypeIndividual,
		AccessLevel: models.AccessLevelAdmin,
	}
	s.ErrorIs(s.store.Save(s.ctx, dup), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestUpdatePreservesProvenance() {
	l := s.seed(id.NewProfileID(), id.NewUserID(), models.AccessLevelReader)

	later := s.now.Add(time.Hour)
	ctx := requestcontext.WithTime(context.Background(), later)

	l.AccessLevel = models.AccessLevelAdmin
	s.Require().NoError(s.store.Save(ctx, l))

	found, err := s.store.FindByID(s.ctx, l.ID)
	s.Require().NoError(err)
	s.Equal(models.AccessLevelAdmin, found.AccessLevel)
	s.Equal(s.now, found.CreatedTimestamp)
	s.Equal(later, found.LastUpdatedTimestamp)
}

func (s *InMemoryStoreSuite) TestListByUser() {
	userID := id.NewUserID()
	s.seed(id.NewProfileID(), userID, models.AccessLevelReader)
	s.seed(id.NewProfileID(), userID, models.AccessLevelWriter)
	s.seed(id.NewProfileID(), id.NewUserID(), models.AccessLevelAdmin)

	links, err := s.store.ListByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Len(links, 2)
}

func (s *InMemoryStoreSuite) TestDelete() {
	l := s.seed(id.NewProfileID(), id.NewUserID(), models.AccessLevelReader)

	s.Require().NoError(s.store.Delete(s.ctx, l.ID))
	_, err := s.store.FindByID(s.ctx, l.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(s.ctx, l.ID), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSearch() {
	profileID := id.NewProfileID()
	admin := s.seed(profileID, id.NewUserID(), models.AccessLevelAdmin)
	s.seed(profileID, id.NewUserID(), models.AccessLevelAgencyReadonly)
	s.seed(id.NewProfileID(), id.NewUserID(), models.AccessLevelReader)

	s.Run("scoped to profile", func() {
		page, err := s.store.Search(s.ctx, models.LinkFilters{ProfileID: profileID})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
	})

	s.Run("hides agency readonly for public callers", func() {
		page, err := s.store.Search(s.ctx, models.LinkFilters{
			ProfileID:          profileID,
			HideAgencyReadonly: true,
		})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
		s.Equal(models.AccessLevelAdmin, page.Items[0].AccessLevel)
	})

	s.Run("restricts to resolved users", func() {
		page, err := s.store.Search(s.ctx, models.LinkFilters{
			ProfileID: profileID,
			UserIDs:   []id.UserID{admin.UserID},
		})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
	})

	s.Run("empty user set matches nothing", func() {
		page, err := s.store.Search(s.ctx, models.LinkFilters{
			ProfileID: profileID,
			UserIDs:   []id.UserID{},
		})
		s.Require().NoError(err)
		s.Equal(0, page.TotalCount)
	})
}
