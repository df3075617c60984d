package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"userhub/internal/audit"
	"userhub/internal/notification"
	"userhub/internal/profile/models"
	"userhub/internal/profile/service"
	"userhub/internal/profile/store/employer"
	"userhub/internal/profile/store/individual"
	"userhub/internal/profile/store/invitation"
	"userhub/internal/profile/store/link"
	"userhub/internal/user"
	id "userhub/pkg/domain"
	"userhub/pkg/requestcontext"
)

type identity struct {
	userID   id.UserID
	email    string
	userType requestcontext.UserType
}

type HandlerSuite struct {
	suite.Suite

	users  *user.InMemoryStore
	svc    *service.Service
	router *chi.Mux
	now    time.Time

	// caller is injected into every request's context by the test
	// middleware, standing in for the JWT auth middleware.
	caller identity
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.users = user.NewInMemoryStore()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := service.New(
		individual.NewInMemoryStore(),
		employer.NewInMemoryStore(),
		link.NewInMemoryStore(),
		invitation.NewInMemoryStore(),
		s.users,
		service.WithAuditPublisher(audit.NewMemoryPublisher()),
		service.WithNotificationPublisher(notification.NewMemoryPublisher()),
	)
	s.Require().NoError(err)
	s.svc = svc

	s.caller = identity{userID: id.NewUserID(), userType: requestcontext.UserTypeAgency}

	s.router = chi.NewRouter()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithTime(r.Context(), s.now)
			ctx = requestcontext.WithUserID(ctx, s.caller.userID)
			ctx = requestcontext.WithUserEmail(ctx, s.caller.email)
			ctx = requestcontext.WithUserType(ctx, s.caller.userType)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	New(s.svc, nil).Register(s.router)
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) createIndividual() *models.IndividualProfile {
	rec := s.do(http.MethodPost, "/api/v1/profiles/individuals", map[string]any{
		"ssn":       "123-45-6789",
		"firstName": "Ada",
		"lastName":  "Lovelace",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var p models.IndividualProfile
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &p))
	return &p
}

func (s *HandlerSuite) TestIndividualCRUD() {
	p := s.createIndividual()

	rec := s.do(http.MethodGet, "/api/v1/profiles/individuals/"+p.ID.String(), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/profiles/individuals/"+p.ID.String(), map[string]any{
		"ssn":   "123-45-6789",
		"email": "ada@example.com",
	})
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/profiles/individuals?email=ada@example.com", nil)
	s.Equal(http.StatusOK, rec.Code)
	var page models.Page[*models.IndividualProfile]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Equal(1, page.TotalCount)

	rec = s.do(http.MethodDelete, "/api/v1/profiles/individuals/"+p.ID.String(), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/profiles/individuals/"+p.ID.String(), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestCreateIndividualValidation() {
	rec := s.do(http.MethodPost, "/api/v1/profiles/individuals", map[string]any{
		"firstName": "Ada",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SSN is required")
}

func (s *HandlerSuite) TestMalformedProfileID() {
	rec := s.do(http.MethodGet, "/api/v1/profiles/individuals/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestLinkEndpoints() {
	p := s.createIndividual()
	grace := &user.User{ID: id.NewUserID(), Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}
	s.users.Put(grace)

	base := "/api/v1/profiles/individuals/" + p.ID.String() + "/links"

	rec := s.do(http.MethodPut, base, map[string]any{
		"userId":             grace.ID.String(),
		"profileAccessLevel": "WRITER",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	var saved models.ProfileLink
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &saved))
	s.Equal(models.AccessLevelWriter, saved.AccessLevel)

	rec = s.do(http.MethodGet, base, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var page models.Page[*service.LinkView]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Require().Equal(1, page.TotalCount)
	s.Equal("Grace Hopper", page.Items[0].UserDisplayName)

	rec = s.do(http.MethodPut, base, map[string]any{
		"userId":             grace.ID.String(),
		"profileAccessLevel": "NOT_A_LEVEL",
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, base+"/"+saved.ID.String(), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, base+"/"+saved.ID.String(), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestInvitationLifecycle() {
	p := s.createIndividual()
	base := "/api/v1/profiles/individuals/" + p.ID.String() + "/invitations"

	rec := s.do(http.MethodPost, base, map[string]any{
		"email":       "grace@example.com",
		"accessLevel": "READER",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var inv models.ProfileInvitation
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &inv))
	s.Equal(s.now.Add(models.InvitationLifetime), inv.Expires)

	s.Run("duplicate is a conflict", func() {
		rec := s.do(http.MethodPost, base, map[string]any{
			"email":       "grace@example.com",
			"accessLevel": "READER",
		})
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "Invitation already exists for this email")
	})

	s.Run("listing is scoped to the profile", func() {
		rec := s.do(http.MethodGet, base+"?email=grace", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		var page models.Page[*models.ProfileInvitation]
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
		s.Equal(1, page.TotalCount)
	})

	itemBase := "/api/v1/profiles/individuals/invitations/" + inv.ID.String()

	s.Run("get by id", func() {
		rec := s.do(http.MethodGet, itemBase, nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("wrong kind reads as a type mismatch", func() {
		rec := s.do(http.MethodGet, "/api/v1/profiles/employers/invitations/"+inv.ID.String(), nil)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "not for the required profile type (EMPLOYER)")
	})

	s.Run("resend", func() {
		rec := s.do(http.MethodPost, base+"/"+inv.ID.String()+"/resend", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("resend under another profile reads as absent", func() {
		other := s.createIndividual()
		rec := s.do(http.MethodPost, "/api/v1/profiles/individuals/"+other.ID.String()+"/invitations/"+inv.ID.String()+"/resend", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("agency callers cannot claim", func() {
		rec := s.do(http.MethodPost, itemBase+"/claim", nil)
		s.Equal(http.StatusForbidden, rec.Code)
		s.Contains(rec.Body.String(), "Claiming invitations is intended for public users only.")
	})

	s.Run("public addressee claims", func() {
		grace := &user.User{ID: id.NewUserID(), Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}
		s.users.Put(grace)
		s.caller = identity{userID: grace.ID, email: grace.Email, userType: requestcontext.UserTypePublic}

		rec := s.do(http.MethodPost, itemBase+"/claim", nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		var claimed models.ProfileInvitation
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &claimed))
		s.True(claimed.Claimed)
	})

	s.Run("claimed invitation cannot be deleted", func() {
		s.caller = identity{userID: id.NewUserID(), userType: requestcontext.UserTypeAgency}
		rec := s.do(http.MethodDelete, base+"/"+inv.ID.String(), nil)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "Cannot delete an invitation that has already been claimed.")
	})
}

func (s *HandlerSuite) TestGetProfilesByUser() {
	p := s.createIndividual()
	grace := &user.User{ID: id.NewUserID(), Email: "grace@example.com"}
	s.users.Put(grace)

	rec := s.do(http.MethodPut, "/api/v1/profiles/individuals/"+p.ID.String()+"/links", map[string]any{
		"userId":             grace.ID.String(),
		"profileAccessLevel": "READER",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%s/profiles", grace.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var profiles []models.AccessProfile
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &profiles))
	s.Require().Len(profiles, 1)
	s.Equal(p.ID, profiles[0].ID)
}

// The error envelope never leaks internals for unexpected failures.
func (s *HandlerSuite) TestInternalErrorsAreOpaque() {
	s.router = chi.NewRouter()
	New(failingService{}, nil).Register(s.router)

	rec := s.do(http.MethodGet, "/api/v1/profiles/individuals/"+id.NewProfileID().String(), nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "disk on fire")
}

type failingService struct {
	Service
}

func (failingService) GetIndividual(context.Context, id.ProfileID) (*models.IndividualProfile, error) {
	return nil, fmt.Errorf("disk on fire")
}
