// Package handler exposes the profile feature over HTTP. Routes are
// mounted under /api/v1/profiles with parallel individual and employer
// subtrees sharing the link and invitation machinery.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userhub/internal/profile/models"
	"userhub/internal/profile/service"
	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
	"userhub/pkg/platform/httputil"
)

// Service is the slice of the profile service the handlers consume.
type Service interface {
	CreateIndividual(ctx context.Context, profile *models.IndividualProfile) (*models.IndividualProfile, error)
	UpdateIndividual(ctx context.Context, profileID id.ProfileID, profile *models.IndividualProfile) (*models.IndividualProfile, error)
	GetIndividual(ctx context.Context, profileID id.ProfileID) (*models.IndividualProfile, error)
	DeleteIndividual(ctx context.Context, profileID id.ProfileID) error
	SearchIndividuals(ctx context.Context, filters models.IndividualFilters) (models.Page[*models.IndividualProfile], error)

	CreateEmployer(ctx context.Context, profile *models.EmployerProfile) (*models.EmployerProfile, error)
	UpdateEmployer(ctx context.Context, profileID id.ProfileID, profile *models.EmployerProfile) (*models.EmployerProfile, error)
	GetEmployer(ctx context.Context, profileID id.ProfileID) (*models.EmployerProfile, error)
	DeleteEmployer(ctx context.Context, profileID id.ProfileID) error
	SearchEmployers(ctx context.Context, filters models.EmployerFilters) (models.Page[*models.EmployerProfile], error)

	GetProfilesByUser(ctx context.Context, userID id.UserID) ([]models.AccessProfile, error)

	UpsertLink(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, userID id.UserID, level models.AccessLevel) (*models.ProfileLink, error)
	DeleteLink(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, linkID id.LinkID) error
	ListLinks(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, name, email string, page models.PageRequest) (models.Page[*service.LinkView], error)

	CreateInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, email string, level models.AccessLevel) (*models.ProfileInvitation, error)
	GetInvitation(ctx context.Context, profileType models.ProfileType, invitationID id.InvitationID) (*models.ProfileInvitation, error)
	ResendInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, invitationID id.InvitationID) (*models.ProfileInvitation, error)
	ClaimInvitation(ctx context.Context, profileType models.ProfileType, invitationID id.InvitationID) (*models.ProfileInvitation, error)
	DeleteInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, invitationID id.InvitationID) error
	ListInvitations(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, email string, exactEmail bool, level models.AccessLevel, page models.PageRequest) (models.Page[*models.ProfileInvitation], error)
}

type Handler struct {
	svc    Service
	logger *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the profile routes on r. Authentication middleware is
// applied by the caller; handlers assume an authenticated context.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/profiles", func(r chi.Router) {
		r.Route("/individuals", func(r chi.Router) {
			r.Post("/", h.handleCreateIndividual)
			r.Get("/", h.handleSearchIndividuals)
			r.Route("/{profileID}", func(r chi.Router) {
				r.Get("/", h.handleGetIndividual)
				r.Put("/", h.handleUpdateIndividual)
				r.Delete("/", h.handleDeleteIndividual)
				r.Group(h.linkRoutes(models.ProfileTypeIndividual))
				r.Group(h.invitationCollectionRoutes(models.ProfileTypeIndividual))
			})
			r.Group(h.invitationItemRoutes(models.ProfileTypeIndividual))
		})
		r.Route("/employers", func(r chi.Router) {
			r.Post("/", h.handleCreateEmployer)
			r.Get("/", h.handleSearchEmployers)
			r.Route("/{profileID}", func(r chi.Router) {
				r.Get("/", h.handleGetEmployer)
				r.Put("/", h.handleUpdateEmployer)
				r.Delete("/", h.handleDeleteEmployer)
				r.Group(h.linkRoutes(models.ProfileTypeEmployer))
				r.Group(h.invitationCollectionRoutes(models.ProfileTypeEmployer))
			})
			r.Group(h.invitationItemRoutes(models.ProfileTypeEmployer))
		})
	})
	r.Get("/api/v1/users/{userID}/profiles", h.handleGetProfilesByUser)
}

// linkRoutes serves one kind's /links subtree.
func (h *Handler) linkRoutes(profileType models.ProfileType) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/links", h.handleListLinks(profileType))
		r.Put("/links", h.handleUpsertLink(profileType))
		r.Delete("/links/{linkID}", h.handleDeleteLink(profileType))
	}
}

// invitationCollectionRoutes serves the per-profile invitation subtree.
// Resend and delete stay profile-scoped: an invitation id from another
// profile's URL reads as absent.
func (h *Handler) invitationCollectionRoutes(profileType models.ProfileType) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/invitations", h.handleCreateInvitation(profileType))
		r.Get("/invitations", h.handleListInvitations(profileType))
		r.Post("/invitations/{invitationID}/resend", h.handleResendInvitation(profileType))
		r.Delete("/invitations/{invitationID}", h.handleDeleteInvitation(profileType))
	}
}

// invitationItemRoutes serves invitation-scoped reads and claims; claimers
// know the invitation id but not necessarily the profile id.
func (h *Handler) invitationItemRoutes(profileType models.ProfileType) func(chi.Router) {
	return func(r chi.Router) {
		r.Route("/invitations/{invitationID}", func(r chi.Router) {
			r.Get("/", h.handleGetInvitation(profileType))
			r.Post("/claim", h.handleClaimInvitation(profileType))
		})
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}

func profileIDParam(r *http.Request) (id.ProfileID, error) {
	return id.ParseProfileID(chi.URLParam(r, "profileID"))
}

func linkIDParam(r *http.Request) (id.LinkID, error) {
	return id.ParseLinkID(chi.URLParam(r, "linkID"))
}

func invitationIDParam(r *http.Request) (id.InvitationID, error) {
	return id.ParseInvitationID(chi.URLParam(r, "invitationID"))
}
