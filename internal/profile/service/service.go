// Package service orchestrates the profile workflows: profile CRUD, the
// link authorization surface, and the invitation lifecycle. Handlers stay
// thin; stores stay dumb; every rule lives here or in the models.
package service

import (
	"context"
	"errors"
	"log/slog"

	"userhub/internal/audit"
	"userhub/internal/notification"
	"userhub/internal/profile/models"
	"userhub/internal/user"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/tx"
)

type IndividualStore interface {
	Save(ctx context.Context, profile *models.IndividualProfile) error
	FindByID(ctx context.Context, profileID id.ProfileID) (*models.IndividualProfile, error)
	Delete(ctx context.Context, profileID id.ProfileID) error
	Search(ctx context.Context, filters models.IndividualFilters) (models.Page[*models.IndividualProfile], error)
}

type EmployerStore interface {
	Save(ctx context.Context, profile *models.EmployerProfile) error
	FindByID(ctx context.Context, profileID id.ProfileID) (*models.EmployerProfile, error)
	Delete(ctx context.Context, profileID id.ProfileID) error
	Search(ctx context.Context, filters models.EmployerFilters) (models.Page[*models.EmployerProfile], error)
}

type LinkStore interface {
	Save(ctx context.Context, link *models.ProfileLink) error
	FindByID(ctx context.Context, linkID id.LinkID) (*models.ProfileLink, error)
	FindByProfileAndUser(ctx context.Context, profileID id.ProfileID, userID id.UserID) (*models.ProfileLink, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.ProfileLink, error)
	Delete(ctx context.Context, linkID id.LinkID) error
	Search(ctx context.Context, filters models.LinkFilters) (models.Page[*models.ProfileLink], error)
}

type InvitationStore interface {
	Save(ctx context.Context, invitation *models.ProfileInvitation) error
	FindByID(ctx context.Context, invitationID id.InvitationID) (*models.ProfileInvitation, error)
	FindActiveByEmailAndProfile(ctx context.Context, email string, profileID id.ProfileID) (*models.ProfileInvitation, error)
	Delete(ctx context.Context, invitationID id.InvitationID) error
	Search(ctx context.Context, filters models.InvitationFilters) (models.Page[*models.ProfileInvitation], error)
}

// UserDirectory resolves link targets and translates name/email filters
// into user ids.
type UserDirectory = user.Store

// AuditPublisher delivers audit events; emission is best-effort and never
// fails the business operation.
type AuditPublisher = audit.Publisher

// NotificationPublisher requests invitation emails. Unlike audit, a send
// failure during invitation creation propagates to the caller.
type NotificationPublisher = notification.Publisher

type Service struct {
	individuals IndividualStore
	employers   EmployerStore
	links       LinkStore
	invitations InvitationStore
	users       UserDirectory

	auditPublisher AuditPublisher
	notifications  NotificationPublisher
	txRunner       tx.Runner
	logger         *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithNotificationPublisher(publisher NotificationPublisher) Option {
	return func(s *Service) {
		s.notifications = publisher
	}
}

// WithTxRunner makes multi-write operations (claiming an invitation writes
// both the invitation and a link) atomic against SQL-backed stores.
func WithTxRunner(runner tx.Runner) Option {
	return func(s *Service) {
		s.txRunner = runner
	}
}

func New(individuals IndividualStore, employers EmployerStore, links LinkStore, invitations InvitationStore, users UserDirectory, opts ...Option) (*Service, error) {
	if individuals == nil || employers == nil {
		return nil, errors.New("profile stores are required")
	}
	if links == nil {
		return nil, errors.New("link store is required")
	}
	if invitations == nil {
		return nil, errors.New("invitation store is required")
	}
	if users == nil {
		return nil, errors.New("user directory is required")
	}

	svc := &Service{
		individuals: individuals,
		employers:   employers,
		links:       links,
		invitations: invitations,
		users:       users,
		txRunner:    tx.Passthrough{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc, nil
}
