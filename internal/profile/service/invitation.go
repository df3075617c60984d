package service

import (
	"context"
	"errors"
	"strings"

	"userhub/internal/audit"
	"userhub/internal/notification"
	"userhub/internal/profile/metrics"
	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/requestcontext"
)

// CreateInvitation offers the email address a link on the profile at the
// given access level and requests the invitation email. At most one active
// invitation exists per (email, profile); a claimed invitation keeps
// blocking new ones until its window lapses.
func (s *Service) CreateInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, email string, level models.AccessLevel) (*models.ProfileInvitation, error) {
	if email == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Email is required")
	}
	if level == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Access level is required")
	}

	profile, err := s.GetProfile(ctx, profileType, profileID)
	if err != nil {
		return nil, err
	}

	_, err = s.invitations.FindActiveByEmailAndProfile(ctx, email, profileID)
	switch {
	case err == nil:
		return nil, dErrors.New(dErrors.CodeConflict, "Invitation already exists for this email")
	case !errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find profile invitation")
	}

	invitation := &models.ProfileInvitation{
		ID:          id.NewInvitationID(),
		ProfileID:   profileID,
		Type:        profileType,
		AccessLevel: level,
		Email:       email,
	}
	if err := s.invitations.Save(ctx, invitation); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile invitation")
	}

	if err := s.sendInvitationEmail(ctx, invitation, profile.DisplayName()); err != nil {
		return nil, err
	}

	metrics.InvitationsCreated.WithLabelValues(profileType.String()).Inc()
	s.logAudit(ctx, audit.Event{
		Summary:            "Profile invitation sent",
		BusinessObjectID:   profileID.String(),
		BusinessObjectType: businessObject(profileType),
		ActivityType:       audit.ActivityProfileInvitationSent,
		Payload: map[string]any{
			"invitationId": invitation.ID.String(),
			"email":        email,
			"accessLevel":  level.String(),
		},
	})
	return invitation, nil
}

// GetInvitation fetches one invitation. Public callers see only invitations
// addressed to their own email or on profiles they already hold a link to;
// anything else reads as not-found.
func (s *Service) GetInvitation(ctx context.Context, profileType models.ProfileType, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	invitation, err := s.fetchInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if !s.mayViewInvitation(ctx, invitation) {
		return nil, invitationNotFound()
	}
	if err := checkInvitationType(invitation, profileType); err != nil {
		return nil, err
	}
	return invitation, nil
}

// ResendInvitation restarts the claim window from now and requests a fresh
// email. Any unclaimed invitation on the profile can be resent, including
// expired ones.
func (s *Service) ResendInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	invitation, err := s.fetchInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	// An invitation id from another profile's URL is treated as absent.
	if invitation.ProfileID != profileID {
		return nil, invitationNotFound()
	}
	if err := checkInvitationType(invitation, profileType); err != nil {
		return nil, err
	}
	if err := invitation.CanResend(); err != nil {
		return nil, err
	}

	invitation.ApplyResend(requestcontext.Now(ctx))
	if err := s.invitations.Save(ctx, invitation); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile invitation")
	}

	profile, err := s.GetProfile(ctx, profileType, invitation.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := s.sendInvitationEmail(ctx, invitation, profile.DisplayName()); err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Profile invitation resent",
		BusinessObjectID:   invitation.ProfileID.String(),
		BusinessObjectType: businessObject(profileType),
		ActivityType:       audit.ActivityProfileInvitationResent,
		Payload: map[string]any{
			"invitationId": invitation.ID.String(),
			"email":        invitation.Email,
		},
	})
	return invitation, nil
}

// ClaimInvitation accepts an invitation on behalf of the authenticated
// caller, granting the offered link. Only public users may claim, and only
// the invitation addressed to their own email; a mismatch is reported as
// not-found so probing reveals nothing.
func (s *Service) ClaimInvitation(ctx context.Context, profileType models.ProfileType, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	if requestcontext.ActingUserType(ctx) != requestcontext.UserTypePublic {
		metrics.InvitationClaimRejections.WithLabelValues("not_public").Inc()
		return nil, dErrors.New(dErrors.CodeForbidden, "Claiming invitations is intended for public users only.")
	}

	invitation, err := s.fetchInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	// The email mask runs before the type check so probing with a wrong
	// kind reveals nothing about invitations addressed to others.
	if !strings.EqualFold(invitation.Email, requestcontext.UserEmail(ctx)) {
		metrics.InvitationClaimRejections.WithLabelValues("email_mismatch").Inc()
		return nil, invitationNotFound()
	}
	if err := checkInvitationType(invitation, profileType); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if err := invitation.CanClaim(now); err != nil {
		if invitation.Claimed {
			metrics.InvitationClaimRejections.WithLabelValues("already_claimed").Inc()
		} else {
			metrics.InvitationClaimRejections.WithLabelValues("expired").Inc()
		}
		return nil, err
	}

	// The profile may have been deleted since the invitation was sent; a
	// claim must not mint a link to a missing profile.
	if _, err := s.GetProfile(ctx, profileType, invitation.ProfileID); err != nil {
		return nil, err
	}

	target, err := s.resolveUser(ctx, requestcontext.UserID(ctx))
	if err != nil {
		return nil, err
	}

	// The granted link and the claim mark land in one transaction when a
	// SQL runner is configured.
	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.upsertLink(ctx, profileType, invitation.ProfileID, target, invitation.AccessLevel); err != nil {
			return err
		}
		invitation.ApplyClaim(now)
		if err := s.invitations.Save(ctx, invitation); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile invitation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InvitationsClaimed.WithLabelValues(profileType.String()).Inc()
	s.logAudit(ctx, audit.Event{
		UserID:             target.ID,
		Summary:            "Profile invitation claimed",
		BusinessObjectID:   invitation.ProfileID.String(),
		BusinessObjectType: businessObject(profileType),
		ActivityType:       audit.ActivityProfileInvitationClaimed,
		Payload: map[string]any{
			"invitationId": invitation.ID.String(),
			"accessLevel":  invitation.AccessLevel.String(),
		},
	})
	return invitation, nil
}

// DeleteInvitation withdraws an unclaimed invitation from the profile.
func (s *Service) DeleteInvitation(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, invitationID id.InvitationID) error {
	invitation, err := s.fetchInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	// An invitation id from another profile's URL is treated as absent.
	if invitation.ProfileID != profileID {
		return invitationNotFound()
	}
	if err := checkInvitationType(invitation, profileType); err != nil {
		return err
	}
	if err := invitation.CanDelete(); err != nil {
		return err
	}

	if err := s.invitations.Delete(ctx, invitationID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete profile invitation")
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Profile invitation deleted",
		BusinessObjectID:   invitation.ProfileID.String(),
		BusinessObjectType: businessObject(profileType),
		ActivityType:       audit.ActivityProfileInvitationDeleted,
		Payload: map[string]any{
			"invitationId": invitation.ID.String(),
			"email":        invitation.Email,
		},
	})
	return nil
}

// ListInvitations returns one page of a profile's invitations.
func (s *Service) ListInvitations(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, email string, exactEmail bool, level models.AccessLevel, page models.PageRequest) (models.Page[*models.ProfileInvitation], error) {
	var out models.Page[*models.ProfileInvitation]

	if _, err := s.GetProfile(ctx, profileType, profileID); err != nil {
		return out, err
	}

	out, err := s.invitations.Search(ctx, models.InvitationFilters{
		ProfileID:       profileID,
		Type:            profileType,
		AccessLevel:     level,
		Email:           email,
		ExactEmailMatch: exactEmail,
		Page:            page,
	})
	if err != nil {
		return out, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search profile invitations")
	}
	return out, nil
}

func invitationNotFound() error {
	return dErrors.New(dErrors.CodeNotFound, "Profile invitation not found")
}

// fetchInvitation loads an invitation, translating a missing row.
func (s *Service) fetchInvitation(ctx context.Context, invitationID id.InvitationID) (*models.ProfileInvitation, error) {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invitationNotFound()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find profile invitation")
	}
	return invitation, nil
}

// checkInvitationType verifies the invitation belongs to the requested
// kind. A mismatch is the caller addressing the wrong collection, not a
// state conflict.
func checkInvitationType(invitation *models.ProfileInvitation, profileType models.ProfileType) error {
	if invitation.Type != profileType {
		return dErrors.Newf(dErrors.CodeBadRequest,
			"Profile invitation is not for the required profile type (%s).", profileType)
	}
	return nil
}

// mayViewInvitation applies the read-side information-hiding rule: agency
// callers are trusted, public callers must own the invited email or already
// hold a link on the profile.
func (s *Service) mayViewInvitation(ctx context.Context, invitation *models.ProfileInvitation) bool {
	if requestcontext.ActingUserType(ctx) != requestcontext.UserTypePublic {
		return true
	}
	if strings.EqualFold(invitation.Email, requestcontext.UserEmail(ctx)) {
		return true
	}
	_, err := s.links.FindByProfileAndUser(ctx, invitation.ProfileID, requestcontext.UserID(ctx))
	return err == nil
}

// sendInvitationEmail requests the notification email. Unlike audit this is
// not best-effort: the caller is told when the invitation could not be
// delivered, and a missing notification channel reads as not-found.
func (s *Service) sendInvitationEmail(ctx context.Context, invitation *models.ProfileInvitation, displayName string) error {
	if s.notifications == nil {
		return dErrors.Wrap(notification.ErrTopicNotConfigured, dErrors.CodeNotFound, "Notification channel not configured")
	}
	if err := s.notifications.SendInvitationEmail(ctx, invitation, displayName); err != nil {
		metrics.NotificationSendFailures.Inc()
		if errors.Is(err, notification.ErrTopicNotConfigured) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "Notification channel not configured")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send invitation email")
	}
	return nil
}
