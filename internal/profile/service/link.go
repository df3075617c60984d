package service

import (
	"context"
	"errors"

	"userhub/internal/audit"
	"userhub/internal/profile/metrics"
	"userhub/internal/profile/models"
	"userhub/internal/user"
	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
	"userhub/pkg/platform/sentinel"
	"userhub/pkg/requestcontext"
)

// LinkView is a link listing entry enriched with the target user's
// directory data.
type LinkView struct {
	*models.ProfileLink
	UserDisplayName string `json:"userDisplayName"`
	UserEmail       string `json:"userEmail"`
}

// UpsertLink grants the user the given access level on the profile, or
// adjusts the level on an existing grant. The operation is idempotent per
// (profile, user) pair: repeated calls converge on a single link row whose
// identity and creation provenance never change.
func (s *Service) UpsertLink(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, userID id.UserID, level models.AccessLevel) (*models.ProfileLink, error) {
	if _, err := s.GetProfile(ctx, profileType, profileID); err != nil {
		return nil, err
	}
	target, err := s.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.upsertLink(ctx, profileType, profileID, target, level)
}

// upsertLink is the shared core behind UpsertLink and invitation claiming;
// callers have already resolved the profile and user.
func (s *Service) upsertLink(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, target *user.User, level models.AccessLevel) (*models.ProfileLink, error) {
	existing, err := s.links.FindByProfileAndUser(ctx, profileID, target.ID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find profile link")
	}

	link := &models.ProfileLink{
		ID:          id.NewLinkID(),
		ProfileID:   profileID,
		UserID:      target.ID,
		ProfileType: profileType,
		AccessLevel: level,
	}

	fresh := existing == nil
	var previous models.AccessLevel
	if !fresh {
		// Keep the row's identity and creation provenance; the store
		// preserves the create stamps for a known ID.
		link.ID = existing.ID
		previous = existing.AccessLevel
	}

	if err := s.links.Save(ctx, link); err != nil {
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile link")
		}
		// A concurrent writer created the pair first; converge on its row.
		winner, findErr := s.links.FindByProfileAndUser(ctx, profileID, target.ID)
		if findErr != nil {
			return nil, dErrors.Wrap(findErr, dErrors.CodeInternal, "failed to find profile link")
		}
		fresh = false
		previous = winner.AccessLevel
		link.ID = winner.ID
		if err := s.links.Save(ctx, link); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile link")
		}
	}

	saved, err := s.links.FindByID(ctx, link.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Profile link not found after saving")
	}

	switch {
	case fresh:
		metrics.LinksUpserted.WithLabelValues("added").Inc()
		s.logAudit(ctx, audit.Event{
			UserID:             target.ID,
			Summary:            "Profile user added",
			BusinessObjectID:   profileID.String(),
			BusinessObjectType: businessObject(profileType),
			ActivityType:       audit.ActivityProfileUserAdded,
			Payload: map[string]any{
				"userId":      target.ID.String(),
				"displayName": target.DisplayName(),
				"accessLevel": level.String(),
			},
		})
	case previous != level:
		metrics.LinksUpserted.WithLabelValues("level_changed").Inc()
		s.logAudit(ctx, audit.Event{
			UserID:             target.ID,
			Summary:            "Profile user access level changed",
			BusinessObjectID:   profileID.String(),
			BusinessObjectType: businessObject(profileType),
			ActivityType:       audit.ActivityProfileUserAccessLevelChanged,
			Payload: map[string]any{
				"userId":    target.ID.String(),
				"createdBy": saved.CreatedBy,
				"oldLevel":  previous.String(),
				"newLevel":  level.String(),
			},
		})
	default:
		metrics.LinksUpserted.WithLabelValues("unchanged").Inc()
	}

	return saved, nil
}

// DeleteLink removes a grant from a profile.
func (s *Service) DeleteLink(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, linkID id.LinkID) error {
	link, err := s.links.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Profile link not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to find profile link")
	}
	// A link id from another profile's URL is treated as absent.
	if link.ProfileID != profileID {
		return dErrors.New(dErrors.CodeNotFound, "Profile link not found")
	}

	if err := s.links.Delete(ctx, linkID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete profile link")
	}

	s.logAudit(ctx, audit.Event{
		UserID:             link.UserID,
		Summary:            "Profile user removed",
		BusinessObjectID:   profileID.String(),
		BusinessObjectType: businessObject(profileType),
		ActivityType:       audit.ActivityProfileUserRemoved,
		Payload: map[string]any{
			"userId":      link.UserID.String(),
			"accessLevel": link.AccessLevel.String(),
		},
	})
	return nil
}

// ListLinks returns one page of a profile's grants, enriched with directory
// data. Name and email filters are resolved against the user directory
// first; public callers never see AGENCY_READONLY grants.
func (s *Service) ListLinks(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID, name, email string, page models.PageRequest) (models.Page[*LinkView], error) {
	var out models.Page[*LinkView]

	if _, err := s.GetProfile(ctx, profileType, profileID); err != nil {
		return out, err
	}

	userIDs, err := s.resolveFilterUsers(ctx, name, email)
	if err != nil {
		return out, err
	}

	links, err := s.links.Search(ctx, models.LinkFilters{
		ProfileID:          profileID,
		UserIDs:            userIDs,
		HideAgencyReadonly: requestcontext.ActingUserType(ctx) == requestcontext.UserTypePublic,
		Page:               page,
	})
	if err != nil {
		return out, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search profile links")
	}

	out = models.Page[*LinkView]{
		Items:      make([]*LinkView, 0, len(links.Items)),
		PageNumber: links.PageNumber,
		PageSize:   links.PageSize,
		TotalCount: links.TotalCount,
	}
	for _, l := range links.Items {
		view := &LinkView{ProfileLink: l}
		if target, err := s.users.FindByID(ctx, l.UserID); err == nil {
			view.UserDisplayName = target.DisplayName()
			view.UserEmail = target.Email
		}
		out.Items = append(out.Items, view)
	}
	return out, nil
}

// resolveFilterUsers turns name/email filters into a user id set. nil means
// no filtering; a non-nil empty set matches nothing. When both filters are
// given a user must match both.
func (s *Service) resolveFilterUsers(ctx context.Context, name, email string) ([]id.UserID, error) {
	if name == "" && email == "" {
		return nil, nil
	}

	byName := map[id.UserID]bool{}
	if name != "" {
		found, err := s.users.SearchByName(ctx, name)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search users")
		}
		for _, u := range found {
			byName[u.ID] = true
		}
	}

	byEmail := map[id.UserID]bool{}
	if email != "" {
		found, err := s.users.SearchByEmail(ctx, email)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search users")
		}
		for _, u := range found {
			byEmail[u.ID] = true
		}
	}

	out := []id.UserID{}
	switch {
	case name != "" && email != "":
		for userID := range byName {
			if byEmail[userID] {
				out = append(out, userID)
			}
		}
	case name != "":
		for userID := range byName {
			out = append(out, userID)
		}
	default:
		for userID := range byEmail {
			out = append(out, userID)
		}
	}
	return out, nil
}

func (s *Service) resolveUser(ctx context.Context, userID id.UserID) (*user.User, error) {
	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "User not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find user")
	}
	return target, nil
}
