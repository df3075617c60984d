package service

import (
	"context"
	"errors"

	"userhub/internal/audit"
	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
	"userhub/pkg/platform/sentinel"
	pstrings "userhub/pkg/platform/strings"
	"userhub/pkg/requestcontext"
)

// GetProfile resolves a profile of the requested kind. The error message is
// kind-specific so callers see which lookup failed.
func (s *Service) GetProfile(ctx context.Context, profileType models.ProfileType, profileID id.ProfileID) (models.Profile, error) {
	switch profileType {
	case models.ProfileTypeEmployer:
		return s.GetEmployer(ctx, profileID)
	default:
		return s.GetIndividual(ctx, profileID)
	}
}

// GetProfilesByUser lists every profile the user is linked to, as the
// per-user access view. Public callers never see AGENCY_READONLY grants.
func (s *Service) GetProfilesByUser(ctx context.Context, userID id.UserID) ([]models.AccessProfile, error) {
	links, err := s.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list profile links")
	}

	hideAgency := requestcontext.ActingUserType(ctx) == requestcontext.UserTypePublic
	out := make([]models.AccessProfile, 0, len(links))
	for _, l := range links {
		if hideAgency && l.AccessLevel.IsHiddenForPublicUsers() {
			continue
		}
		out = append(out, models.AccessProfile{
			ID:    l.ProfileID,
			Type:  l.ProfileType,
			Level: l.AccessLevel,
		})
	}
	return out, nil
}

func (s *Service) CreateIndividual(ctx context.Context, profile *models.IndividualProfile) (*models.IndividualProfile, error) {
	if profile.SSN == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "SSN is required")
	}
	if profile.ID.IsNil() {
		profile.ID = id.NewProfileID()
	}
	if err := s.individuals.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save individual profile")
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Individual profile created",
		BusinessObjectID:   profile.ID.String(),
		BusinessObjectType: audit.BusinessObjectIndividual,
		ActivityType:       audit.ActivityProfileCreated,
	})
	return profile, nil
}

func (s *Service) UpdateIndividual(ctx context.Context, profileID id.ProfileID, profile *models.IndividualProfile) (*models.IndividualProfile, error) {
	if _, err := s.GetIndividual(ctx, profileID); err != nil {
		return nil, err
	}
	profile.ID = profileID
	if err := s.individuals.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save individual profile")
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Individual profile data changed",
		BusinessObjectID:   profileID.String(),
		BusinessObjectType: audit.BusinessObjectIndividual,
		ActivityType:       audit.ActivityProfileDataChanged,
	})
	return profile, nil
}

func (s *Service) GetIndividual(ctx context.Context, profileID id.ProfileID) (*models.IndividualProfile, error) {
	profile, err := s.individuals.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, models.ProfileTypeIndividual.NotFoundMessage())
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find individual profile")
	}
	return profile, nil
}

func (s *Service) DeleteIndividual(ctx context.Context, profileID id.ProfileID) error {
	if err := s.individuals.Delete(ctx, profileID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, models.ProfileTypeIndividual.NotFoundMessage())
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete individual profile")
	}
	return nil
}

func (s *Service) SearchIndividuals(ctx context.Context, filters models.IndividualFilters) (models.Page[*models.IndividualProfile], error) {
	page, err := s.individuals.Search(ctx, filters)
	if err != nil {
		return page, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search individual profiles")
	}
	return page, nil
}

func (s *Service) CreateEmployer(ctx context.Context, profile *models.EmployerProfile) (*models.EmployerProfile, error) {
	if profile.FEIN == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "FEIN is required")
	}
	if profile.LegalName == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Legal name is required")
	}
	if profile.ID.IsNil() {
		profile.ID = id.NewProfileID()
	}
	profile.OtherNames = pstrings.DedupeAndTrim(profile.OtherNames)
	if err := s.employers.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save employer profile")
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Employer profile created",
		BusinessObjectID:   profile.ID.String(),
		BusinessObjectType: audit.BusinessObjectEmployer,
		ActivityType:       audit.ActivityProfileCreated,
	})
	return profile, nil
}

func (s *Service) UpdateEmployer(ctx context.Context, profileID id.ProfileID, profile *models.EmployerProfile) (*models.EmployerProfile, error) {
	if _, err := s.GetEmployer(ctx, profileID); err != nil {
		return nil, err
	}
	profile.ID = profileID
	profile.OtherNames = pstrings.DedupeAndTrim(profile.OtherNames)
	if err := s.employers.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save employer profile")
	}

	s.logAudit(ctx, audit.Event{
		Summary:            "Employer profile data changed",
		BusinessObjectID:   profileID.String(),
		BusinessObjectType: audit.BusinessObjectEmployer,
		ActivityType:       audit.ActivityProfileDataChanged,
	})
	return profile, nil
}

func (s *Service) GetEmployer(ctx context.Context, profileID id.ProfileID) (*models.EmployerProfile, error) {
	profile, err := s.employers.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, models.ProfileTypeEmployer.NotFoundMessage())
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find employer profile")
	}
	return profile, nil
}

func (s *Service) DeleteEmployer(ctx context.Context, profileID id.ProfileID) error {
	if err := s.employers.Delete(ctx, profileID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, models.ProfileTypeEmployer.NotFoundMessage())
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete employer profile")
	}
	return nil
}

func (s *Service) SearchEmployers(ctx context.Context, filters models.EmployerFilters) (models.Page[*models.EmployerProfile], error) {
	page, err := s.employers.Search(ctx, filters)
	if err != nil {
		return page, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search employer profiles")
	}
	return page, nil
}
