package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"userhub/internal/audit"
	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
)

type ProfileServiceSuite struct {
	ServiceSuite
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceSuite))
}

func (s *ProfileServiceSuite) TestIndividualLifecycle() {
	ctx := s.agencyCtx(id.NewUserID())

	created, err := s.svc.CreateIndividual(ctx, &models.IndividualProfile{
		SSN:       "123-45-6789",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	s.Require().NoError(err)
	s.False(created.ID.IsNil())
	s.Contains(s.activities(), audit.ActivityProfileCreated)

	created.Email = "ada@example.com"
	updated, err := s.svc.UpdateIndividual(ctx, created.ID, created)
	s.Require().NoError(err)
	s.Equal("ada@example.com", updated.Email)
	s.Contains(s.activities(), audit.ActivityProfileDataChanged)

	found, err := s.svc.GetIndividual(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", found.DisplayName())

	s.Require().NoError(s.svc.DeleteIndividual(ctx, created.ID))
	_, err = s.svc.GetIndividual(ctx, created.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Contains(err.Error(), "Individual profile not found")
}

func (s *ProfileServiceSuite) TestCreateIndividualRequiresSSN() {
	ctx := s.agencyCtx(id.NewUserID())
	_, err := s.svc.CreateIndividual(ctx, &models.IndividualProfile{FirstName: "Ada"})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	s.Contains(err.Error(), "SSN is required")
}

func (s *ProfileServiceSuite) TestEmployerLifecycle() {
	ctx := s.agencyCtx(id.NewUserID())

	created, err := s.svc.CreateEmployer(ctx, &models.EmployerProfile{
		FEIN:      "12-3456789",
		LegalName: "Acme Corp",
	})
	s.Require().NoError(err)

	found, err := s.svc.GetEmployer(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Acme Corp", found.DisplayName())

	s.Require().NoError(s.svc.DeleteEmployer(ctx, created.ID))
	_, err = s.svc.GetEmployer(ctx, created.ID)
	s.Contains(err.Error(), "Employer profile not found")
}

func (s *ProfileServiceSuite) TestCreateEmployerCleansOtherNames() {
	ctx := s.agencyCtx(id.NewUserID())

	created, err := s.svc.CreateEmployer(ctx, &models.EmployerProfile{
		FEIN:       "12-3456789",
		LegalName:  "Acme Corp",
		OtherNames: []string{"  Acme ", "Acme Holdings", "Acme", ""},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Acme", "Acme Holdings"}, created.OtherNames)
}

func (s *ProfileServiceSuite) TestCreateEmployerValidation() {
	ctx := s.agencyCtx(id.NewUserID())

	_, err := s.svc.CreateEmployer(ctx, &models.EmployerProfile{LegalName: "Acme Corp"})
	s.Contains(err.Error(), "FEIN is required")

	_, err = s.svc.CreateEmployer(ctx, &models.EmployerProfile{FEIN: "12-3456789"})
	s.Contains(err.Error(), "Legal name is required")
}

func (s *ProfileServiceSuite) TestGetProfileDispatchesOnKind() {
	ctx := s.agencyCtx(id.NewUserID())
	individual := s.seedIndividual(ctx)

	p, err := s.svc.GetProfile(ctx, models.ProfileTypeIndividual, individual.ID)
	s.Require().NoError(err)
	s.Equal(models.ProfileTypeIndividual, p.Type())

	_, err = s.svc.GetProfile(ctx, models.ProfileTypeEmployer, individual.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Contains(err.Error(), "Employer profile not found")
}

func (s *ProfileServiceSuite) TestSearchIndividuals() {
	ctx := s.agencyCtx(id.NewUserID())
	s.seedIndividual(ctx)

	page, err := s.svc.SearchIndividuals(ctx, models.IndividualFilters{Name: "lovelace"})
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
}
