package models

import (
	"strings"
	"time"

	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
)

// ProfileType tags the two profile kinds sharing the link and invitation
// machinery.
type ProfileType string

const (
	ProfileTypeIndividual ProfileType = "INDIVIDUAL"
	ProfileTypeEmployer   ProfileType = "EMPLOYER"
)

// ParseProfileType constructs a ProfileType from external input.
func ParseProfileType(s string) (ProfileType, error) {
	switch t := ProfileType(strings.ToUpper(s)); t {
	case ProfileTypeIndividual, ProfileTypeEmployer:
		return t, nil
	default:
		return "", dErrors.Newf(dErrors.CodeBadRequest, "unexpected profile type '%s'", s)
	}
}

func (t ProfileType) String() string {
	return string(t)
}

// NotFoundMessage is the caller-facing message used when a profile of this
// kind cannot be resolved.
func (t ProfileType) NotFoundMessage() string {
	if t == ProfileTypeEmployer {
		return "Employer profile not found"
	}
	return "Individual profile not found"
}

// Profile is the capability set shared by both profile kinds. Workflow code
// is written against this interface instead of branching on the concrete
// type.
type Profile interface {
	ProfileID() id.ProfileID
	Type() ProfileType
	DisplayName() string
}

// Tracking carries actor and timestamp provenance shared by tracked rows.
//
// Invariants:
//   - CreatedBy/CreatedTimestamp are stamped exactly once at insert and never
//     overwritten on update
//   - LastUpdatedBy/LastUpdatedTimestamp are stamped on every write
//
// The store adapters perform the stamping explicitly right before each
// insert/update, using the acting user and request time from context.
type Tracking struct {
	CreatedBy            string    `json:"createdBy"`
	LastUpdatedBy        string    `json:"lastUpdatedBy"`
	CreatedTimestamp     time.Time `json:"createdTimestamp"`
	LastUpdatedTimestamp time.Time `json:"lastUpdatedTimestamp"`
}

// StampCreate sets the complete provenance for a fresh row.
func (t *Tracking) StampCreate(actor string, now time.Time) {
	t.CreatedBy = actor
	t.LastUpdatedBy = actor
	t.CreatedTimestamp = now
	t.LastUpdatedTimestamp = now
}

// StampUpdate refreshes only the last-updated provenance.
func (t *Tracking) StampUpdate(actor string, now time.Time) {
	t.LastUpdatedBy = actor
	t.LastUpdatedTimestamp = now
}

// Address is owned by a profile as its mailing or primary address; deleting
// the profile removes its addresses, never the other way around.
type Address struct {
	ID         string `json:"id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// IndividualProfile is the person-kind profile.
type IndividualProfile struct {
	ID          id.ProfileID `json:"id"`
	SSN         string       `json:"ssn"`
	FirstName   string       `json:"firstName,omitempty"`
	MiddleName  string       `json:"middleName,omitempty"`
	LastName    string       `json:"lastName,omitempty"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phoneNumber,omitempty"`

	PrimaryAddress *Address `json:"primaryAddress,omitempty"`
	MailingAddress *Address `json:"mailingAddress,omitempty"`

	Tracking
}

func (p *IndividualProfile) ProfileID() id.ProfileID { return p.ID }
func (p *IndividualProfile) Type() ProfileType       { return ProfileTypeIndividual }

// DisplayName joins the non-empty name parts with single spaces, falling
// back to email and then to the id string.
func (p *IndividualProfile) DisplayName() string {
	name := strings.Join(strings.Fields(
		strings.Join([]string{p.FirstName, p.MiddleName, p.LastName}, " ")), " ")
	if name != "" {
		return name
	}
	if p.Email != "" {
		return p.Email
	}
	return p.ID.String()
}

// EmployerProfile is the organization-kind profile.
type EmployerProfile struct {
	ID                id.ProfileID `json:"id"`
	FEIN              string       `json:"fein"`
	LegalName         string       `json:"legalName"`
	OtherNames        []string     `json:"otherNames,omitempty"`
	BusinessType      string       `json:"businessType,omitempty"`
	Industry          string       `json:"industry,omitempty"`
	SummaryOfBusiness string       `json:"summaryOfBusiness,omitempty"`
	BusinessPhone     string       `json:"businessPhone,omitempty"`
	Email             string       `json:"email,omitempty"`

	MailingAddress  *Address `json:"mailingAddress,omitempty"`
	LocationAddress *Address `json:"locationAddress,omitempty"`

	Tracking
}

func (p *EmployerProfile) ProfileID() id.ProfileID { return p.ID }
func (p *EmployerProfile) Type() ProfileType       { return ProfileTypeEmployer }

// DisplayName is the employer's legal name.
func (p *EmployerProfile) DisplayName() string {
	return p.LegalName
}
