// Package domain provides typed identifiers shared across features.
//
// Each entity gets its own UUID-backed type so a ProfileID can never be
// passed where a UserID is expected. Construct via the Parse helpers at
// trust boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "userhub/pkg/domain-errors"
)

type (
	// UserID identifies an authenticating user in the directory.
	UserID uuid.UUID

	// ProfileID identifies an individual or employer profile.
	ProfileID uuid.UUID

	// LinkID identifies a user-to-profile link row.
	LinkID uuid.UUID

	// InvitationID identifies a profile invitation.
	InvitationID uuid.UUID
)

func (id UserID) String() string       { return uuid.UUID(id).String() }
func (id ProfileID) String() string    { return uuid.UUID(id).String() }
func (id LinkID) String() string       { return uuid.UUID(id).String() }
func (id InvitationID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id ProfileID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id LinkID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id InvitationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewProfileID returns a fresh random ProfileID.
func NewProfileID() ProfileID { return ProfileID(uuid.New()) }

// NewLinkID returns a fresh random LinkID.
func NewLinkID() LinkID { return LinkID(uuid.New()) }

// NewInvitationID returns a fresh random InvitationID.
func NewInvitationID() InvitationID { return InvitationID(uuid.New()) }

// ParseUserID validates and converts an external string into a UserID.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	return UserID(u), err
}

// ParseProfileID validates and converts an external string into a ProfileID.
func ParseProfileID(s string) (ProfileID, error) {
	u, err := parseUUID(s)
	return ProfileID(u), err
}

// ParseLinkID validates and converts an external string into a LinkID.
func ParseLinkID(s string) (LinkID, error) {
	u, err := parseUUID(s)
	return LinkID(u), err
}

// ParseInvitationID validates and converts an external string into an
// InvitationID.
func ParseInvitationID(s string) (InvitationID, error) {
	u, err := parseUUID(s)
	return InvitationID(u), err
}

// parseUUID enforces the shared ID invariant: valid, non-empty, non-nil.
func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "id must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "id cannot be the nil UUID")
	}
	return u, nil
}
