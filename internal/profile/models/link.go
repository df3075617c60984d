package models

import (
	id "userhub/pkg/domain"
)

// ProfileLink grants one user a named access level on one profile.
//
// Invariants:
//   - at most one link exists per (ProfileID, UserID) pair; the upsert in the
//     link service re-uses the existing row and the store enforces a unique
//     constraint for concurrent writers
//   - on update the original ID, CreatedBy, and CreatedTimestamp are
//     preserved; only the access level and update provenance change
type ProfileLink struct {
	ID          id.LinkID    `json:"id"`
	ProfileID   id.ProfileID `json:"profileId"`
	UserID      id.UserID    `json:"userId"`
	ProfileType ProfileType  `json:"profileType"`
	AccessLevel AccessLevel  `json:"profileAccessLevel"`

	Tracking
}

// AccessProfile is the per-user view of one link: which profile, which kind,
// at what level.
type AccessProfile struct {
	ID    id.ProfileID `json:"id"`
	Type  ProfileType  `json:"type"`
	Level AccessLevel  `json:"level"`
}
