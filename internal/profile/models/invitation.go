package models

import (
	"time"

	id "userhub/pkg/domain"
	dErrors "userhub/pkg/domain-errors"
)

// InvitationLifetime is how long a fresh or resent invitation stays
// claimable.
const InvitationLifetime = 7 * 24 * time.Hour

// ProfileInvitation is a time-boxed, single-use offer allowing an email
// address to claim a link on a profile at a predetermined access level.
//
// Invariants:
//   - Expires = CreatedTimestamp + InvitationLifetime, stamped at insert
//   - at most one unexpired invitation exists per (Email, ProfileID)
//   - claiming is terminal: a claimed invitation can never be claimed again,
//     resent, or deleted
//   - claiming requires now <= Expires
//
// "Expired" is a derived state (now > Expires while unclaimed), never stored.
type ProfileInvitation struct {
	ID          id.InvitationID `json:"id"`
	ProfileID   id.ProfileID    `json:"profileId"`
	Type        ProfileType     `json:"profileType"`
	AccessLevel AccessLevel     `json:"accessLevel"`
	Email       string          `json:"email"`
	Expires     time.Time       `json:"expires"`
	Claimed     bool            `json:"claimed"`

	CreatedTimestamp time.Time  `json:"createdTimestamp"`
	ClaimedTimestamp *time.Time `json:"claimedTimestamp,omitempty"`
}

// IsExpired reports whether the invitation's claim window has passed.
func (i *ProfileInvitation) IsExpired(now time.Time) bool {
	return now.After(i.Expires)
}

// CanClaim checks the terminal-claim and expiry invariants.
func (i *ProfileInvitation) CanClaim(now time.Time) error {
	if i.Claimed {
		return dErrors.New(dErrors.CodeConflict, "Invitation has already been claimed")
	}
	if i.IsExpired(now) {
		return dErrors.New(dErrors.CodeConflict, "Invitation has expired")
	}
	return nil
}

// ApplyClaim marks the invitation claimed. Call CanClaim first.
func (i *ProfileInvitation) ApplyClaim(now time.Time) {
	i.Claimed = true
	i.ClaimedTimestamp = &now
}

// CanResend rejects resending a claimed invitation.
func (i *ProfileInvitation) CanResend() error {
	if i.Claimed {
		return dErrors.New(dErrors.CodeConflict,
			"This invitation has already been claimed and cannot be resent.")
	}
	return nil
}

// ApplyResend resets the claim window from now, regardless of how much of
// the previous window remained. Call CanResend first.
func (i *ProfileInvitation) ApplyResend(now time.Time) {
	i.Expires = now.Add(InvitationLifetime)
}

// CanDelete rejects deleting a claimed invitation.
func (i *ProfileInvitation) CanDelete() error {
	if i.Claimed {
		return dErrors.New(dErrors.CodeConflict,
			"Cannot delete an invitation that has already been claimed.")
	}
	return nil
}
