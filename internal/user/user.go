// Package user holds the minimal user directory consumed by the profile
// feature: link targets are resolved here, and link listings translate
// name/email filters into user ids through it.
package user

import (
	"context"
	"strings"

	id "userhub/pkg/domain"
)

// User is a directory entry for an authenticating user. Soft-deleted users
// stay in the table but are excluded from lookups.
type User struct {
	ID         id.UserID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName,omitempty"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Deleted    bool      `json:"-"`
}

// DisplayName joins the non-empty name parts, falling back to email.
func (u *User) DisplayName() string {
	name := strings.Join(strings.Fields(
		strings.Join([]string{u.FirstName, u.MiddleName, u.LastName}, " ")), " ")
	if name != "" {
		return name
	}
	return u.Email
}

// Store is the persistence boundary for directory lookups. Searches are
// case-insensitive substring matches excluding soft-deleted users.
type Store interface {
	FindByID(ctx context.Context, userID id.UserID) (*User, error)
	SearchByEmail(ctx context.Context, email string) ([]*User, error)
	SearchByName(ctx context.Context, name string) ([]*User, error)
}
