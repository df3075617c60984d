package models

import (
	dErrors "userhub/pkg/domain-errors"
)

// AccessLevel is the ordered permission tier a linked user holds on a profile.
// ADMIN > WRITER > READER; AGENCY_READONLY sits outside the ordering and is
// never shown to public users.
type AccessLevel string

const (
	AccessLevelAdmin          AccessLevel = "ADMIN"
	AccessLevelWriter         AccessLevel = "WRITER"
	AccessLevelReader         AccessLevel = "READER"
	AccessLevelAgencyReadonly AccessLevel = "AGENCY_READONLY"
)

var accessLevelLabels = map[AccessLevel]string{
	AccessLevelAdmin:          "Admin",
	AccessLevelWriter:         "Writer",
	AccessLevelReader:         "Reader",
	AccessLevelAgencyReadonly: "Agency Readonly",
}

// ParseAccessLevel constructs an AccessLevel from external input.
func ParseAccessLevel(s string) (AccessLevel, error) {
	l := AccessLevel(s)
	if _, ok := accessLevelLabels[l]; !ok {
		return "", dErrors.Newf(dErrors.CodeBadRequest, "unexpected access level '%s'", s)
	}
	return l, nil
}

func (l AccessLevel) String() string {
	return string(l)
}

// Label returns the human-readable form of the level.
func (l AccessLevel) Label() string {
	return accessLevelLabels[l]
}

// IsHiddenForPublicUsers reports whether the level must be filtered out of
// listings served to public users.
func (l AccessLevel) IsHiddenForPublicUsers() bool {
	return l == AccessLevelAgencyReadonly
}

// HasEqualOrMoreAccess reports whether l dominates other. ADMIN dominates
// everything; WRITER dominates everything but ADMIN; other levels only match
// themselves.
func (l AccessLevel) HasEqualOrMoreAccess(other AccessLevel) bool {
	if l == AccessLevelAdmin {
		return true
	}
	if l == AccessLevelWriter && other != AccessLevelAdmin {
		return true
	}
	return l == other
}
