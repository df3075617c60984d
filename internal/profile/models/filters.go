package models

import (
	id "userhub/pkg/domain"
)

// PageRequest carries pagination and sorting for filtered searches.
// Zero values fall back to the first page of 50, sorted ascending.
type PageRequest struct {
	SortBy     string
	SortOrder  string
	PageNumber int
	PageSize   int
}

const defaultPageSize = 50

// Normalize fills defaults and clamps the sort order to ASC/DESC.
func (p PageRequest) Normalize() PageRequest {
	if p.PageNumber < 0 {
		p.PageNumber = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	if p.SortOrder != "DESC" {
		p.SortOrder = "ASC"
	}
	return p
}

// Offset is the row offset implied by the page number and size.
func (p PageRequest) Offset() int {
	return p.PageNumber * p.PageSize
}

// Page is one page of search results with its paging metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// MapPage converts a page's items, preserving the paging metadata.
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	out := Page[U]{
		Items:      make([]U, 0, len(p.Items)),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
	}
	for _, item := range p.Items {
		out.Items = append(out.Items, f(item))
	}
	return out
}

// IndividualFilters narrows individual profile searches. String filters are
// case-insensitive substring matches; empty means "any".
type IndividualFilters struct {
	SSN   string
	Email string
	Name  string
	Page  PageRequest
}

// EmployerFilters narrows employer profile searches.
type EmployerFilters struct {
	FEIN         string
	Name         string
	BusinessType string
	Industry     string
	Page         PageRequest
}

// LinkFilters narrows link searches, always scoped to one profile.
// UserIDs is pre-resolved by the caller from name/email directory lookups;
// nil means "any user", an empty non-nil slice matches nothing.
type LinkFilters struct {
	ProfileID id.ProfileID
	UserIDs   []id.UserID

	// HideAgencyReadonly excludes AGENCY_READONLY links; set when the
	// acting user is a public user.
	HideAgencyReadonly bool

	Page PageRequest
}

// InvitationFilters narrows invitation searches, always scoped to one
// profile and kind by the caller.
type InvitationFilters struct {
	ProfileID   id.ProfileID
	Type        ProfileType
	AccessLevel AccessLevel
	Email       string

	// ExactEmailMatch switches the email filter from substring to equality.
	ExactEmailMatch bool

	Page PageRequest
}
