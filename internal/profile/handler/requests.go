package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"userhub/internal/profile/models"
	dErrors "userhub/pkg/domain-errors"
)

// decode parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// pageParams reads the shared pagination query parameters. Absent or
// malformed numbers fall back to the defaults.
func pageParams(r *http.Request) models.PageRequest {
	q := r.URL.Query()
	page := models.PageRequest{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if n, err := strconv.Atoi(q.Get("pageNumber")); err == nil {
		page.PageNumber = n
	}
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		page.PageSize = n
	}
	return page
}

type upsertLinkRequest struct {
	UserID      string `json:"userId"`
	AccessLevel string `json:"profileAccessLevel"`
}

type createInvitationRequest struct {
	Email       string `json:"email"`
	AccessLevel string `json:"accessLevel"`
}
