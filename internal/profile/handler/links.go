package handler

import (
	"net/http"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/httputil"
)

func (h *Handler) handleListLinks(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		q := r.URL.Query()
		page, err := h.svc.ListLinks(r.Context(), profileType, profileID,
			q.Get("name"), q.Get("email"), pageParams(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, page)
	}
}

func (h *Handler) handleUpsertLink(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req upsertLinkRequest
		if err := decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		userID, err := id.ParseUserID(req.UserID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		level, err := models.ParseAccessLevel(req.AccessLevel)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		link, err := h.svc.UpsertLink(r.Context(), profileType, profileID, userID, level)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, link)
	}
}

func (h *Handler) handleDeleteLink(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		linkID, err := linkIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := h.svc.DeleteLink(r.Context(), profileType, profileID, linkID); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
