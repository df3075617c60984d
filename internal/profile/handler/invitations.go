package handler

import (
	"net/http"
	"strconv"

	"userhub/internal/profile/models"
	"userhub/pkg/platform/httputil"
)

func (h *Handler) handleCreateInvitation(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var req createInvitationRequest
		if err := decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
		// Access level validity is checked here; requiredness stays a
		// service rule so the message matches the empty-email case.
		var level models.AccessLevel
		if req.AccessLevel != "" {
			if level, err = models.ParseAccessLevel(req.AccessLevel); err != nil {
				h.writeError(w, r, err)
				return
			}
		}

		invitation, err := h.svc.CreateInvitation(r.Context(), profileType, profileID, req.Email, level)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, invitation)
	}
}

func (h *Handler) handleListInvitations(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		q := r.URL.Query()

		var level models.AccessLevel
		if raw := q.Get("accessLevel"); raw != "" {
			if level, err = models.ParseAccessLevel(raw); err != nil {
				h.writeError(w, r, err)
				return
			}
		}
		exact, _ := strconv.ParseBool(q.Get("exactEmailMatch"))

		page, err := h.svc.ListInvitations(r.Context(), profileType, profileID,
			q.Get("email"), exact, level, pageParams(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, page)
	}
}

func (h *Handler) handleGetInvitation(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invitationID, err := invitationIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		invitation, err := h.svc.GetInvitation(r.Context(), profileType, invitationID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, invitation)
	}
}

func (h *Handler) handleResendInvitation(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		invitationID, err := invitationIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		invitation, err := h.svc.ResendInvitation(r.Context(), profileType, profileID, invitationID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, invitation)
	}
}

func (h *Handler) handleClaimInvitation(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invitationID, err := invitationIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		invitation, err := h.svc.ClaimInvitation(r.Context(), profileType, invitationID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, invitation)
	}
}

func (h *Handler) handleDeleteInvitation(profileType models.ProfileType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := profileIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		invitationID, err := invitationIDParam(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := h.svc.DeleteInvitation(r.Context(), profileType, profileID, invitationID); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
