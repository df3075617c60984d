package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"userhub/internal/profile/models"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/httputil"
)

func (h *Handler) handleCreateIndividual(w http.ResponseWriter, r *http.Request) {
	var req models.IndividualProfile
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.CreateIndividual(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGetIndividual(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.svc.GetIndividual(r.Context(), profileID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateIndividual(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req models.IndividualProfile
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.svc.UpdateIndividual(r.Context(), profileID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteIndividual(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteIndividual(r.Context(), profileID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSearchIndividuals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.SearchIndividuals(r.Context(), models.IndividualFilters{
		SSN:   q.Get("ssn"),
		Email: q.Get("email"),
		Name:  q.Get("name"),
		Page:  pageParams(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleCreateEmployer(w http.ResponseWriter, r *http.Request) {
	var req models.EmployerProfile
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.CreateEmployer(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGetEmployer(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profile, err := h.svc.GetEmployer(r.Context(), profileID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateEmployer(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req models.EmployerProfile
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.svc.UpdateEmployer(r.Context(), profileID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDeleteEmployer(w http.ResponseWriter, r *http.Request) {
	profileID, err := profileIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteEmployer(r.Context(), profileID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSearchEmployers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.SearchEmployers(r.Context(), models.EmployerFilters{
		FEIN:         q.Get("fein"),
		Name:         q.Get("name"),
		BusinessType: q.Get("businessType"),
		Industry:     q.Get("industry"),
		Page:         pageParams(r),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleGetProfilesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	profiles, err := h.svc.GetProfilesByUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profiles)
}
