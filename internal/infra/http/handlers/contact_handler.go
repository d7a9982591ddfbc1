package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calebms7/shepherd-backend/internal/infra/http/middleware"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type ContactHandler struct {
	Contacts  *usecase.ContactUseCase
	Lifecycle *usecase.LifecycleUseCase
}

func NewContactHandler(contacts *usecase.ContactUseCase, lifecycle *usecase.LifecycleUseCase) *ContactHandler {
	return &ContactHandler{
		Contacts:  contacts,
		Lifecycle: lifecycle,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	contact, err := h.Contacts.Create(r.Context(), input, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Contacts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	contact, err := h.Contacts.Update(r.Context(), chi.URLParam(r, "id"), input, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Contacts.Delete(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PromoteToVisitor handles POST /contacts/{id}/visit.
func (h *ContactHandler) PromoteToVisitor(w http.ResponseWriter, r *http.Request) {
	var input usecase.PromoteToVisitorInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}
	input.ContactID = chi.URLParam(r, "id")

	record, err := h.Lifecycle.PromoteToVisitor(r.Context(), input, actor(r))
	if err != nil {
		middleware.RecordLifecycleTransition("visitor", "failure")
		respondError(w, err)
		return
	}

	middleware.RecordLifecycleTransition("visitor", "success")
	respondJSON(w, http.StatusCreated, record)
}

// PromoteToMember handles POST /contacts/{id}/membership.
func (h *ContactHandler) PromoteToMember(w http.ResponseWriter, r *http.Request) {
	var input usecase.PromoteToMemberInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}
	input.ContactID = chi.URLParam(r, "id")

	record, err := h.Lifecycle.PromoteToMember(r.Context(), input, actor(r))
	if err != nil {
		middleware.RecordLifecycleTransition("member", "failure")
		respondError(w, err)
		return
	}

	middleware.RecordLifecycleTransition("member", "success")
	respondJSON(w, http.StatusCreated, record)
}

// RemoveMembership handles DELETE /contacts/{id}/membership. The lifecycle
// is demoted to the most advanced record that remains.
func (h *ContactHandler) RemoveMembership(w http.ResponseWriter, r *http.Request) {
	if err := h.Lifecycle.RemoveMemberRecord(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveVisit handles DELETE /contacts/{id}/visit.
func (h *ContactHandler) RemoveVisit(w http.ResponseWriter, r *http.Request) {
	if err := h.Lifecycle.RemoveVisitorRecord(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
