package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type FollowUpHandler struct {
	FollowUps *usecase.FollowUpUseCase
}

func NewFollowUpHandler(followUps *usecase.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{FollowUps: followUps}
}

func (h *FollowUpHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateFollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	followUp, err := h.FollowUps.Create(r.Context(), input, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, followUp)
}

func (h *FollowUpHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if err := h.FollowUps.Complete(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowUpHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.FollowUps.Cancel(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type assignRequest struct {
	AssignedTo string `json:"assigned_to"`
}

func (h *FollowUpHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := h.FollowUps.Reassign(r.Context(), chi.URLParam(r, "id"), req.AssignedTo, actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FollowUpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.FollowUps.Delete(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
