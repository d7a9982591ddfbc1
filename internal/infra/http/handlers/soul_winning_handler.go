package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type SoulWinningHandler struct {
	Souls       *usecase.SoulWinningUseCase
	Conversions *usecase.ConversionUseCase
}

func NewSoulWinningHandler(souls *usecase.SoulWinningUseCase, conversions *usecase.ConversionUseCase) *SoulWinningHandler {
	return &SoulWinningHandler{
		Souls:       souls,
		Conversions: conversions,
	}
}

func (h *SoulWinningHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateSoulWinningInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	record, err := h.Souls.Create(r.Context(), input, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (h *SoulWinningHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Souls.Delete(r.Context(), chi.URLParam(r, "id"), actor(r)); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type convertRequest struct {
	Target entity.Lifecycle `json:"target"`
}

// Convert handles POST /soul-winning/{id}/convert.
func (h *SoulWinningHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	record, err := h.Conversions.Convert(r.Context(), chi.URLParam(r, "id"), req.Target, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}
