package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/calebms7/shepherd-backend/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Business-rule
// errors keep their specific message; infrastructure failures are masked.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case usecase.IsAlreadyMember(err), usecase.IsDuplicateRecord(err):
		respondJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case usecase.IsValidation(err):
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// actor identifies who performed the mutation, for the audit trail.
func actor(r *http.Request) string {
	if a := r.Header.Get("X-Actor"); a != "" {
		return a
	}
	return "system"
}
