package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/calebms7/shepherd-backend/internal/infra/http/middleware"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type BulkHandler struct {
	Coordinator *usecase.BulkCoordinator
}

func NewBulkHandler(coordinator *usecase.BulkCoordinator) *BulkHandler {
	return &BulkHandler{Coordinator: coordinator}
}

type bulkRequest struct {
	Operation usecase.BulkOperation `json:"operation"`
	IDs       []string              `json:"ids"`
	Params    usecase.BulkParams    `json:"params"`
}

type bulkResponse struct {
	Outcome      usecase.Outcome    `json:"outcome"`
	SuccessCount int                `json:"success_count"`
	FailureCount int                `json:"failure_count"`
	Errors       []usecase.ItemError `json:"errors"`
}

// Handle runs POST /bulk. The response always distinguishes partial success
// from total success and total failure.
func (h *BulkHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if len(req.IDs) == 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "ids must not be empty"})
		return
	}

	report, err := h.Coordinator.Apply(r.Context(), req.Operation, req.IDs, req.Params, actor(r))
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordBulkItems(string(req.Operation), report.SuccessCount, report.FailureCount)

	status := http.StatusOK
	if report.Outcome() == usecase.OutcomePartial {
		status = http.StatusMultiStatus
	}

	respondJSON(w, status, bulkResponse{
		Outcome:      report.Outcome(),
		SuccessCount: report.SuccessCount,
		FailureCount: report.FailureCount,
		Errors:       report.Errors,
	})
}
