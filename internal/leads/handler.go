package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plumberpro/backend/internal/observability/metrics"
	"github.com/plumberpro/backend/pkg/logging"
)

// maxErrorDetail bounds the error text returned on storage failures.
const maxErrorDetail = 200

// Handler handles HTTP requests for leads
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.APIMetrics
}

// NewHandler creates a new leads handler
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.APIMetrics) *Handler {
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// Create handles POST /api/leads requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode lead request", "error", err)
		h.metrics.ObserveLead("bad_request")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		h.metrics.ObserveLead("invalid")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
		return
	case err != nil:
		h.logger.Error("failed to store lead", "error", err)
		h.metrics.ObserveLead("storage_error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": truncate(err.Error(), maxErrorDetail)})
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "name", lead.Name)
	h.metrics.ObserveLead("created")
	writeJSON(w, http.StatusCreated, map[string]string{"id": lead.ID})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
