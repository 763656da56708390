package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/plumberpro/backend/internal/store"
	"github.com/plumberpro/backend/pkg/logging"
)

// maxDiagnosticError bounds error text embedded in the /test body.
const maxDiagnosticError = 50

// maxDiagnosticCollections caps the collection listing in the /test body.
const maxDiagnosticCollections = 10

// HealthHandler serves the liveness probe and the database diagnostic
// endpoint. Both always answer 200; the diagnostic body narrates health
// so operators can tell "backend up, DB down" from "DB up but empty"
// without log access.
type HealthHandler struct {
	store          store.Store
	databaseURLSet bool
	logger         *logging.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(s store.Store, databaseURLSet bool, logger *logging.Logger) *HealthHandler {
	return &HealthHandler{
		store:          s,
		databaseURLSet: databaseURLSet,
		logger:         logger,
	}
}

// Root handles GET / requests
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "PlumberPro Backend Running"})
}

// DiagnosticsResponse narrates backend and database health.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics handles GET /test requests. Internal faults while probing
// the store are rendered as descriptive strings inside the body; the
// HTTP call itself never fails.
func (h *HealthHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil && h.store.Connected() {
		resp.Database = "✅ Available"
		urlStatus := "❌ Not Set"
		if h.databaseURLSet {
			urlStatus = "✅ Set"
		}
		resp.DatabaseURL = &urlStatus
		name := h.store.DatabaseName()
		resp.DatabaseName = &name
		resp.ConnectionStatus = "Connected"

		if names, err := h.store.ListCollections(r.Context()); err != nil {
			h.logger.Warn("diagnostics: listing collections failed", "error", err)
			resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxDiagnosticError)
		} else {
			if len(names) > maxDiagnosticCollections {
				names = names[:maxDiagnosticCollections]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
