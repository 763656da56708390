package services

import (
	"encoding/json"
	"net/http"
)

// Handler serves the static service catalog.
type Handler struct{}

// NewHandler creates a new services handler
func NewHandler() *Handler {
	return &Handler{}
}

// List handles GET /api/services requests. It has no failure path.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string][]Service{"services": Catalog()})
}
