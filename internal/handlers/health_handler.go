package handlers

import (
	"net/http"

	"saferide/internal/database"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz reports whether the service and its database are reachable
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
