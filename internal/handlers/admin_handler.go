package handlers

import (
	"net/http"

	"saferide/internal/service"
)

// AdminHandler exposes admin-only account review actions
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// PendingUsers lists parents awaiting verification review
func (h *AdminHandler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	parents, err := h.adminService.GetPendingUsers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load pending users", err)
		return
	}

	views := make([]parentView, 0, len(parents))
	for i := range parents {
		views = append(views, newParentView(&parents[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// ReviewUser records an approve or reject decision on a parent account
func (h *AdminHandler) ReviewUser(w http.ResponseWriter, r *http.Request) {
	parentID := r.PathValue("id")

	var req struct {
		Approved bool `json:"approved"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	respondResult(w, h.adminService.ReviewUser(parentID, req.Approved))
}
