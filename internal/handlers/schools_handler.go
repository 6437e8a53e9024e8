package handlers

import (
	"net/http"

	"saferide/internal/service"
)

// SchoolsHandler exposes schools and the enrollment workflow
type SchoolsHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewSchoolsHandler creates a new schools handler
func NewSchoolsHandler(enrollmentService *service.EnrollmentService) *SchoolsHandler {
	return &SchoolsHandler{enrollmentService: enrollmentService}
}

// ListSchools returns all active schools
func (h *SchoolsHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.enrollmentService.GetAvailableSchools()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load schools", err)
		return
	}
	respondJSON(w, http.StatusOK, newSchoolViews(schools))
}

// CreateSchool registers a new school
func (h *SchoolsHandler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Address      string `json:"address"`
		ContactEmail string `json:"contactEmail"`
		ContactPhone string `json:"contactPhone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "School name is required", nil)
		return
	}

	school, err := h.enrollmentService.CreateSchool(req.Name, req.Address, req.ContactEmail, req.ContactPhone)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create school", err)
		return
	}

	respondJSON(w, http.StatusCreated, newSchoolView(*school))
}

// RequestEnrollment submits an enrollment request for the authenticated
// parent
func (h *SchoolsHandler) RequestEnrollment(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req struct {
		SchoolID    int64  `json:"schoolId"`
		ParentNotes string `json:"parentNotes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	respondResult(w, h.enrollmentService.RequestEnrollment(claims.ParentID, req.SchoolID, req.ParentNotes))
}

// MyEnrollments lists the authenticated parent's enrollments
func (h *SchoolsHandler) MyEnrollments(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	enrollments, err := h.enrollmentService.GetParentEnrollments(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load enrollments", err)
		return
	}
	respondJSON(w, http.StatusOK, newEnrollmentViews(enrollments))
}

// ApprovedSchools lists the schools the authenticated parent is approved
// with
func (h *SchoolsHandler) ApprovedSchools(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	schools, err := h.enrollmentService.GetApprovedSchoolsForParent(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load approved schools", err)
		return
	}
	respondJSON(w, http.StatusOK, newSchoolViews(schools))
}

// PendingEnrollments lists all enrollments awaiting an admin decision
func (h *SchoolsHandler) PendingEnrollments(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.enrollmentService.GetPendingEnrollments()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load pending enrollments", err)
		return
	}
	respondJSON(w, http.StatusOK, newEnrollmentViews(enrollments))
}

// ApproveEnrollment records an admin approval decision
func (h *SchoolsHandler) ApproveEnrollment(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req struct {
		EnrollmentID string `json:"enrollmentId"`
		AdminNotes   string `json:"adminNotes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	respondResult(w, h.enrollmentService.ApproveEnrollment(req.EnrollmentID, claims.ParentID, req.AdminNotes))
}

// RejectEnrollment records an admin rejection. A reason is required.
func (h *SchoolsHandler) RejectEnrollment(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req struct {
		EnrollmentID    string `json:"enrollmentId"`
		RejectionReason string `json:"rejectionReason"`
		AdminNotes      string `json:"adminNotes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.RejectionReason == "" {
		respondError(w, http.StatusBadRequest, "Rejection reason is required", nil)
		return
	}

	respondResult(w, h.enrollmentService.RejectEnrollment(req.EnrollmentID, claims.ParentID, req.RejectionReason, req.AdminNotes))
}
