package handlers

import (
	"errors"
	"net/http"

	"saferide/internal/models"
	"saferide/internal/service"
)

// VerificationHandler exposes the identity-document review workflow
type VerificationHandler struct {
	verificationService *service.VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationService *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// UploadDocument registers an identity document for the authenticated
// parent. Documents always enter the review queue as Pending.
func (h *VerificationHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req struct {
		DocumentType string `json:"documentType"`
		DocumentURL  string `json:"documentUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.DocumentType == "" || req.DocumentURL == "" {
		respondError(w, http.StatusBadRequest, "Document type and URL are required", nil)
		return
	}

	doc, err := h.verificationService.RegisterDocument(claims.ParentID, req.DocumentType, req.DocumentURL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to upload document", err)
		return
	}

	respondJSON(w, http.StatusCreated, newDocumentView(*doc))
}

// MyDocuments lists the authenticated parent's uploaded documents
func (h *VerificationHandler) MyDocuments(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	docs, err := h.verificationService.GetParentDocuments(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load documents", err)
		return
	}

	views := make([]documentView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, newDocumentView(doc))
	}
	respondJSON(w, http.StatusOK, views)
}

// GetStatus returns the authenticated parent's verification status
func (h *VerificationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	status, err := h.verificationService.GetVerificationStatus(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load verification status", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

// Verify re-evaluates the authenticated parent's verification from
// their reviewed documents
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	status, err := h.verificationService.VerifyParent(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to verify account", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

// ReviewDocument records an admin decision on a single document
func (h *VerificationHandler) ReviewDocument(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := models.VerificationStatus(req.Status)
	if status != models.VerificationVerified && status != models.VerificationRejected {
		respondError(w, http.StatusBadRequest, "Status must be Verified or Rejected", nil)
		return
	}

	if err := h.verificationService.ReviewDocument(documentID, status); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondError(w, http.StatusNotFound, "Document not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to review document", err)
		return
	}

	respondResult(w, service.Ok())
}
