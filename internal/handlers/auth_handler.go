package handlers

import (
	"errors"
	"net/http"

	"saferide/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles new account registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName                      string `json:"fullName"`
		Email                         string `json:"email"`
		Password                      string `json:"password"`
		PhoneNumber                   string `json:"phoneNumber"`
		DrivingLicenseNumber          string `json:"drivingLicenseNumber"`
		WorkingWithChildrenCardNumber string `json:"workingWithChildrenCardNumber"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.authService.Register(
		req.FullName,
		req.Email,
		req.Password,
		req.PhoneNumber,
		req.DrivingLicenseNumber,
		req.WorkingWithChildrenCardNumber,
	)
	respondResult(w, result)
}

type loginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	Parent  parentView `json:"parent"`
}

// Login authenticates a parent and returns an access token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, parent, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Parent:  newParentView(parent),
	})
}

// LoginWithMicrosoft exchanges a Microsoft OAuth authorization code for
// an access token, creating the account on first sign-in
func (h *AuthHandler) LoginWithMicrosoft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "Authorization code is required", nil)
		return
	}

	token, parent, err := h.authService.LoginWithMicrosoft(r.Context(), req.Code)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Microsoft sign-in failed", err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Parent:  newParentView(parent),
	})
}

// Profile returns the authenticated parent's account
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	parent, err := h.authService.GetParent(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	if parent == nil {
		respondError(w, http.StatusNotFound, "Account not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, newParentView(parent))
}
