package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saferide/internal/models"
	"saferide/internal/repository"
	"saferide/internal/security"
)

type authFixture struct {
	authService *AuthService
	parentRepo  *repository.ParentRepository
	tokens      *security.TokenManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db := newTestDB(t)
	parentRepo := repository.NewParentRepository(db)
	tokens := security.NewTokenManager("test-signing-secret", time.Hour)
	return &authFixture{
		authService: NewAuthService(parentRepo, tokens, disabledEmailService(t)),
		parentRepo:  parentRepo,
		tokens:      tokens,
	}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	result := f.authService.Register("Jane Citizen", "jane@example.com", "s3cretpass", "0412 345 678", "DL123456", "WWC987654")
	if !result.Success {
		t.Fatalf("Register() errors = %v", result.Errors)
	}

	parent, err := f.parentRepo.GetParentByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("GetParentByEmail() error = %v", err)
	}
	if parent == nil {
		t.Fatal("registered parent not found")
	}
	if parent.CreditPoints != models.DefaultCreditPoints {
		t.Errorf("CreditPoints = %d, want %d", parent.CreditPoints, models.DefaultCreditPoints)
	}
	if parent.IsVerified {
		t.Error("new parent should not be verified")
	}
	if parent.VerificationStatus != models.VerificationPending {
		t.Errorf("VerificationStatus = %q, want %q", parent.VerificationStatus, models.VerificationPending)
	}
	if parent.PasswordHash == "s3cretpass" {
		t.Error("password must not be stored in the clear")
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		phone    string
	}{
		{"empty name", "", "jane@example.com", "s3cretpass", "0412 345 678"},
		{"bad email", "Jane Citizen", "not-an-email", "s3cretpass", "0412 345 678"},
		{"short password", "Jane Citizen", "jane@example.com", "short", "0412 345 678"},
		{"bad phone", "Jane Citizen", "jane@example.com", "s3cretpass", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.authService.Register(tt.fullName, tt.email, tt.password, tt.phone, "", "")
			if result.Success {
				t.Error("expected registration to fail")
			}
			if len(result.Errors) == 0 {
				t.Error("expected a validation error message")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	if result := f.authService.Register("Jane Citizen", "jane@example.com", "s3cretpass", "0412 345 678", "", ""); !result.Success {
		t.Fatalf("Register() errors = %v", result.Errors)
	}

	result := f.authService.Register("Another Jane", "jane@example.com", "otherpass1", "0412 345 679", "", "")
	if result.Success {
		t.Fatal("expected duplicate email to fail")
	}
	if len(result.Errors) != 1 || result.Errors[0] != ErrEmailTaken.Error() {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)

	if result := f.authService.Register("Jane Citizen", "jane@example.com", "s3cretpass", "0412 345 678", "", ""); !result.Success {
		t.Fatalf("Register() errors = %v", result.Errors)
	}

	token, parent, err := f.authService.Login("jane@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if parent.Email != "jane@example.com" {
		t.Errorf("parent email = %q", parent.Email)
	}

	claims, err := f.tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.ParentID != parent.ID {
		t.Errorf("claims.ParentID = %q, want %q", claims.ParentID, parent.ID)
	}
	if claims.IsAdmin {
		t.Error("regular parent should not carry admin claim")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	if result := f.authService.Register("Jane Citizen", "jane@example.com", "s3cretpass", "0412 345 678", "", ""); !result.Success {
		t.Fatalf("Register() errors = %v", result.Errors)
	}

	if _, _, err := f.authService.Login("jane@example.com", "wrongpass123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := f.authService.Login("nobody@example.com", "s3cretpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWithMicrosoftNotConfigured(t *testing.T) {
	f := newAuthFixture(t)

	if _, _, err := f.authService.LoginWithMicrosoft(context.Background(), "some-code"); err == nil {
		t.Error("expected error when Microsoft sign-in is not configured")
	}
}

func TestLoginWithMicrosoftCreatesParent(t *testing.T) {
	f := newAuthFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "ms-access-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		case "/me":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"displayName":       "Jane Citizen",
				"mail":              "jane@example.com",
				"userPrincipalName": "jane@example.com",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f.authService.ConfigureMicrosoftOAuth("client-id", "client-secret", "common", server.URL+"/callback")
	f.authService.microsoftOAuth.Endpoint.TokenURL = server.URL + "/token"
	f.authService.graphURL = server.URL + "/me"

	token, parent, err := f.authService.LoginWithMicrosoft(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("LoginWithMicrosoft() error = %v", err)
	}
	if parent.Email != "jane@example.com" {
		t.Errorf("parent email = %q", parent.Email)
	}
	if parent.CreditPoints != models.DefaultCreditPoints {
		t.Errorf("CreditPoints = %d, want %d", parent.CreditPoints, models.DefaultCreditPoints)
	}

	claims, err := f.tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("claims.Email = %q", claims.Email)
	}

	// Signing in again resolves the same parent rather than creating a
	// second account
	_, again, err := f.authService.LoginWithMicrosoft(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("second LoginWithMicrosoft() error = %v", err)
	}
	if again.ID != parent.ID {
		t.Errorf("second sign-in parent = %s, want %s", again.ID, parent.ID)
	}
}

func TestReviewUser(t *testing.T) {
	db := newTestDB(t)
	parentRepo := repository.NewParentRepository(db)
	adminService := NewAdminService(parentRepo, disabledEmailService(t))

	parentID := seedParent(t, parentRepo, 5)

	pending, err := adminService.GetPendingUsers()
	if err != nil {
		t.Fatalf("GetPendingUsers() error = %v", err)
	}
	if len(pending) != 1 || pending[0].ID != parentID {
		t.Fatalf("pending users = %v, want the seeded parent", pending)
	}

	if result := adminService.ReviewUser(parentID, true); !result.Success {
		t.Fatalf("ReviewUser() errors = %v", result.Errors)
	}

	parent, err := parentRepo.GetParentByID(parentID)
	if err != nil {
		t.Fatalf("GetParentByID() error = %v", err)
	}
	if !parent.IsVerified || parent.VerificationStatus != models.VerificationVerified {
		t.Errorf("parent verification = (%v, %q), want (true, Verified)", parent.IsVerified, parent.VerificationStatus)
	}

	pending, err = adminService.GetPendingUsers()
	if err != nil {
		t.Fatalf("GetPendingUsers() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("got %d pending users after review, want 0", len(pending))
	}
}

func TestReviewUserReject(t *testing.T) {
	db := newTestDB(t)
	parentRepo := repository.NewParentRepository(db)
	adminService := NewAdminService(parentRepo, disabledEmailService(t))

	parentID := seedParent(t, parentRepo, 5)

	if result := adminService.ReviewUser(parentID, false); !result.Success {
		t.Fatalf("ReviewUser() errors = %v", result.Errors)
	}

	parent, err := parentRepo.GetParentByID(parentID)
	if err != nil {
		t.Fatalf("GetParentByID() error = %v", err)
	}
	if parent.IsVerified || parent.VerificationStatus != models.VerificationRejected {
		t.Errorf("parent verification = (%v, %q), want (false, Rejected)", parent.IsVerified, parent.VerificationStatus)
	}

	if result := adminService.ReviewUser("no-such-parent", true); result.Success {
		t.Error("reviewing a missing user should fail")
	}
}
