package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"saferide/internal/models"
	"saferide/internal/repository"
	"saferide/internal/security"
	"saferide/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles parent registration and login
type AuthService struct {
	parentRepo   *repository.ParentRepository
	tokens       *security.TokenManager
	emailService *EmailService

	microsoftOAuth *oauth2.Config
	graphURL       string
}

// NewAuthService creates a new auth service
func NewAuthService(parentRepo *repository.ParentRepository, tokens *security.TokenManager, emailService *EmailService) *AuthService {
	return &AuthService{
		parentRepo:   parentRepo,
		tokens:       tokens,
		emailService: emailService,
		graphURL:     "https://graph.microsoft.com/v1.0/me",
	}
}

// ConfigureMicrosoftOAuth enables Microsoft sign-in with the given
// client credentials
func (s *AuthService) ConfigureMicrosoftOAuth(clientID, clientSecret, tenant, redirectURL string) {
	s.microsoftOAuth = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/authorize", tenant),
			TokenURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenant),
		},
		Scopes: []string{"openid", "email", "profile", "User.Read"},
	}
}

// Register creates a new parent account. New parents start with the
// default credit balance, unverified, status Pending.
func (s *AuthService) Register(fullName, email, password, phone, licenceNumber, wwccNumber string) Result {
	if err := validation.ValidateFullName(fullName); err != nil {
		return Fail(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return Fail(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return Fail(err.Error())
	}
	if err := validation.ValidatePhone(phone); err != nil {
		return Fail(err.Error())
	}

	existing, err := s.parentRepo.GetParentByEmail(email)
	if err != nil {
		log.Printf("Failed to check existing parent: %v", err)
		return Fail("Failed to register")
	}
	if existing != nil {
		return Fail(ErrEmailTaken.Error())
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return Fail("Failed to register")
	}

	parent := &models.Parent{
		ID:                            uuid.New().String(),
		FullName:                      fullName,
		Email:                         email,
		PasswordHash:                  passwordHash,
		PhoneNumber:                   phone,
		DrivingLicenseNumber:          licenceNumber,
		WorkingWithChildrenCardNumber: wwccNumber,
		CreditPoints:                  models.DefaultCreditPoints,
		IsVerified:                    false,
		VerificationStatus:            models.VerificationPending,
		CreatedAt:                     time.Now().UTC(),
	}

	if err := s.parentRepo.CreateParent(parent); err != nil {
		log.Printf("Failed to create parent: %v", err)
		return Fail("Failed to register")
	}

	s.emailService.NotifyRegistration(parent.Email, parent.FullName, parent.ID)

	return Ok()
}

// Login authenticates a parent and issues a signed access token
func (s *AuthService) Login(email, password string) (string, *models.Parent, error) {
	parent, err := s.parentRepo.GetParentByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get parent: %w", err)
	}
	if parent == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, parent.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(parent.ID, parent.Email, parent.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, parent, nil
}

// GetParent returns a parent by ID
func (s *AuthService) GetParent(parentID string) (*models.Parent, error) {
	return s.parentRepo.GetParentByID(parentID)
}

// LoginWithMicrosoft exchanges an OAuth authorization code, resolves the
// Microsoft account's profile, finds or creates the matching parent and
// issues an access token
func (s *AuthService) LoginWithMicrosoft(ctx context.Context, code string) (string, *models.Parent, error) {
	if s.microsoftOAuth == nil {
		return "", nil, errors.New("microsoft sign-in is not configured")
	}

	token, err := s.microsoftOAuth.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	profile, err := s.fetchMicrosoftProfile(ctx, token)
	if err != nil {
		return "", nil, err
	}
	if profile.Email == "" {
		return "", nil, errors.New("microsoft account has no email address")
	}

	parent, err := s.parentRepo.GetParentByEmail(profile.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get parent: %w", err)
	}

	if parent == nil {
		parent = &models.Parent{
			ID:                 uuid.New().String(),
			FullName:           profile.Name,
			Email:              profile.Email,
			CreditPoints:       models.DefaultCreditPoints,
			VerificationStatus: models.VerificationPending,
			CreatedAt:          time.Now().UTC(),
		}
		if err := s.parentRepo.CreateParent(parent); err != nil {
			return "", nil, fmt.Errorf("failed to create parent: %w", err)
		}
		s.emailService.NotifyRegistration(parent.Email, parent.FullName, parent.ID)
	}

	accessToken, err := s.tokens.Issue(parent.ID, parent.Email, parent.IsAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return accessToken, parent, nil
}

type microsoftProfile struct {
	Name  string
	Email string
}

func (s *AuthService) fetchMicrosoftProfile(ctx context.Context, token *oauth2.Token) (microsoftProfile, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(s.graphURL)
	if err != nil {
		return microsoftProfile{}, fmt.Errorf("failed to fetch Microsoft user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return microsoftProfile{}, fmt.Errorf("failed to fetch Microsoft user info")
	}

	var payload struct {
		DisplayName       string `json:"displayName"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return microsoftProfile{}, fmt.Errorf("failed to parse Microsoft user info")
	}

	email := payload.Mail
	if email == "" {
		email = payload.UserPrincipalName
	}
	name := payload.DisplayName
	if name == "" {
		name = "Microsoft User"
	}

	return microsoftProfile{Name: name, Email: email}, nil
}
