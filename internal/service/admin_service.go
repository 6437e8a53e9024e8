package service

import (
	"log"

	"saferide/internal/models"
	"saferide/internal/repository"
)

// AdminService covers the admin-side user review actions
type AdminService struct {
	parentRepo   *repository.ParentRepository
	emailService *EmailService
}

// NewAdminService creates a new admin service
func NewAdminService(parentRepo *repository.ParentRepository, emailService *EmailService) *AdminService {
	return &AdminService{
		parentRepo:   parentRepo,
		emailService: emailService,
	}
}

// GetPendingUsers returns parents awaiting verification review
func (s *AdminService) GetPendingUsers() ([]models.Parent, error) {
	return s.parentRepo.GetPendingParents()
}

// ReviewUser records an approve or reject decision on a parent account
// and notifies them by email (best effort)
func (s *AdminService) ReviewUser(parentID string, approved bool) Result {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		log.Printf("Failed to load parent %s for review: %v", parentID, err)
		return Fail("Failed to review user")
	}
	if parent == nil {
		return Fail("User not found")
	}

	status := models.VerificationRejected
	if approved {
		status = models.VerificationVerified
	}

	if err := s.parentRepo.UpdateVerification(parentID, status, approved); err != nil {
		log.Printf("Failed to update parent %s verification: %v", parentID, err)
		return Fail("Failed to review user")
	}

	s.emailService.NotifyApprovalDecision(parent.Email, parent.FullName, approved)

	return Ok()
}
