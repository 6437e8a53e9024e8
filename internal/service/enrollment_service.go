package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"saferide/internal/models"
	"saferide/internal/repository"
)

// EnrollmentService runs the parent-school enrollment workflow:
// request -> pending -> approved/rejected
type EnrollmentService struct {
	enrollmentRepo *repository.EnrollmentRepository
	schoolRepo     *repository.SchoolRepository
	parentRepo     *repository.ParentRepository
	emailService   *EmailService
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	schoolRepo *repository.SchoolRepository,
	parentRepo *repository.ParentRepository,
	emailService *EmailService,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		schoolRepo:     schoolRepo,
		parentRepo:     parentRepo,
		emailService:   emailService,
	}
}

// RequestEnrollment creates a pending enrollment for a (parent, school)
// pair. Any existing enrollment for the pair blocks a new request, a
// rejected one included.
func (s *EnrollmentService) RequestEnrollment(parentID string, schoolID int64, parentNotes string) Result {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		log.Printf("Failed to load parent %s for enrollment: %v", parentID, err)
		return Fail("Failed to submit enrollment request")
	}
	if parent == nil {
		return Fail("Parent not found")
	}

	school, err := s.schoolRepo.GetSchoolByID(schoolID)
	if err != nil {
		log.Printf("Failed to load school %d for enrollment: %v", schoolID, err)
		return Fail("Failed to submit enrollment request")
	}
	if school == nil || !school.IsActive {
		return Fail("School not found or not active")
	}

	existing, err := s.enrollmentRepo.GetEnrollment(parentID, schoolID)
	if err != nil {
		log.Printf("Failed to check existing enrollment: %v", err)
		return Fail("Failed to submit enrollment request")
	}
	if existing != nil {
		return Fail("Enrollment request already exists for this school")
	}

	enrollment := &models.ParentSchoolEnrollment{
		ID:          uuid.New().String(),
		ParentID:    parentID,
		SchoolID:    schoolID,
		Status:      models.EnrollmentPending,
		RequestDate: time.Now().UTC(),
		ParentNotes: parentNotes,
	}

	if err := s.enrollmentRepo.CreateEnrollment(enrollment); err != nil {
		log.Printf("Failed to create enrollment: %v", err)
		return Fail("Failed to submit enrollment request")
	}

	s.emailService.NotifyEnrollmentRequest(parent.Email, parent.FullName, school.Name, enrollment.ID)

	return Ok()
}

// ApproveEnrollment moves a pending enrollment to approved, recording
// the deciding admin and the decision time
func (s *EnrollmentService) ApproveEnrollment(enrollmentID, approvedBy, adminNotes string) Result {
	enrollment, err := s.enrollmentRepo.GetEnrollmentByID(enrollmentID)
	if err != nil {
		log.Printf("Failed to load enrollment %s: %v", enrollmentID, err)
		return Fail("Failed to approve enrollment")
	}
	if enrollment == nil {
		return Fail("Enrollment not found")
	}
	if !enrollment.IsPending() {
		return Fail("Enrollment is not in pending status")
	}

	now := time.Now().UTC()
	enrollment.Status = models.EnrollmentApproved
	enrollment.ApprovalDate = &now
	enrollment.ApprovedBy = approvedBy
	enrollment.AdminNotes = adminNotes

	if err := s.enrollmentRepo.UpdateDecision(enrollment); err != nil {
		log.Printf("Failed to approve enrollment %s: %v", enrollmentID, err)
		return Fail("Failed to approve enrollment")
	}

	return Ok()
}

// RejectEnrollment moves a pending enrollment to rejected. The reason is
// required by the caller-facing contract and validated at the boundary;
// the ApprovedBy field records the rejecting actor.
func (s *EnrollmentService) RejectEnrollment(enrollmentID, rejectedBy, rejectionReason, adminNotes string) Result {
	enrollment, err := s.enrollmentRepo.GetEnrollmentByID(enrollmentID)
	if err != nil {
		log.Printf("Failed to load enrollment %s: %v", enrollmentID, err)
		return Fail("Failed to reject enrollment")
	}
	if enrollment == nil {
		return Fail("Enrollment not found")
	}
	if !enrollment.IsPending() {
		return Fail("Enrollment is not in pending status")
	}

	enrollment.Status = models.EnrollmentRejected
	enrollment.RejectionReason = rejectionReason
	enrollment.AdminNotes = adminNotes
	enrollment.ApprovedBy = rejectedBy

	if err := s.enrollmentRepo.UpdateDecision(enrollment); err != nil {
		log.Printf("Failed to reject enrollment %s: %v", enrollmentID, err)
		return Fail("Failed to reject enrollment")
	}

	return Ok()
}

// GetParentEnrollments returns all of a parent's enrollments with school names
func (s *EnrollmentService) GetParentEnrollments(parentID string) ([]models.EnrollmentWithSchool, error) {
	return s.enrollmentRepo.GetParentEnrollments(parentID)
}

// GetPendingEnrollments returns all enrollments awaiting a decision
func (s *EnrollmentService) GetPendingEnrollments() ([]models.EnrollmentWithSchool, error) {
	return s.enrollmentRepo.GetPendingEnrollments()
}

// GetAvailableSchools returns all active schools
func (s *EnrollmentService) GetAvailableSchools() ([]models.School, error) {
	return s.schoolRepo.GetActiveSchools()
}

// GetApprovedSchoolsForParent returns the schools a parent is approved with
func (s *EnrollmentService) GetApprovedSchoolsForParent(parentID string) ([]models.School, error) {
	return s.enrollmentRepo.GetApprovedSchoolsForParent(parentID)
}

// IsParentApprovedForSchool reports whether the parent has an approved
// enrollment with the school
func (s *EnrollmentService) IsParentApprovedForSchool(parentID string, schoolID int64) (bool, error) {
	enrollment, err := s.enrollmentRepo.GetEnrollment(parentID, schoolID)
	if err != nil {
		return false, err
	}
	return enrollment != nil && enrollment.Status == models.EnrollmentApproved, nil
}

// CreateSchool registers a new school accepting enrollments
func (s *EnrollmentService) CreateSchool(name, address, contactEmail, contactPhone string) (*models.School, error) {
	return s.schoolRepo.CreateSchool(name, address, contactEmail, contactPhone)
}
