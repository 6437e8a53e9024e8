package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"saferide/internal/models"
	"saferide/internal/repository"
)

var ErrDocumentNotFound = errors.New("document not found")

// VerificationService runs the document-review process that establishes
// a parent's eligibility to use the service
type VerificationService struct {
	parentRepo   *repository.ParentRepository
	documentRepo *repository.DocumentRepository
}

// NewVerificationService creates a new verification service
func NewVerificationService(parentRepo *repository.ParentRepository, documentRepo *repository.DocumentRepository) *VerificationService {
	return &VerificationService{
		parentRepo:   parentRepo,
		documentRepo: documentRepo,
	}
}

// RegisterDocument stores an uploaded identity document. The document
// always enters the queue as Pending regardless of what the caller set.
func (s *VerificationService) RegisterDocument(parentID, documentType, documentURL string) (*models.VerificationDocument, error) {
	doc := &models.VerificationDocument{
		ID:           uuid.New().String(),
		ParentID:     parentID,
		DocumentType: documentType,
		DocumentURL:  documentURL,
		UploadedDate: time.Now().UTC(),
		Status:       models.VerificationPending,
	}

	if err := s.documentRepo.CreateDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to register document: %w", err)
	}

	return doc, nil
}

// VerifyParent re-evaluates a parent's verification: if they have at
// least one document and every one is Verified, the parent is flipped to
// Verified. Otherwise their current status is returned unchanged.
func (s *VerificationService) VerifyParent(parentID string) (models.VerificationStatus, error) {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		return models.VerificationPending, fmt.Errorf("failed to load parent: %w", err)
	}
	if parent == nil {
		return models.VerificationPending, nil
	}

	docs, err := s.documentRepo.GetParentDocuments(parentID)
	if err != nil {
		return parent.VerificationStatus, fmt.Errorf("failed to load documents: %w", err)
	}

	if len(docs) > 0 && allVerified(docs) {
		if err := s.parentRepo.UpdateVerification(parentID, models.VerificationVerified, true); err != nil {
			return parent.VerificationStatus, fmt.Errorf("failed to update parent verification: %w", err)
		}
		return models.VerificationVerified, nil
	}

	return parent.VerificationStatus, nil
}

// GetVerificationStatus returns the parent's status, or Pending if the
// parent does not exist
func (s *VerificationService) GetVerificationStatus(parentID string) (models.VerificationStatus, error) {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		return models.VerificationPending, fmt.Errorf("failed to load parent: %w", err)
	}
	if parent == nil {
		return models.VerificationPending, nil
	}
	return parent.VerificationStatus, nil
}

// GetParentDocuments returns all documents uploaded by a parent
func (s *VerificationService) GetParentDocuments(parentID string) ([]models.VerificationDocument, error) {
	return s.documentRepo.GetParentDocuments(parentID)
}

// ReviewDocument records an admin decision on a single document
func (s *VerificationService) ReviewDocument(documentID string, status models.VerificationStatus) error {
	doc, err := s.documentRepo.GetDocumentByID(documentID)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	return s.documentRepo.UpdateDocumentStatus(documentID, status)
}

func allVerified(docs []models.VerificationDocument) bool {
	for _, doc := range docs {
		if doc.Status != models.VerificationVerified {
			return false
		}
	}
	return true
}
