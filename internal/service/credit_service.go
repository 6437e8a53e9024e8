package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"saferide/internal/models"
	"saferide/internal/repository"
)

// MaxCreditPoints is the ceiling on a parent's balance. Credits reward
// ride participation; the cap limits accumulation.
const MaxCreditPoints = 5

// CreditService manages parents' credit balances and the transaction ledger
type CreditService struct {
	parentRepo *repository.ParentRepository
	creditRepo *repository.CreditRepository
}

// NewCreditService creates a new credit service
func NewCreditService(parentRepo *repository.ParentRepository, creditRepo *repository.CreditRepository) *CreditService {
	return &CreditService{
		parentRepo: parentRepo,
		creditRepo: creditRepo,
	}
}

// GetBalance returns the parent's current credit balance, or 0 if the
// parent does not exist
func (s *CreditService) GetBalance(parentID string) int {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		log.Printf("Failed to load parent %s for balance: %v", parentID, err)
		return 0
	}
	if parent == nil {
		return 0
	}
	return parent.CreditPoints
}

// AddCredit increments the parent's balance by one and records the
// transaction. Returns false without mutating anything when the parent
// is missing or already at the ceiling.
func (s *CreditService) AddCredit(parentID string) bool {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		log.Printf("Failed to load parent %s for credit add: %v", parentID, err)
		return false
	}
	if parent == nil || parent.CreditPoints >= MaxCreditPoints {
		return false
	}

	if err := s.parentRepo.UpdateCreditPoints(parentID, parent.CreditPoints+1); err != nil {
		log.Printf("Failed to add credit for parent %s: %v", parentID, err)
		return false
	}

	s.recordTransaction(parentID, 1, models.CreditEarnedDescription)
	return true
}

// DeductCredit decrements the parent's balance by one and records the
// transaction. Returns false without mutating anything when the parent
// is missing or already at zero.
func (s *CreditService) DeductCredit(parentID string) bool {
	parent, err := s.parentRepo.GetParentByID(parentID)
	if err != nil {
		log.Printf("Failed to load parent %s for credit deduct: %v", parentID, err)
		return false
	}
	if parent == nil || parent.CreditPoints <= 0 {
		return false
	}

	if err := s.parentRepo.UpdateCreditPoints(parentID, parent.CreditPoints-1); err != nil {
		log.Printf("Failed to deduct credit for parent %s: %v", parentID, err)
		return false
	}

	s.recordTransaction(parentID, -1, models.CreditUsedDescription)
	return true
}

// GetHistory returns the parent's transaction ledger in insertion order
func (s *CreditService) GetHistory(parentID string) ([]models.CreditTransaction, error) {
	return s.creditRepo.GetParentTransactions(parentID)
}

func (s *CreditService) recordTransaction(parentID string, pointsChanged int, description string) {
	tx := &models.CreditTransaction{
		ID:              uuid.New().String(),
		ParentID:        parentID,
		TransactionDate: time.Now().UTC(),
		PointsChanged:   pointsChanged,
		Description:     description,
	}
	if err := s.creditRepo.CreateTransaction(tx); err != nil {
		// The balance update already landed; the ledger entry is an
		// audit record, not a precondition.
		log.Printf("Failed to record credit transaction for parent %s: %v", parentID, err)
	}
}
