package repository

import (
	"fmt"

	"saferide/internal/database"
	"saferide/internal/models"
)

// CreditRepository handles database operations for the credit ledger
type CreditRepository struct {
	db *database.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *database.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

// CreateTransaction appends one entry to the ledger. Entries are never
// updated or deleted.
func (r *CreditRepository) CreateTransaction(tx *models.CreditTransaction) error {
	query := `
		INSERT INTO credit_transactions (id, parent_id, transaction_date, points_changed, description)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		tx.ID,
		tx.ParentID,
		tx.TransactionDate,
		tx.PointsChanged,
		tx.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create credit transaction: %w", err)
	}
	return nil
}

// GetParentTransactions retrieves a parent's ledger in insertion order
func (r *CreditRepository) GetParentTransactions(parentID string) ([]models.CreditTransaction, error) {
	query := `
		SELECT id, parent_id, transaction_date, points_changed, description
		FROM credit_transactions
		WHERE parent_id = ?
		ORDER BY transaction_date ASC
	`
	rows, err := r.db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.CreditTransaction
	for rows.Next() {
		var tx models.CreditTransaction
		if err := rows.Scan(
			&tx.ID,
			&tx.ParentID,
			&tx.TransactionDate,
			&tx.PointsChanged,
			&tx.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan credit transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
