package repository

import (
	"database/sql"
	"fmt"

	"saferide/internal/database"
	"saferide/internal/models"
)

// ParentRepository handles database operations for parents
type ParentRepository struct {
	db *database.DB
}

// NewParentRepository creates a new parent repository
func NewParentRepository(db *database.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

const parentColumns = `id, full_name, email, password_hash, phone_number,
	driving_license_number, wwcc_number, credit_points, is_verified,
	verification_status, is_admin, created_at`

// CreateParent inserts a new parent record
func (r *ParentRepository) CreateParent(parent *models.Parent) error {
	query := `
		INSERT INTO parents (id, full_name, email, password_hash, phone_number,
			driving_license_number, wwcc_number, credit_points, is_verified,
			verification_status, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		parent.ID,
		parent.FullName,
		parent.Email,
		parent.PasswordHash,
		parent.PhoneNumber,
		parent.DrivingLicenseNumber,
		parent.WorkingWithChildrenCardNumber,
		parent.CreditPoints,
		parent.IsVerified,
		string(parent.VerificationStatus),
		parent.IsAdmin,
		parent.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create parent: %w", err)
	}
	return nil
}

// GetParentByID retrieves a parent by ID
func (r *ParentRepository) GetParentByID(parentID string) (*models.Parent, error) {
	query := "SELECT " + parentColumns + " FROM parents WHERE id = ?"
	return r.scanParent(r.db.QueryRow(query, parentID))
}

// GetParentByEmail retrieves a parent by email address
func (r *ParentRepository) GetParentByEmail(email string) (*models.Parent, error) {
	query := "SELECT " + parentColumns + " FROM parents WHERE email = ?"
	return r.scanParent(r.db.QueryRow(query, email))
}

// UpdateCreditPoints sets a parent's credit balance
func (r *ParentRepository) UpdateCreditPoints(parentID string, creditPoints int) error {
	query := "UPDATE parents SET credit_points = ? WHERE id = ?"
	_, err := r.db.Exec(query, creditPoints, parentID)
	if err != nil {
		return fmt.Errorf("failed to update credit points: %w", err)
	}
	return nil
}

// UpdateVerification sets a parent's verification status and flag
func (r *ParentRepository) UpdateVerification(parentID string, status models.VerificationStatus, isVerified bool) error {
	query := "UPDATE parents SET verification_status = ?, is_verified = ? WHERE id = ?"
	_, err := r.db.Exec(query, string(status), isVerified, parentID)
	if err != nil {
		return fmt.Errorf("failed to update verification: %w", err)
	}
	return nil
}

// GetPendingParents retrieves all parents awaiting verification review
func (r *ParentRepository) GetPendingParents() ([]models.Parent, error) {
	query := "SELECT " + parentColumns + ` FROM parents
		WHERE verification_status = ? ORDER BY created_at ASC`
	rows, err := r.db.Query(query, string(models.VerificationPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending parents: %w", err)
	}
	defer rows.Close()

	var parents []models.Parent
	for rows.Next() {
		var parent models.Parent
		if err := scanParentFields(rows, &parent); err != nil {
			return nil, fmt.Errorf("failed to scan parent: %w", err)
		}
		parents = append(parents, parent)
	}

	return parents, rows.Err()
}

func (r *ParentRepository) scanParent(row *sql.Row) (*models.Parent, error) {
	parent := &models.Parent{}
	var status string
	err := row.Scan(
		&parent.ID,
		&parent.FullName,
		&parent.Email,
		&parent.PasswordHash,
		&parent.PhoneNumber,
		&parent.DrivingLicenseNumber,
		&parent.WorkingWithChildrenCardNumber,
		&parent.CreditPoints,
		&parent.IsVerified,
		&status,
		&parent.IsAdmin,
		&parent.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get parent: %w", err)
	}

	parent.VerificationStatus = models.VerificationStatus(status)
	return parent, nil
}

func scanParentFields(rows *sql.Rows, parent *models.Parent) error {
	var status string
	if err := rows.Scan(
		&parent.ID,
		&parent.FullName,
		&parent.Email,
		&parent.PasswordHash,
		&parent.PhoneNumber,
		&parent.DrivingLicenseNumber,
		&parent.WorkingWithChildrenCardNumber,
		&parent.CreditPoints,
		&parent.IsVerified,
		&status,
		&parent.IsAdmin,
		&parent.CreatedAt,
	); err != nil {
		return err
	}
	parent.VerificationStatus = models.VerificationStatus(status)
	return nil
}
