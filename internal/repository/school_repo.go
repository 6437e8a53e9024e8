package repository

import (
	"database/sql"
	"fmt"
	"time"

	"saferide/internal/database"
	"saferide/internal/models"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *database.DB
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *database.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// CreateSchool creates a new school and returns it with its assigned ID
func (r *SchoolRepository) CreateSchool(name, address, contactEmail, contactPhone string) (*models.School, error) {
	query := `
		INSERT INTO schools (name, address, is_active, contact_email, contact_phone, created_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	now := time.Now().UTC()
	schoolID, err := r.db.ExecReturningID(query, name, address, true, contactEmail, contactPhone, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create school: %w", err)
	}

	return &models.School{
		ID:           schoolID,
		Name:         name,
		Address:      address,
		IsActive:     true,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		CreatedDate:  now,
	}, nil
}

// GetSchoolByID retrieves a school by ID
func (r *SchoolRepository) GetSchoolByID(schoolID int64) (*models.School, error) {
	query := `
		SELECT id, name, address, is_active, contact_email, contact_phone, created_date
		FROM schools WHERE id = ?
	`
	school := &models.School{}
	err := r.db.QueryRow(query, schoolID).Scan(
		&school.ID,
		&school.Name,
		&school.Address,
		&school.IsActive,
		&school.ContactEmail,
		&school.ContactPhone,
		&school.CreatedDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get school: %w", err)
	}

	return school, nil
}

// GetActiveSchools retrieves all schools currently accepting enrollments
func (r *SchoolRepository) GetActiveSchools() ([]models.School, error) {
	query := `
		SELECT id, name, address, is_active, contact_email, contact_phone, created_date
		FROM schools
		WHERE is_active = ?
		ORDER BY name ASC
	`
	rows, err := r.db.Query(query, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query schools: %w", err)
	}
	defer rows.Close()

	var schools []models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(
			&school.ID,
			&school.Name,
			&school.Address,
			&school.IsActive,
			&school.ContactEmail,
			&school.ContactPhone,
			&school.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan school: %w", err)
		}
		schools = append(schools, school)
	}

	return schools, rows.Err()
}
