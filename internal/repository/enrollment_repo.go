package repository

import (
	"database/sql"
	"fmt"

	"saferide/internal/database"
	"saferide/internal/models"
)

// EnrollmentRepository handles database operations for parent-school enrollments
type EnrollmentRepository struct {
	db *database.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *database.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = `id, parent_id, school_id, status, request_date,
	approval_date, approved_by, rejection_reason, parent_notes, admin_notes`

// CreateEnrollment inserts a new enrollment request
func (r *EnrollmentRepository) CreateEnrollment(enrollment *models.ParentSchoolEnrollment) error {
	query := `
		INSERT INTO parent_school_enrollments (id, parent_id, school_id, status,
			request_date, approval_date, approved_by, rejection_reason,
			parent_notes, admin_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		enrollment.ID,
		enrollment.ParentID,
		enrollment.SchoolID,
		string(enrollment.Status),
		enrollment.RequestDate,
		enrollment.ApprovalDate,
		enrollment.ApprovedBy,
		enrollment.RejectionReason,
		enrollment.ParentNotes,
		enrollment.AdminNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetEnrollmentByID(enrollmentID string) (*models.ParentSchoolEnrollment, error) {
	query := "SELECT " + enrollmentColumns + " FROM parent_school_enrollments WHERE id = ?"
	return r.scanEnrollment(r.db.QueryRow(query, enrollmentID))
}

// GetEnrollment retrieves the enrollment for a (parent, school) pair,
// whatever its status
func (r *EnrollmentRepository) GetEnrollment(parentID string, schoolID int64) (*models.ParentSchoolEnrollment, error) {
	query := "SELECT " + enrollmentColumns + ` FROM parent_school_enrollments
		WHERE parent_id = ? AND school_id = ?`
	return r.scanEnrollment(r.db.QueryRow(query, parentID, schoolID))
}

// UpdateDecision records an approve or reject decision on an enrollment
func (r *EnrollmentRepository) UpdateDecision(enrollment *models.ParentSchoolEnrollment) error {
	query := `
		UPDATE parent_school_enrollments
		SET status = ?, approval_date = ?, approved_by = ?, rejection_reason = ?, admin_notes = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		string(enrollment.Status),
		enrollment.ApprovalDate,
		enrollment.ApprovedBy,
		enrollment.RejectionReason,
		enrollment.AdminNotes,
		enrollment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	return nil
}

// GetParentEnrollments retrieves all of a parent's enrollments with the
// school name joined in for display
func (r *EnrollmentRepository) GetParentEnrollments(parentID string) ([]models.EnrollmentWithSchool, error) {
	query := `
		SELECT e.id, e.parent_id, e.school_id, e.status, e.request_date,
			e.approval_date, e.approved_by, e.rejection_reason, e.parent_notes,
			e.admin_notes, s.name
		FROM parent_school_enrollments e
		JOIN schools s ON s.id = e.school_id
		WHERE e.parent_id = ?
		ORDER BY e.request_date ASC
	`
	rows, err := r.db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	return scanEnrollmentsWithSchool(rows)
}

// GetPendingEnrollments retrieves all enrollments awaiting a decision
func (r *EnrollmentRepository) GetPendingEnrollments() ([]models.EnrollmentWithSchool, error) {
	query := `
		SELECT e.id, e.parent_id, e.school_id, e.status, e.request_date,
			e.approval_date, e.approved_by, e.rejection_reason, e.parent_notes,
			e.admin_notes, s.name
		FROM parent_school_enrollments e
		JOIN schools s ON s.id = e.school_id
		WHERE e.status = ?
		ORDER BY e.request_date ASC
	`
	rows, err := r.db.Query(query, string(models.EnrollmentPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending enrollments: %w", err)
	}
	defer rows.Close()

	return scanEnrollmentsWithSchool(rows)
}

// GetApprovedSchoolsForParent retrieves the schools a parent has an
// approved enrollment with
func (r *EnrollmentRepository) GetApprovedSchoolsForParent(parentID string) ([]models.School, error) {
	query := `
		SELECT s.id, s.name, s.address, s.is_active, s.contact_email, s.contact_phone, s.created_date
		FROM schools s
		JOIN parent_school_enrollments e ON e.school_id = s.id
		WHERE e.parent_id = ? AND e.status = ?
		ORDER BY s.name ASC
	`
	rows, err := r.db.Query(query, parentID, string(models.EnrollmentApproved))
	if err != nil {
		return nil, fmt.Errorf("failed to query approved schools: %w", err)
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

func (r *EnrollmentRepository) scanEnrollment(row *sql.Row) (*models.ParentSchoolEnrollment, error) {
	enrollment := &models.ParentSchoolEnrollment{}
	var status string
	var approvalDate sql.NullTime
	err := row.Scan(
		&enrollment.ID,
		&enrollment.ParentID,
		&enrollment.SchoolID,
		&status,
		&enrollment.RequestDate,
		&approvalDate,
		&enrollment.ApprovedBy,
		&enrollment.RejectionReason,
		&enrollment.ParentNotes,
		&enrollment.AdminNotes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	enrollment.Status = models.EnrollmentStatus(status)
	if approvalDate.Valid {
		enrollment.ApprovalDate = &approvalDate.Time
	}
	return enrollment, nil
}

func scanEnrollmentsWithSchool(rows *sql.Rows) ([]models.EnrollmentWithSchool, error) {
	var enrollments []models.EnrollmentWithSchool
	for rows.Next() {
		var item models.EnrollmentWithSchool
		var status string
		var approvalDate sql.NullTime
		if err := rows.Scan(
			&item.Enrollment.ID,
			&item.Enrollment.ParentID,
			&item.Enrollment.SchoolID,
			&status,
			&item.Enrollment.RequestDate,
			&approvalDate,
			&item.Enrollment.ApprovedBy,
			&item.Enrollment.RejectionReason,
			&item.Enrollment.ParentNotes,
			&item.Enrollment.AdminNotes,
			&item.SchoolName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		item.Enrollment.Status = models.EnrollmentStatus(status)
		if approvalDate.Valid {
			item.Enrollment.ApprovalDate = &approvalDate.Time
		}
		enrollments = append(enrollments, item)
	}

	return enrollments, rows.Err()
}
