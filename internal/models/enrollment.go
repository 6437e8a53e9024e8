package models

import "time"

// EnrollmentStatus is the state of a parent's enrollment with a school.
// Suspended is declared for parity with the admin tooling but nothing
// transitions into it.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "Pending"
	EnrollmentApproved  EnrollmentStatus = "Approved"
	EnrollmentRejected  EnrollmentStatus = "Rejected"
	EnrollmentSuspended EnrollmentStatus = "Suspended"
)

// ParentSchoolEnrollment links a parent to a school through an
// admin-moderated approval workflow
type ParentSchoolEnrollment struct {
	ID              string
	ParentID        string
	SchoolID        int64
	Status          EnrollmentStatus
	RequestDate     time.Time
	ApprovalDate    *time.Time
	ApprovedBy      string // admin who made the decision, approve or reject
	RejectionReason string
	ParentNotes     string
	AdminNotes      string
}

// IsPending reports whether the enrollment can still be decided
func (e *ParentSchoolEnrollment) IsPending() bool {
	return e.Status == EnrollmentPending
}

// EnrollmentWithSchool is a read projection that carries the school's
// display fields alongside the enrollment
type EnrollmentWithSchool struct {
	Enrollment ParentSchoolEnrollment
	SchoolName string
}
