package models

import "time"

// VerificationStatus tracks where a parent (or one of their documents)
// sits in the identity review process.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

// DefaultCreditPoints is the balance every new parent starts with.
const DefaultCreditPoints = 5

// Parent represents a registered parent account
type Parent struct {
	ID                            string
	FullName                      string
	Email                         string
	PasswordHash                  string
	PhoneNumber                   string
	DrivingLicenseNumber          string
	WorkingWithChildrenCardNumber string
	CreditPoints                  int
	IsVerified                    bool
	VerificationStatus            VerificationStatus
	IsAdmin                       bool
	CreatedAt                     time.Time
}
