package models

import "time"

// Descriptions written to the credit ledger
const (
	CreditEarnedDescription = "Earned ride point"
	CreditUsedDescription   = "Used ride point"
)

// CreditTransaction is one entry in a parent's append-only credit ledger
type CreditTransaction struct {
	ID              string
	ParentID        string
	TransactionDate time.Time
	PointsChanged   int
	Description     string
}
