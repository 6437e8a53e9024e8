package models

import "time"

// School represents a school parents can enroll with
type School struct {
	ID           int64
	Name         string
	Address      string
	IsActive     bool
	ContactEmail string
	ContactPhone string
	CreatedDate  time.Time
}
