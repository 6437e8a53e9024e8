package models

import "time"

// VerificationDocument is an identity document uploaded by a parent,
// e.g. a driving licence or working-with-children card
type VerificationDocument struct {
	ID           string
	ParentID     string
	DocumentType string
	DocumentURL  string
	UploadedDate time.Time
	Status       VerificationStatus
}
