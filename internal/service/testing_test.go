package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"saferide/internal/database"
	"saferide/internal/models"
	"saferide/internal/repository"
)

// newTestDB opens a throwaway SQLite database with the full schema applied
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "saferide_test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// disabledEmailService returns an email service that skips all sends
func disabledEmailService(t *testing.T) *EmailService {
	t.Helper()

	emailService, err := NewEmailService("", "", "", nil, "")
	if err != nil {
		t.Fatalf("Failed to create email service: %v", err)
	}
	return emailService
}

// seedParent inserts a parent with the given credit balance and returns its ID
func seedParent(t *testing.T, parentRepo *repository.ParentRepository, creditPoints int) string {
	t.Helper()

	parent := &models.Parent{
		ID:                 uuid.New().String(),
		FullName:           "Test Parent",
		Email:              uuid.New().String() + "@example.com",
		PhoneNumber:        "0412 345 678",
		CreditPoints:       creditPoints,
		VerificationStatus: models.VerificationPending,
		CreatedAt:          time.Now().UTC(),
	}
	if err := parentRepo.CreateParent(parent); err != nil {
		t.Fatalf("Failed to seed parent: %v", err)
	}
	return parent.ID
}

// seedSchool inserts an active school and returns it
func seedSchool(t *testing.T, schoolRepo *repository.SchoolRepository, name string) *models.School {
	t.Helper()

	school, err := schoolRepo.CreateSchool(name, "1 School Road", "office@school.example", "")
	if err != nil {
		t.Fatalf("Failed to seed school: %v", err)
	}
	return school
}
