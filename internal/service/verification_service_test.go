package service

import (
	"errors"
	"testing"

	"saferide/internal/models"
	"saferide/internal/repository"
)

type verificationFixture struct {
	verificationService *VerificationService
	parentRepo          *repository.ParentRepository
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	t.Helper()
	db := newTestDB(t)
	parentRepo := repository.NewParentRepository(db)
	return &verificationFixture{
		verificationService: NewVerificationService(parentRepo, repository.NewDocumentRepository(db)),
		parentRepo:          parentRepo,
	}
}

func TestRegisterDocumentForcesPending(t *testing.T) {
	f := newVerificationFixture(t)
	parentID := seedParent(t, f.parentRepo, 5)

	doc, err := f.verificationService.RegisterDocument(parentID, "DrivingLicense", "https://docs.example/dl.pdf")
	if err != nil {
		t.Fatalf("RegisterDocument() error = %v", err)
	}
	if doc.Status != models.VerificationPending {
		t.Errorf("status = %q, want %q", doc.Status, models.VerificationPending)
	}

	docs, err := f.verificationService.GetParentDocuments(parentID)
	if err != nil {
		t.Fatalf("GetParentDocuments() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Status != models.VerificationPending {
		t.Errorf("stored documents = %v, want one pending document", docs)
	}
}

func TestVerifyParentNoDocuments(t *testing.T) {
	f := newVerificationFixture(t)
	parentID := seedParent(t, f.parentRepo, 5)

	status, err := f.verificationService.VerifyParent(parentID)
	if err != nil {
		t.Fatalf("VerifyParent() error = %v", err)
	}
	if status != models.VerificationPending {
		t.Errorf("status = %q, want %q with no documents", status, models.VerificationPending)
	}
}

func TestVerifyParentMissingParent(t *testing.T) {
	f := newVerificationFixture(t)

	status, err := f.verificationService.VerifyParent("no-such-parent")
	if err != nil {
		t.Fatalf("VerifyParent() error = %v", err)
	}
	if status != models.VerificationPending {
		t.Errorf("status = %q, want %q for missing parent", status, models.VerificationPending)
	}
}

func TestVerifyParentAllDocumentsVerified(t *testing.T) {
	f := newVerificationFixture(t)
	parentID := seedParent(t, f.parentRepo, 5)

	license, err := f.verificationService.RegisterDocument(parentID, "DrivingLicense", "https://docs.example/dl.pdf")
	if err != nil {
		t.Fatalf("RegisterDocument() error = %v", err)
	}
	card, err := f.verificationService.RegisterDocument(parentID, "WorkingWithChildrenCard", "https://docs.example/wwc.pdf")
	if err != nil {
		t.Fatalf("RegisterDocument() error = %v", err)
	}

	if err := f.verificationService.ReviewDocument(license.ID, models.VerificationVerified); err != nil {
		t.Fatalf("ReviewDocument() error = %v", err)
	}

	// One document still pending: parent stays pending
	status, err := f.verificationService.VerifyParent(parentID)
	if err != nil {
		t.Fatalf("VerifyParent() error = %v", err)
	}
	if status != models.VerificationPending {
		t.Errorf("status = %q, want %q while a document is pending", status, models.VerificationPending)
	}

	if err := f.verificationService.ReviewDocument(card.ID, models.VerificationVerified); err != nil {
		t.Fatalf("ReviewDocument() error = %v", err)
	}

	status, err = f.verificationService.VerifyParent(parentID)
	if err != nil {
		t.Fatalf("VerifyParent() error = %v", err)
	}
	if status != models.VerificationVerified {
		t.Errorf("status = %q, want %q", status, models.VerificationVerified)
	}

	parent, err := f.parentRepo.GetParentByID(parentID)
	if err != nil {
		t.Fatalf("GetParentByID() error = %v", err)
	}
	if !parent.IsVerified || parent.VerificationStatus != models.VerificationVerified {
		t.Errorf("parent verification = (%v, %q), want (true, Verified)", parent.IsVerified, parent.VerificationStatus)
	}
}

func TestVerifyParentRejectedDocument(t *testing.T) {
	f := newVerificationFixture(t)
	parentID := seedParent(t, f.parentRepo, 5)

	doc, err := f.verificationService.RegisterDocument(parentID, "DrivingLicense", "https://docs.example/dl.pdf")
	if err != nil {
		t.Fatalf("RegisterDocument() error = %v", err)
	}
	if err := f.verificationService.ReviewDocument(doc.ID, models.VerificationRejected); err != nil {
		t.Fatalf("ReviewDocument() error = %v", err)
	}

	status, err := f.verificationService.VerifyParent(parentID)
	if err != nil {
		t.Fatalf("VerifyParent() error = %v", err)
	}
	if status != models.VerificationPending {
		t.Errorf("status = %q, want %q with a rejected document", status, models.VerificationPending)
	}
}

func TestGetVerificationStatusMissingParent(t *testing.T) {
	f := newVerificationFixture(t)

	status, err := f.verificationService.GetVerificationStatus("no-such-parent")
	if err != nil {
		t.Fatalf("GetVerificationStatus() error = %v", err)
	}
	if status != models.VerificationPending {
		t.Errorf("status = %q, want %q", status, models.VerificationPending)
	}
}

func TestReviewDocumentMissing(t *testing.T) {
	f := newVerificationFixture(t)

	if err := f.verificationService.ReviewDocument("no-such-document", models.VerificationVerified); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("ReviewDocument() error = %v, want ErrDocumentNotFound", err)
	}
}
