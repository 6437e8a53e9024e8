package service

import (
	"testing"

	"saferide/internal/models"
	"saferide/internal/repository"
)

func newCreditFixture(t *testing.T) (*CreditService, *repository.ParentRepository) {
	t.Helper()
	db := newTestDB(t)
	parentRepo := repository.NewParentRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	return NewCreditService(parentRepo, creditRepo), parentRepo
}

func TestGetBalanceMissingParent(t *testing.T) {
	creditService, _ := newCreditFixture(t)

	if balance := creditService.GetBalance("no-such-parent"); balance != 0 {
		t.Errorf("GetBalance() = %d, want 0 for missing parent", balance)
	}
}

func TestAddCreditAtCeiling(t *testing.T) {
	creditService, parentRepo := newCreditFixture(t)
	parentID := seedParent(t, parentRepo, 5)

	if creditService.AddCredit(parentID) {
		t.Error("AddCredit() should fail at the ceiling")
	}
	if balance := creditService.GetBalance(parentID); balance != 5 {
		t.Errorf("balance = %d, want 5 after failed add", balance)
	}

	history, err := creditService.GetHistory(parentID)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0 after failed add", len(history))
	}
}

func TestDeductCreditAtFloor(t *testing.T) {
	creditService, parentRepo := newCreditFixture(t)
	parentID := seedParent(t, parentRepo, 0)

	if creditService.DeductCredit(parentID) {
		t.Error("DeductCredit() should fail at zero")
	}
	if balance := creditService.GetBalance(parentID); balance != 0 {
		t.Errorf("balance = %d, want 0 after failed deduct", balance)
	}
}

func TestAddCreditMissingParent(t *testing.T) {
	creditService, _ := newCreditFixture(t)

	if creditService.AddCredit("no-such-parent") {
		t.Error("AddCredit() should fail for a missing parent")
	}
	if creditService.DeductCredit("no-such-parent") {
		t.Error("DeductCredit() should fail for a missing parent")
	}
}

func TestCreditLedgerAppendsPerChange(t *testing.T) {
	creditService, parentRepo := newCreditFixture(t)
	parentID := seedParent(t, parentRepo, 2)

	if !creditService.AddCredit(parentID) {
		t.Fatal("AddCredit() should succeed below the ceiling")
	}
	if !creditService.DeductCredit(parentID) {
		t.Fatal("DeductCredit() should succeed above zero")
	}

	history, err := creditService.GetHistory(parentID)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}

	if history[0].PointsChanged != 1 || history[0].Description != models.CreditEarnedDescription {
		t.Errorf("first entry = (%d, %q), want (1, %q)",
			history[0].PointsChanged, history[0].Description, models.CreditEarnedDescription)
	}
	if history[1].PointsChanged != -1 || history[1].Description != models.CreditUsedDescription {
		t.Errorf("second entry = (%d, %q), want (-1, %q)",
			history[1].PointsChanged, history[1].Description, models.CreditUsedDescription)
	}
}

// Full scenario: a parent at the ceiling spends everything down to zero.
func TestCreditSpendDownScenario(t *testing.T) {
	creditService, parentRepo := newCreditFixture(t)
	parentID := seedParent(t, parentRepo, 5)

	if creditService.AddCredit(parentID) {
		t.Fatal("AddCredit() at 5 points should fail")
	}
	if balance := creditService.GetBalance(parentID); balance != 5 {
		t.Fatalf("balance = %d, want 5", balance)
	}

	for i := 0; i < 5; i++ {
		if !creditService.DeductCredit(parentID) {
			t.Fatalf("DeductCredit() #%d should succeed", i+1)
		}
	}

	if balance := creditService.GetBalance(parentID); balance != 0 {
		t.Errorf("balance = %d, want 0 after five deductions", balance)
	}

	history, err := creditService.GetHistory(parentID)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 5 {
		t.Errorf("history length = %d, want 5", len(history))
	}

	if creditService.DeductCredit(parentID) {
		t.Error("sixth DeductCredit() should fail at zero")
	}
	if balance := creditService.GetBalance(parentID); balance != 0 {
		t.Errorf("balance = %d, want 0 after failed deduct", balance)
	}
}
