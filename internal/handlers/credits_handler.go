package handlers

import (
	"net/http"

	"saferide/internal/service"
)

// CreditsHandler exposes the parent's credit balance and ledger
type CreditsHandler struct {
	creditService *service.CreditService
}

// NewCreditsHandler creates a new credits handler
func NewCreditsHandler(creditService *service.CreditService) *CreditsHandler {
	return &CreditsHandler{creditService: creditService}
}

// GetBalance returns the authenticated parent's current credit balance
func (h *CreditsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	respondJSON(w, http.StatusOK, map[string]int{
		"balance": h.creditService.GetBalance(claims.ParentID),
	})
}

// AddCredit grants the parent one credit point, up to the cap
func (h *CreditsHandler) AddCredit(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	if !h.creditService.AddCredit(claims.ParentID) {
		respondResult(w, service.Fail("Unable to add credit"))
		return
	}
	respondResult(w, service.Ok())
}

// DeductCredit spends one of the parent's credit points
func (h *CreditsHandler) DeductCredit(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	if !h.creditService.DeductCredit(claims.ParentID) {
		respondResult(w, service.Fail("Insufficient credits"))
		return
	}
	respondResult(w, service.Ok())
}

// GetHistory returns the parent's credit ledger, oldest first
func (h *CreditsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	transactions, err := h.creditService.GetHistory(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load credit history", err)
		return
	}

	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, newTransactionView(tx))
	}
	respondJSON(w, http.StatusOK, views)
}
