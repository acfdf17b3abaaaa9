package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikitsoni/expense-system/internal/apperror"
	"github.com/nikitsoni/expense-system/internal/models"
	"github.com/nikitsoni/expense-system/internal/service"
)

// AddExpenseResponse is the success body for expense creation.
type AddExpenseResponse struct {
	Message   string `json:"message"`
	ExpenseID string `json:"expense_id"`
}

// ExpenseRecord is the transport shape of a stored expense. Amounts are
// rendered as JSON numbers here; precision loss at this boundary is an
// accepted trade-off, storage stays exact.
type ExpenseRecord struct {
	ExpenseID    string             `json:"expense_id"`
	PayerID      string             `json:"payer_id"`
	Amount       float64            `json:"amount"`
	Participants []string           `json:"participants"`
	Splits       map[string]float64 `json:"splits"`
	Description  string             `json:"description"`
	CreatedAt    string             `json:"created_at"`
}

// ExpenseHandler handles expense-related HTTP requests.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler instance.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Add handles POST /expenses.
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Malformed bodies and unparseable decimals surface as 500,
		// preserving the catch-all contract.
		writeError(w, apperror.Internal(err))
		return
	}

	expense, err := h.expenses.Add(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AddExpenseResponse{
		Message:   "Expense added",
		ExpenseID: expense.ID,
	})
}

// ListByUser handles GET /users/{id}/expenses. No match yields an empty
// array with 200, never a 404.
func (h *ExpenseHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.ListByParticipant(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	records := make([]ExpenseRecord, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, toExpenseRecord(expense))
	}
	writeJSON(w, http.StatusOK, records)
}

func toExpenseRecord(expense *models.Expense) ExpenseRecord {
	splits := make(map[string]float64, len(expense.Splits))
	for userID, amount := range expense.Splits {
		splits[userID] = amount.InexactFloat64()
	}
	return ExpenseRecord{
		ExpenseID:    expense.ID,
		PayerID:      expense.PayerID,
		Amount:       expense.Amount.InexactFloat64(),
		Participants: expense.Participants,
		Splits:       splits,
		Description:  expense.Description,
		CreatedAt:    expense.CreatedAt,
	}
}
