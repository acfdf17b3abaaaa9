package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikitsoni/expense-system/internal/apperror"
	"github.com/nikitsoni/expense-system/internal/models"
	"github.com/nikitsoni/expense-system/internal/storage"
)

// AddExpenseRequest is the decoded body for expense creation.
// Pointer fields distinguish absent keys from empty values. Decimal
// fields accept both JSON numbers and quoted decimal strings.
type AddExpenseRequest struct {
	PayerID      *string                     `json:"payer_id"`
	Amount       *decimal.Decimal            `json:"amount"`
	Participants *[]string                   `json:"participants"`
	Splits       *map[string]decimal.Decimal `json:"splits"`
	Description  *string                     `json:"description"`
}

// missingField returns the name of the first absent required field,
// or "" if all five are present. Check order matches field order.
func (r *AddExpenseRequest) missingField() string {
	switch {
	case r.PayerID == nil:
		return "payer_id"
	case r.Amount == nil:
		return "amount"
	case r.Participants == nil:
		return "participants"
	case r.Splits == nil:
		return "splits"
	case r.Description == nil:
		return "description"
	}
	return ""
}

// ExpenseService implements expense creation and participant queries
// over injected stores. The user store is consulted only to verify that
// the payer exists.
type ExpenseService struct {
	users    storage.UserStore
	expenses storage.ExpenseStore
}

// NewExpenseService creates a new ExpenseService with the given storage
// backends.
func NewExpenseService(users storage.UserStore, expenses storage.ExpenseStore) *ExpenseService {
	return &ExpenseService{users: users, expenses: expenses}
}

// Add validates and persists a new expense. Checks run in order and the
// first failure wins: field presence, payer existence, then the split
// sum. Participants absent from the splits map count as zero. The sum
// must equal the total exactly; decimal comparison leaves no rounding
// tolerance.
func (s *ExpenseService) Add(ctx context.Context, req *AddExpenseRequest) (*models.Expense, error) {
	if field := req.missingField(); field != "" {
		return nil, apperror.New(apperror.CodeInvalidArgument, field+" is required")
	}

	payer, err := s.users.GetUser(ctx, *req.PayerID)
	if err != nil {
		slog.Error("AddExpense payer lookup failed", "payer_id", *req.PayerID, "error", err)
		return nil, apperror.Internal(err)
	}
	if payer == nil {
		return nil, apperror.New(apperror.CodeNotFound, "Invalid payer_id. User does not exist.")
	}

	total := decimal.Zero
	for _, userID := range *req.Participants {
		if amount, ok := (*req.Splits)[userID]; ok {
			total = total.Add(amount)
		}
	}
	if !total.Equal(*req.Amount) {
		return nil, apperror.New(apperror.CodeInvalidArgument, "Split amounts do not add up to total")
	}

	expense := &models.Expense{
		ID:           uuid.New().String(),
		PayerID:      *req.PayerID,
		Amount:       *req.Amount,
		Participants: *req.Participants,
		Splits:       *req.Splits,
		Description:  *req.Description,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.expenses.PutExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, apperror.Internal(err)
	}

	return expense, nil
}

// ListByParticipant returns every expense whose participant list
// contains userID. An unknown user yields an empty result, not an
// error; this is deliberately asymmetric with UserService.Get.
func (s *ExpenseService) ListByParticipant(ctx context.Context, userID string) ([]*models.Expense, error) {
	expenses, err := s.expenses.ListByParticipant(ctx, userID)
	if err != nil {
		slog.Error("ListByParticipant failed", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	return expenses, nil
}
