package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nikitsoni/expense-system/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "expense-system-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestSQLiteUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("PutUser then GetUser roundtrips", func(t *testing.T) {
		user := &models.User{
			ID:        "u1",
			Name:      "Alice",
			Email:     "alice@example.com",
			CreatedAt: "2026-08-31T10:00:00Z",
		}

		if err := store.PutUser(ctx, user); err != nil {
			t.Fatalf("PutUser failed: %v", err)
		}

		got, err := store.GetUser(ctx, "u1")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected user, got nil")
		}
		if *got != *user {
			t.Errorf("user mismatch: got %+v, want %+v", got, user)
		}
	})

	t.Run("GetUser returns nil for unknown id", func(t *testing.T) {
		got, err := store.GetUser(ctx, "nonexistent-id")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

func TestSQLiteExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expense := &models.Expense{
		ID:           "e1",
		PayerID:      "u1",
		Amount:       mustDecimal(t, "100.00"),
		Participants: []string{"u1", "u2"},
		Splits: map[string]decimal.Decimal{
			"u1": mustDecimal(t, "40.00"),
			"u2": mustDecimal(t, "60.00"),
		},
		Description: "Dinner",
		CreatedAt:   "2026-08-31T10:00:00Z",
	}

	t.Run("PutExpense then ListByParticipant roundtrips exactly", func(t *testing.T) {
		if err := store.PutExpense(ctx, expense); err != nil {
			t.Fatalf("PutExpense failed: %v", err)
		}

		got, err := store.ListByParticipant(ctx, "u2")
		if err != nil {
			t.Fatalf("ListByParticipant failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d expenses, want 1", len(got))
		}

		e := got[0]
		if e.ID != expense.ID || e.PayerID != expense.PayerID || e.Description != expense.Description {
			t.Errorf("expense mismatch: got %+v", e)
		}
		if !e.Amount.Equal(expense.Amount) {
			t.Errorf("amount = %s, want %s", e.Amount, expense.Amount)
		}
		if len(e.Participants) != 2 || e.Participants[0] != "u1" || e.Participants[1] != "u2" {
			t.Errorf("participants lost order: %v", e.Participants)
		}
		if !e.Splits["u1"].Equal(expense.Splits["u1"]) || !e.Splits["u2"].Equal(expense.Splits["u2"]) {
			t.Errorf("splits mismatch: %v", e.Splits)
		}
	})

	t.Run("decimal precision survives storage", func(t *testing.T) {
		precise := &models.Expense{
			ID:           "e2",
			PayerID:      "u1",
			Amount:       mustDecimal(t, "0.3"),
			Participants: []string{"u3", "u4"},
			Splits: map[string]decimal.Decimal{
				"u3": mustDecimal(t, "0.1"),
				"u4": mustDecimal(t, "0.2"),
			},
			Description: "Coffee",
			CreatedAt:   "2026-08-31T11:00:00Z",
		}
		if err := store.PutExpense(ctx, precise); err != nil {
			t.Fatalf("PutExpense failed: %v", err)
		}

		got, err := store.ListByParticipant(ctx, "u3")
		if err != nil {
			t.Fatalf("ListByParticipant failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d expenses, want 1", len(got))
		}
		sum := got[0].Splits["u3"].Add(got[0].Splits["u4"])
		if !sum.Equal(got[0].Amount) {
			t.Errorf("sum %s != amount %s after roundtrip", sum, got[0].Amount)
		}
	})

	t.Run("ListByParticipant matches participants only", func(t *testing.T) {
		// u1 is payer of e1 but not a participant of e2
		got, err := store.ListByParticipant(ctx, "u1")
		if err != nil {
			t.Fatalf("ListByParticipant failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "e1" {
			t.Errorf("got %d expenses, want only e1", len(got))
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got, err := store.ListByParticipant(ctx, "stranger")
		if err != nil {
			t.Fatalf("ListByParticipant failed: %v", err)
		}
		if got == nil {
			t.Error("expected non-nil empty slice")
		}
		if len(got) != 0 {
			t.Errorf("got %d expenses, want 0", len(got))
		}
	})

	t.Run("scan order follows insertion order", func(t *testing.T) {
		shared := &models.Expense{
			ID:           "e3",
			PayerID:      "u1",
			Amount:       mustDecimal(t, "10"),
			Participants: []string{"u2"},
			Splits:       map[string]decimal.Decimal{"u2": mustDecimal(t, "10")},
			Description:  "Taxi",
			CreatedAt:    "2026-08-31T12:00:00Z",
		}
		if err := store.PutExpense(ctx, shared); err != nil {
			t.Fatalf("PutExpense failed: %v", err)
		}

		got, err := store.ListByParticipant(ctx, "u2")
		if err != nil {
			t.Fatalf("ListByParticipant failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e3" {
			ids := make([]string, len(got))
			for i, e := range got {
				ids[i] = e.ID
			}
			t.Errorf("scan order = %v, want [e1 e3]", ids)
		}
	})
}
