// Package memory provides an in-process implementation of the
// storage.Store interface backed by plain maps. It keeps the same
// semantics as the durable backends: single-key gets and puts, and a
// linear scan with a participant-containment filter for expense listing.
// Useful for tests and for running the server without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nikitsoni/expense-system/internal/models"
	"github.com/nikitsoni/expense-system/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with in-process maps.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	expenses []*models.Expense // insertion order is the scan order
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*models.User),
	}
}

// PutUser stores a user record keyed by its ID.
func (s *MemoryStore) PutUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.users[u.ID] = &u
	return nil
}

// GetUser returns the user with the given ID, or (nil, nil) if absent.
func (s *MemoryStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

// PutExpense appends an expense record to the scan sequence.
func (s *MemoryStore) PutExpense(ctx context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append(s.expenses, copyExpense(expense))
	return nil
}

// ListByParticipant scans every stored expense and returns those whose
// participant list contains userID, in insertion order.
func (s *MemoryStore) ListByParticipant(ctx context.Context, userID string) ([]*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []*models.Expense{}
	for _, expense := range s.expenses {
		if expense.HasParticipant(userID) {
			matches = append(matches, copyExpense(expense))
		}
	}
	return matches, nil
}

// Ping always succeeds for the in-process store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-process store.
func (s *MemoryStore) Close() error {
	return nil
}

// copyExpense returns a deep copy so callers cannot mutate stored state.
func copyExpense(expense *models.Expense) *models.Expense {
	e := *expense
	e.Participants = append([]string(nil), expense.Participants...)
	if expense.Splits != nil {
		e.Splits = make(map[string]decimal.Decimal, len(expense.Splits))
		for userID, amount := range expense.Splits {
			e.Splits[userID] = amount
		}
	}
	return &e
}
