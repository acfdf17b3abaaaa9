// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/nikitsoni/expense-system/internal/models"
)

// UserStore defines the interface for user persistence.
// This abstraction allows swapping storage backends (SQLite, in-memory,
// a remote document store) without changing the service layer.
type UserStore interface {
	// PutUser persists a new user record. The caller assigns the ID.
	PutUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	// Returns (nil, nil) if no user with that ID exists.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// ExpenseStore defines the interface for expense persistence.
type ExpenseStore interface {
	// PutExpense persists a new expense record. The caller assigns the ID.
	PutExpense(ctx context.Context, expense *models.Expense) error

	// ListByParticipant scans all expenses and returns those whose
	// participant list contains userID. Result order follows scan order
	// and is not guaranteed stable or chronological. A user with no
	// matching expenses yields an empty slice, not an error.
	ListByParticipant(ctx context.Context, userID string) ([]*models.Expense, error)
}

// Store combines both stores plus lifecycle management, for backends
// that hold a shared connection.
type Store interface {
	UserStore
	ExpenseStore

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
