package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikitsoni/expense-system/internal/models"
)

// PutUser inserts a new user into the database.
func (s *SQLiteStore) PutUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (user_id, name, email, created_at) VALUES (?, ?, ?, ?)",
		user.ID,
		user.Name,
		user.Email,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID.
// Returns (nil, nil) if no user with that ID exists.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, name, email, created_at FROM users WHERE user_id = ?",
		userID,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
