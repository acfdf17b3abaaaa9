package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nikitsoni/expense-system/internal/apperror"
	"github.com/nikitsoni/expense-system/internal/models"
	"github.com/nikitsoni/expense-system/internal/storage"
)

// RegisterUserRequest is the decoded body for user registration.
// Pointer fields distinguish absent keys from empty values.
type RegisterUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserService implements user registration and lookup over an injected
// user store.
type UserService struct {
	users storage.UserStore
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(users storage.UserStore) *UserService {
	return &UserService{users: users}
}

// Register validates the request, assigns a fresh user ID and creation
// timestamp, and persists the user. Repeated calls with identical
// name/email create distinct users.
func (s *UserService) Register(ctx context.Context, req *RegisterUserRequest) (*models.User, error) {
	if req.Name == nil || req.Email == nil {
		return nil, apperror.New(apperror.CodeInvalidArgument, "name and email are required")
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      *req.Name,
		Email:     *req.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.PutUser(ctx, user); err != nil {
		slog.Error("Register failed", "error", err)
		return nil, apperror.Internal(err)
	}

	return user, nil
}

// Get looks up a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		slog.Error("GetUser failed", "user_id", userID, "error", err)
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.New(apperror.CodeNotFound, "User not found")
	}
	return user, nil
}
