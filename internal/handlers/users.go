// Package handlers adapts the service layer to HTTP: it decodes typed
// JSON requests, dispatches to a service, and writes status-coded JSON
// responses.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikitsoni/expense-system/internal/apperror"
	"github.com/nikitsoni/expense-system/internal/models"
	"github.com/nikitsoni/expense-system/internal/service"
)

// RegisterUserResponse is the success body for user registration.
type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// UserResponse is the full user record returned by lookups.
type UserResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Malformed bodies surface as 500, preserving the catch-all
		// contract for anything outside the explicit validations.
		writeError(w, apperror.Internal(err))
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterUserResponse{
		Message: "User registered",
		UserID:  user.ID,
	})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
