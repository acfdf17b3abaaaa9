package service

import (
	"context"
	"testing"

	"github.com/nikitsoni/expense-system/internal/apperror"
	"github.com/nikitsoni/expense-system/internal/storage/memory"
)

func strPtr(s string) *string {
	return &s
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request creates user with generated fields", func(t *testing.T) {
		svc := NewUserService(memory.New())

		user, err := svc.Register(ctx, &RegisterUserRequest{
			Name:  strPtr("Alice"),
			Email: strPtr("alice@example.com"),
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if user.ID == "" {
			t.Error("expected user ID to be generated")
		}
		if user.CreatedAt == "" {
			t.Error("expected CreatedAt to be set")
		}
		if user.Name != "Alice" || user.Email != "alice@example.com" {
			t.Errorf("unexpected user fields: %+v", user)
		}
	})

	t.Run("registered user is retrievable", func(t *testing.T) {
		svc := NewUserService(memory.New())

		created, err := svc.Register(ctx, &RegisterUserRequest{
			Name:  strPtr("Bob"),
			Email: strPtr("bob@example.com"),
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		got, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "Bob" || got.Email != "bob@example.com" {
			t.Errorf("retrieved user mismatch: %+v", got)
		}
	})

	t.Run("repeated registration creates distinct users", func(t *testing.T) {
		svc := NewUserService(memory.New())

		req := &RegisterUserRequest{Name: strPtr("Carol"), Email: strPtr("carol@example.com")}
		first, err := svc.Register(ctx, req)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		second, err := svc.Register(ctx, req)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if first.ID == second.ID {
			t.Error("expected distinct user IDs for repeated registration")
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			req  *RegisterUserRequest
		}{
			{"missing name", &RegisterUserRequest{Email: strPtr("a@b.c")}},
			{"missing email", &RegisterUserRequest{Name: strPtr("Alice")}},
			{"missing both", &RegisterUserRequest{}},
		}

		svc := NewUserService(memory.New())
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tt.req)
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if apperror.CodeOf(err) != apperror.CodeInvalidArgument {
					t.Errorf("code = %v, want CodeInvalidArgument", apperror.CodeOf(err))
				}
				if err.Error() != "name and email are required" {
					t.Errorf("message = %q", err.Error())
				}
			})
		}
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := NewUserService(memory.New())

		_, err := svc.Get(ctx, "no-such-user")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if apperror.CodeOf(err) != apperror.CodeNotFound {
			t.Errorf("code = %v, want CodeNotFound", apperror.CodeOf(err))
		}
		if err.Error() != "User not found" {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("repeated reads return identical records", func(t *testing.T) {
		svc := NewUserService(memory.New())

		created, err := svc.Register(ctx, &RegisterUserRequest{
			Name:  strPtr("Dave"),
			Email: strPtr("dave@example.com"),
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		first, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		second, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if *first != *second {
			t.Errorf("reads differ: %+v vs %+v", first, second)
		}
	})
}
