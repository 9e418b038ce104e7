// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"carhub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed access token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
