// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository is the credential store. Users are never updated or deleted.
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateUser when the username or email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
