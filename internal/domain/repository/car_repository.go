package repository

import (
	"context"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for car persistence.
var (
	// ErrCarNotFound is returned when the car does not exist or belongs to another user.
	ErrCarNotFound = errors.New("car not found")
	// ErrCarOwnerNotFound is returned when the owner referenced by a new car does not exist.
	ErrCarOwnerNotFound = errors.New("car owner not found")
)

// CarRepository stores car records. Every single-record operation filters by id and owner together.
type CarRepository interface {
	// Create persists a new car.
	Create(ctx context.Context, car *entity.Car) error

	// ListAll returns every car regardless of owner, newest first.
	ListAll(ctx context.Context) ([]*entity.Car, error)

	// ListByOwner returns the cars owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error)

	// FindByIDAndOwner retrieves a car only if it is owned by ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Car, error)

	// UpdateByIDAndOwner applies patch atomically and returns the updated car.
	UpdateByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID, patch *entity.CarPatch) (*entity.Car, error)

	// DeleteByIDAndOwner removes a car only if it is owned by ownerID.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
