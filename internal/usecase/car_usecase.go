package usecase

import (
	"context"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCarInput carries a new car. Price and Year are pointers so a missing value can be told apart from zero.
type CreateCarInput struct {
	Model        string
	Price        *float64
	Year         *int
	Mileage      *float64
	FuelType     string
	Transmission string
	Description  string
	Features     []string
	Images       []string
}

// CarUsecase defines the car inventory operations. Every call acts on behalf of ownerID.
type CarUsecase interface {
	CreateCar(ctx context.Context, ownerID uuid.UUID, input CreateCarInput) (*entity.Car, error)
	ListCars(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error)
	GetCar(ctx context.Context, ownerID, carID uuid.UUID) (*entity.Car, error)
	UpdateCar(ctx context.Context, ownerID, carID uuid.UUID, patch entity.CarPatch) (*entity.Car, error)
	DeleteCar(ctx context.Context, ownerID, carID uuid.UUID) error
}
