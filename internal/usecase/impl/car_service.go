package impl

import (
	"context"
	"log/slog"
	"strings"

	"carhub/config"
	deliverycontext "carhub/internal/delivery/context"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/repository"
	"carhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// carService implements the CarUsecase interface.
type carService struct {
	carRepo   repository.CarRepository
	userRepo  repository.UserRepository
	listScope entity.ListScope
	logger    *slog.Logger
}

// CarServiceParams holds dependencies for CarService, injected by Fx.
type CarServiceParams struct {
	fx.In

	CarRepo  repository.CarRepository
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCarService is the constructor for carService.
// An unknown cars.listScope falls back to per-owner listing.
func NewCarService(params CarServiceParams) usecase.CarUsecase {
	scope := entity.ListScopeOwner
	if params.Config != nil && params.Config.Cars != nil {
		if configured := entity.ListScope(strings.ToLower(params.Config.Cars.ListScope)); configured.IsValid() {
			scope = configured
		}
	}

	return &carService{
		carRepo:   params.CarRepo,
		userRepo:  params.UserRepo,
		listScope: scope,
		logger:    params.Logger,
	}
}

func (srv *carService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCar validates the input, confirms the owner exists and stores the car.
func (srv *carService) CreateCar(ctx context.Context, ownerID uuid.UUID, input usecase.CreateCarInput) (*entity.Car, error) {
	if reason := validateCreateCarInput(input); reason != "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(reason)
	}

	car := buildCarEntity(ownerID, input)
	if reason := car.Validate(); reason != "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(reason)
	}

	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Car creation for unknown owner", slog.Any("userID", ownerID))

			return nil, domainerrors.ErrUserNotAuthenticated
		}

		return nil, errors.Wrap(err, "failed to verify car owner")
	}

	if err := srv.carRepo.Create(ctx, car); err != nil {
		if errors.Is(err, repository.ErrCarOwnerNotFound) {
			return nil, domainerrors.ErrUserNotAuthenticated
		}

		return nil, errors.Wrap(err, "failed to create car")
	}

	srv.log(ctx).Info("Car created", slog.Any("carID", car.ID), slog.Any("userID", ownerID))

	return car, nil
}

// ListCars returns the caller's cars, or every car when the list scope is "all".
func (srv *carService) ListCars(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	var (
		cars []*entity.Car
		err  error
	)

	if srv.listScope == entity.ListScopeAll {
		cars, err = srv.carRepo.ListAll(ctx)
	} else {
		cars, err = srv.carRepo.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return cars, nil
}

// GetCar returns one car owned by the caller.
func (srv *carService) GetCar(ctx context.Context, ownerID, carID uuid.UUID) (*entity.Car, error) {
	car, err := srv.carRepo.FindByIDAndOwner(ctx, carID, ownerID)
	if err != nil {
		return nil, mapCarError(err, "failed to get car")
	}

	return car, nil
}

// UpdateCar applies a partial update to a car owned by the caller.
func (srv *carService) UpdateCar(ctx context.Context, ownerID, carID uuid.UUID, patch entity.CarPatch) (*entity.Car, error) {
	if reason := patch.Validate(); reason != "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(reason)
	}

	car, err := srv.carRepo.UpdateByIDAndOwner(ctx, carID, ownerID, &patch)
	if err != nil {
		return nil, mapCarError(err, "failed to update car")
	}

	srv.log(ctx).Info("Car updated", slog.Any("carID", carID), slog.Any("userID", ownerID))

	return car, nil
}

// DeleteCar removes a car owned by the caller.
func (srv *carService) DeleteCar(ctx context.Context, ownerID, carID uuid.UUID) error {
	if err := srv.carRepo.DeleteByIDAndOwner(ctx, carID, ownerID); err != nil {
		return mapCarError(err, "failed to delete car")
	}

	srv.log(ctx).Info("Car deleted", slog.Any("carID", carID), slog.Any("userID", ownerID))

	return nil
}

func mapCarError(err error, message string) error {
	if errors.Is(err, repository.ErrCarNotFound) {
		return domainerrors.ErrCarNotFound
	}

	return errors.Wrap(err, message)
}

// validateCreateCarInput reports missing required fields. The image limit is checked by Car.Validate.
func validateCreateCarInput(input usecase.CreateCarInput) string {
	var missing []string
	if strings.TrimSpace(input.Model) == "" {
		missing = append(missing, "model")
	}
	if input.Price == nil {
		missing = append(missing, "price")
	}
	if input.Year == nil {
		missing = append(missing, "year")
	}
	if strings.TrimSpace(input.FuelType) == "" {
		missing = append(missing, "fuelType")
	}
	if strings.TrimSpace(input.Transmission) == "" {
		missing = append(missing, "transmission")
	}
	if len(missing) > 0 {
		return "missing required fields: " + strings.Join(missing, ", ")
	}

	return ""
}

func buildCarEntity(ownerID uuid.UUID, input usecase.CreateCarInput) *entity.Car {
	car := &entity.Car{
		ID:           uuid.New(),
		UserID:       ownerID,
		Model:        input.Model,
		Price:        *input.Price,
		Year:         *input.Year,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		Description:  input.Description,
		Features:     input.Features,
		Images:       input.Images,
	}
	if input.Mileage != nil {
		car.Mileage = *input.Mileage
	}
	if car.Features == nil {
		car.Features = []string{}
	}
	if car.Images == nil {
		car.Images = []string{}
	}

	return car
}
