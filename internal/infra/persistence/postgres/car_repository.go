package postgres

import (
	"context"

	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/repository"
	"carhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// carRepository implements the repository.CarRepository interface.
// Single-record statements always filter by id and user_id together.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{
		db: db,
	}
}

// Create persists a new car.
func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		return carWriteError(err, "failed to create car")
	}

	car.CreatedAt = carM.CreatedAt
	car.UpdatedAt = carM.UpdatedAt

	return nil
}

// ListAll returns every car, newest first.
func (repo *carRepository) ListAll(ctx context.Context) ([]*entity.Car, error) {
	var carModels []*model.CarModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	return toCarDomains(carModels), nil
}

// ListByOwner returns the cars of a single owner, newest first.
func (repo *carRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	var carModels []*model.CarModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars by owner")
	}

	return toCarDomains(carModels), nil
}

// FindByIDAndOwner retrieves a car owned by ownerID.
func (repo *carRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Car, error) {
	var carM model.CarModel

	if err := findOwnedCar(repo.db.WithContext(ctx), id, ownerID, &carM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car")
	}

	return toCarDomain(&carM), nil
}

// UpdateByIDAndOwner applies the patch in a single UPDATE ... RETURNING statement.
// An empty patch only reads the car back.
func (repo *carRepository) UpdateByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID, patch *entity.CarPatch) (*entity.Car, error) {
	if patch == nil || patch.IsEmpty() {
		return repo.FindByIDAndOwner(ctx, id, ownerID)
	}

	var carModels []*model.CarModel
	result := updateOwnedCar(repo.db.WithContext(ctx), id, ownerID, carPatchColumns(patch), &carModels)

	if result.Error != nil {
		return nil, carWriteError(result.Error, "failed to update car")
	}

	if result.RowsAffected == 0 || len(carModels) == 0 {
		return nil, repository.ErrCarNotFound
	}

	return toCarDomain(carModels[0]), nil
}

// DeleteByIDAndOwner removes a car owned by ownerID.
func (repo *carRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := deleteOwnedCar(repo.db.WithContext(ctx), id, ownerID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete car")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

// ownedCar restricts a statement to one car of one owner.
func ownedCar(id, ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ? AND user_id = ?", id, ownerID)
	}
}

func findOwnedCar(tx *gorm.DB, id, ownerID uuid.UUID, dest *model.CarModel) *gorm.DB {
	return tx.Scopes(ownedCar(id, ownerID)).First(dest)
}

func updateOwnedCar(tx *gorm.DB, id, ownerID uuid.UUID, updates map[string]any, dest *[]*model.CarModel) *gorm.DB {
	return tx.Model(dest).
		Clauses(clause.Returning{}).
		Scopes(ownedCar(id, ownerID)).
		Updates(updates)
}

func deleteOwnedCar(tx *gorm.DB, id, ownerID uuid.UUID) *gorm.DB {
	return tx.Scopes(ownedCar(id, ownerID)).Delete(&model.CarModel{})
}

// carWriteError maps constraint violations on the cars table to domain errors.
func carWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return repository.ErrCarOwnerNotFound
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("car violates a column constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// carPatchColumns maps the set fields of a patch to column updates.
// updated_at is refreshed by GORM on Updates with a map.
func carPatchColumns(patch *entity.CarPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.Model != nil {
		updates["model"] = *patch.Model
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Year != nil {
		updates["year"] = *patch.Year
	}
	if patch.Mileage != nil {
		updates["mileage"] = *patch.Mileage
	}
	if patch.FuelType != nil {
		updates["fuel_type"] = *patch.FuelType
	}
	if patch.Transmission != nil {
		updates["transmission"] = *patch.Transmission
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Features != nil {
		updates["features"] = pq.StringArray(nonNilStrings(*patch.Features))
	}
	if patch.Images != nil {
		updates["images"] = pq.StringArray(nonNilStrings(*patch.Images))
	}

	return updates
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func toCarDomains(carModels []*model.CarModel) []*entity.Car {
	cars := make([]*entity.Car, 0, len(carModels))
	for _, carM := range carModels {
		cars = append(cars, toCarDomain(carM))
	}

	return cars
}

func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:           data.ID,
		UserID:       data.UserID,
		Model:        data.Model,
		Price:        data.Price,
		Year:         data.Year,
		Mileage:      data.Mileage,
		FuelType:     data.FuelType,
		Transmission: data.Transmission,
		Description:  data.Description,
		Features:     nonNilStrings(data.Features),
		Images:       nonNilStrings(data.Images),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	return &model.CarModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Model:        data.Model,
		Price:        data.Price,
		Year:         data.Year,
		Mileage:      data.Mileage,
		FuelType:     data.FuelType,
		Transmission: data.Transmission,
		Description:  data.Description,
		Features:     pq.StringArray(nonNilStrings(data.Features)),
		Images:       pq.StringArray(nonNilStrings(data.Images)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
