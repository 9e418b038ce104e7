package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/usecase"
	mockUsecase "carhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCarHandler(t *testing.T) (*CarHandler, *mockUsecase.MockCarUsecase) {
	carUC := mockUsecase.NewMockCarUsecase(t)

	return NewCarHandler(CarHandlerParams{CarUC: carUC, Logger: newDiscardLogger()}), carUC
}

func sampleCar(ownerID uuid.UUID) *entity.Car {
	return &entity.Car{
		ID:           uuid.New(),
		UserID:       ownerID,
		Model:        "Sedan",
		Price:        20000,
		Year:         2020,
		FuelType:     "Petrol",
		Transmission: "Automatic",
		Features:     []string{},
		Images:       []string{},
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCarHandler_CreateCar(t *testing.T) {
	ownerID := uuid.New()

	t.Run("created with caller as owner", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		car := sampleCar(ownerID)
		carUC.EXPECT().CreateCar(mock.Anything, ownerID, mock.MatchedBy(func(in usecase.CreateCarInput) bool {
			return in.Model == "Sedan" && *in.Price == 20000 && *in.Year == 2020 && in.Mileage == nil
		})).Return(car, nil)

		body := `{"model":"Sedan","price":20000,"year":2020,"fuelType":"Petrol","transmission":"Automatic","user":"` + uuid.NewString() + `"}`
		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars", body, ownerID, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.Car
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, car.ID, got.ID)
		assert.Equal(t, ownerID, got.UserID)
	})

	t.Run("missing fields", func(t *testing.T) {
		h, _ := newCarHandler(t)

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars", `{"model":"Sedan"}`, ownerID, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing required fields: price, year, fuelType, transmission")
	})

	t.Run("whole-number float year", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().CreateCar(mock.Anything, ownerID, mock.MatchedBy(func(in usecase.CreateCarInput) bool {
			return in.Year != nil && *in.Year == 2020
		})).Return(sampleCar(ownerID), nil)

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars",
			`{"model":"Sedan","price":1,"year":2020.0,"fuelType":"Petrol","transmission":"Manual"}`, ownerID, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("fractional year", func(t *testing.T) {
		h, _ := newCarHandler(t)

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars",
			`{"model":"Sedan","price":1,"year":2020.5,"fuelType":"Petrol","transmission":"Manual"}`, ownerID, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "year must be a whole number")
	})

	t.Run("too many images", func(t *testing.T) {
		h, _ := newCarHandler(t)
		images := `["` + strings.Repeat(`a","`, 10) + `a"]`

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars",
			`{"model":"Sedan","price":1,"year":2020,"fuelType":"Petrol","transmission":"Manual","images":`+images+`}`, ownerID, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "images exceeds the limit of 10 items")
	})

	t.Run("no authenticated user", func(t *testing.T) {
		h, _ := newCarHandler(t)

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars", `{}`, uuid.Nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"User not authenticated","code":"USER_NOT_AUTHENTICATED"}`, rec.Body.String())
	})

	t.Run("unexpected error becomes 500", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().CreateCar(mock.Anything, ownerID, mock.Anything).Return(nil, errors.New("boom"))

		rec := serve(newTestEcho(), h.CreateCar, http.MethodPost, "/api/cars",
			`{"model":"Sedan","price":1,"year":2020,"fuelType":"Petrol","transmission":"Manual"}`, ownerID, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Server Error","code":"INTERNAL_ERROR"}`, rec.Body.String())
	})
}

func TestCarHandler_ListCars(t *testing.T) {
	ownerID := uuid.New()

	t.Run("empty list is an array", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().ListCars(mock.Anything, ownerID).Return(nil, nil)

		rec := serve(newTestEcho(), h.ListCars, http.MethodGet, "/api/cars", "", ownerID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("returns cars", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().ListCars(mock.Anything, ownerID).Return([]*entity.Car{sampleCar(ownerID), sampleCar(ownerID)}, nil)

		rec := serve(newTestEcho(), h.ListCars, http.MethodGet, "/api/cars", "", ownerID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var cars []entity.Car
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
		assert.Len(t, cars, 2)
	})
}

func TestCarHandler_GetCar(t *testing.T) {
	ownerID := uuid.New()

	t.Run("found", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		car := sampleCar(ownerID)
		carUC.EXPECT().GetCar(mock.Anything, ownerID, car.ID).Return(car, nil)

		rec := serve(newTestEcho(), h.GetCar, http.MethodGet, "/api/cars/"+car.ID.String(), "", ownerID,
			map[string]string{"id": car.ID.String()})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Car details retrieved successfully"`)
		assert.Contains(t, rec.Body.String(), car.ID.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carID := uuid.New()
		carUC.EXPECT().GetCar(mock.Anything, ownerID, carID).Return(nil, domainerrors.ErrCarNotFound)

		rec := serve(newTestEcho(), h.GetCar, http.MethodGet, "/api/cars/"+carID.String(), "", ownerID,
			map[string]string{"id": carID.String()})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Car not found or you don't have permission to view it","code":"CAR_NOT_FOUND"}`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newCarHandler(t)

		rec := serve(newTestEcho(), h.GetCar, http.MethodGet, "/api/cars/abc", "", ownerID,
			map[string]string{"id": "abc"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CAR_ID")
	})
}

func TestCarHandler_UpdateCar(t *testing.T) {
	ownerID := uuid.New()
	carID := uuid.New()
	params := map[string]string{"id": carID.String()}

	t.Run("partial update", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		updated := sampleCar(ownerID)
		updated.ID = carID
		updated.Price = 18000
		carUC.EXPECT().UpdateCar(mock.Anything, ownerID, carID, mock.MatchedBy(func(p entity.CarPatch) bool {
			return p.Price != nil && *p.Price == 18000 && p.Model == nil && p.Images == nil
		})).Return(updated, nil)

		rec := serve(newTestEcho(), h.UpdateCar, http.MethodPatch, "/api/cars/"+carID.String(), `{"price":18000}`, ownerID, params)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"price":18000`)
	})

	t.Run("empty images replaces the list", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().UpdateCar(mock.Anything, ownerID, carID, mock.MatchedBy(func(p entity.CarPatch) bool {
			return p.Images != nil && len(*p.Images) == 0
		})).Return(sampleCar(ownerID), nil)

		rec := serve(newTestEcho(), h.UpdateCar, http.MethodPatch, "/api/cars/"+carID.String(), `{"images":[]}`, ownerID, params)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("year patch", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().UpdateCar(mock.Anything, ownerID, carID, mock.MatchedBy(func(p entity.CarPatch) bool {
			return p.Year != nil && *p.Year == 2019 && p.Price == nil
		})).Return(sampleCar(ownerID), nil)

		rec := serve(newTestEcho(), h.UpdateCar, http.MethodPatch, "/api/cars/"+carID.String(), `{"year":2019.0}`, ownerID, params)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fractional year patch", func(t *testing.T) {
		h, _ := newCarHandler(t)

		rec := serve(newTestEcho(), h.UpdateCar, http.MethodPatch, "/api/cars/"+carID.String(), `{"year":1999.9}`, ownerID, params)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "year must be a whole number")
	})

	t.Run("not owned", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().UpdateCar(mock.Anything, ownerID, carID, mock.Anything).Return(nil, domainerrors.ErrCarNotFound)

		rec := serve(newTestEcho(), h.UpdateCar, http.MethodPatch, "/api/cars/"+carID.String(), `{"price":1}`, ownerID, params)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCarHandler_DeleteCar(t *testing.T) {
	ownerID := uuid.New()
	carID := uuid.New()
	params := map[string]string{"id": carID.String()}

	t.Run("deleted", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().DeleteCar(mock.Anything, ownerID, carID).Return(nil)

		rec := serve(newTestEcho(), h.DeleteCar, http.MethodDelete, "/api/cars/"+carID.String(), "", ownerID, params)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"msg":"Car deleted"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, carUC := newCarHandler(t)
		carUC.EXPECT().DeleteCar(mock.Anything, ownerID, carID).Return(domainerrors.ErrCarNotFound)

		rec := serve(newTestEcho(), h.DeleteCar, http.MethodDelete, "/api/cars/"+carID.String(), "", ownerID, params)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandlers(t *testing.T) {
	e := newTestEcho()

	rec := serve(e, Root, http.MethodGet, "/", "", uuid.Nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Car Management API", rec.Body.String())

	rec = serve(e, HealthCheck, http.MethodGet, "/health", "", uuid.Nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWholeYear(t *testing.T) {
	got, err := wholeYear(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	year := 2020.0
	got, err = wholeYear(&year)
	require.NoError(t, err)
	assert.Equal(t, 2020, *got)

	for _, bad := range []float64{2020.25, 1e12} {
		_, err = wholeYear(&bad)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}
