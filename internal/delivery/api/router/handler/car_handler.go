package handler

import (
	"log/slog"
	"math"
	"net/http"

	"carhub/internal/delivery/api/middleware"
	"carhub/internal/delivery/api/response"
	"carhub/internal/delivery/api/validator"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CarHandlerParams holds dependencies for CarHandler, injected by Fx.
type CarHandlerParams struct {
	fx.In

	CarUC  usecase.CarUsecase
	Logger *slog.Logger
}

// CarHandler holds dependencies for car inventory handlers. Every route requires authentication.
type CarHandler struct {
	carUC  usecase.CarUsecase
	logger *slog.Logger
}

// NewCarHandler is the constructor for CarHandler
func NewCarHandler(params CarHandlerParams) *CarHandler {
	return &CarHandler{
		carUC:  params.CarUC,
		logger: params.Logger,
	}
}

// CreateCarRequest represents the request body for creating a car.
// Any owner supplied in the body is ignored; the owner is always the caller.
// Year decodes as a number so 2020.0 is accepted; fractional years are rejected.
type CreateCarRequest struct {
	Model        string   `json:"model" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	Year         *float64 `json:"year" validate:"required"`
	Mileage      *float64 `json:"mileage"`
	FuelType     string   `json:"fuelType" validate:"required"`
	Transmission string   `json:"transmission" validate:"required"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images" validate:"max=10"`
}

// UpdateCarRequest represents a partial update. Absent fields are left untouched.
type UpdateCarRequest struct {
	Model        *string   `json:"model"`
	Price        *float64  `json:"price"`
	Year         *float64  `json:"year"`
	Mileage      *float64  `json:"mileage"`
	FuelType     *string   `json:"fuelType"`
	Transmission *string   `json:"transmission"`
	Description  *string   `json:"description"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images" validate:"omitempty,max=10"`
}

// CreateCar handles car creation for the authenticated user.
func (h *CarHandler) CreateCar(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserNotAuthenticated)
	}

	var req CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
	}

	year, err := wholeYear(req.Year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	car, err := h.carUC.CreateCar(c.Request().Context(), userID, usecase.CreateCarInput{
		Model:        req.Model,
		Price:        req.Price,
		Year:         year,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Description:  req.Description,
		Features:     req.Features,
		Images:       req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, car)
}

// ListCars handles listing cars.
func (h *CarHandler) ListCars(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserNotAuthenticated)
	}

	cars, err := h.carUC.ListCars(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if cars == nil {
		cars = []*entity.Car{}
	}

	return response.Success(c, http.StatusOK, cars)
}

// GetCar handles fetching one car owned by the caller.
func (h *CarHandler) GetCar(c echo.Context) error {
	userID, carID, err := ownerAndCarID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	car, err := h.carUC.GetCar(c.Request().Context(), userID, carID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.CarDetailResponse{
		Message: "Car details retrieved successfully",
		Car:     car,
	})
}

// UpdateCar handles partial updates of a car owned by the caller.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	userID, carID, err := ownerAndCarID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
	}

	year, err := wholeYear(req.Year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	car, err := h.carUC.UpdateCar(c.Request().Context(), userID, carID, entity.CarPatch{
		Model:        req.Model,
		Price:        req.Price,
		Year:         year,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Description:  req.Description,
		Features:     req.Features,
		Images:       req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, car)
}

// DeleteCar handles deleting a car owned by the caller.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	userID, carID, err := ownerAndCarID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.carUC.DeleteCar(c.Request().Context(), userID, carID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.DeleteResponse{Msg: "Car deleted"})
}

func ownerAndCarID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUserNotAuthenticated
	}

	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidCarID
	}

	return userID, carID, nil
}

// wholeYear accepts any JSON number without a fractional part.
func wholeYear(year *float64) (*int, error) {
	if year == nil {
		return nil, nil
	}

	if math.Trunc(*year) != *year || math.Abs(*year) > math.MaxInt32 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("year must be a whole number")
	}

	whole := int(*year)

	return &whole, nil
}
