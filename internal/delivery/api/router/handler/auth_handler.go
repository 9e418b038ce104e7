// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"carhub/internal/delivery/api/response"
	"carhub/internal/delivery/api/validator"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for logging in.
// Missing fields are reported as invalid credentials by the usecase.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles account creation.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrMissingFields.WithDetails(validator.Describe(err)))
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.TokenResponse{Token: output.Token})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.TokenResponse{Token: output.Token})
}

// Logout acknowledges a logout. Tokens are stateless, so nothing is revoked.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.MessageResponse{Message: "Logged out successfully"})
}
