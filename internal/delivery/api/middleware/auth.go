package middleware

import (
	"strings"

	deliverycontext "carhub/internal/delivery/context"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	authorizationHeader = "Authorization"
	bearerScheme        = "Bearer"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid "Bearer <token>" header and stores the caller's id on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(authorizationHeader))
		if !ok {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		// Set user info on the request context for handlers and services to use
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", claims.UserID.String()))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user id stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserIDFromContext(c.Request().Context())
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme {
		return "", false
	}

	token := strings.TrimSpace(parts[1])

	return token, token != ""
}
