// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "carhub/internal/delivery/context"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/repository"
	"carhub/internal/domain/service"
	"carhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	// placeholder is compared against when the email is unknown so both
	// login failures cost one hash comparison.
	placeholderOnce sync.Once
	placeholder     string
}

const placeholderPassword = "carhub-placeholder-password"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and returns a token for it.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.log(ctx).Warn("Signup rejected, user exists", slog.String("email", email))

			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	token, err := srv.issueToken(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies the credentials and returns a token.
// Unknown email and wrong password produce the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))
			srv.hasher.Check(input.Password, srv.placeholderHash(ctx))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *authService) placeholderHash(ctx context.Context) string {
	srv.placeholderOnce.Do(func() {
		hash, err := srv.hasher.Hash(placeholderPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash login placeholder", slog.Any("error", err))

			return
		}
		srv.placeholder = hash
	})

	return srv.placeholder
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenSignFailed, err.Error())
	}

	return token, nil
}
