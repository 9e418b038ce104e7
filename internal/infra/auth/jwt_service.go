package auth

import (
	"time"

	"carhub/config"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/service"
	"carhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = time.Hour

// ErrMissingSecret is returned at construction when no signing secret is configured.
var ErrMissingSecret = errors.New("jwt secret must be provided (secretKey.access / SECRETKEY_ACCESS)")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Secret key for signing access tokens.
	ttl    time.Duration    // Time-to-live for access tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It refuses to build a service without a secret so the process fails at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    now,
	}, nil
}

// GenerateToken creates a signed access token for userID.
func (s *jwtService) GenerateToken(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies the signature, algorithm and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token carries no user id")
	}

	return claims, nil
}
