package impl

import (
	"io"
	"log/slog"

	"carhub/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(listScope string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Cars: &config.CarsConfig{ListScope: listScope},
	}
}

func ptr[T any](v T) *T {
	return &v
}
