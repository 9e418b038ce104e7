package postgres

import (
	"context"
	"log/slog"

	"carhub/config"
	"carhub/internal/domain/lifecycle"
	"carhub/internal/errors"
	"carhub/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement, so the implicit transaction is never needed.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migration.Auto {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.InfoContext(ctx, "Database schema migrated")
			}

			go newPoolWatcher(params.Logger, sqlDB.Stats).run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the users and cars tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.CarModel{}); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
