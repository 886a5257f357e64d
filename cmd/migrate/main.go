// Command migrate creates or updates the schema, including the delivery
// dedup unique index, from the persistence models.
package main

import (
	"context"
	"log/slog"
	"os"

	"workgroup/config"
	logs "workgroup/internal/infra/log"
	"workgroup/internal/infra/persistence/model"
	"workgroup/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Shutdown after migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}

	logger.Info("Schema migrated", slog.Int("models", len(models)))

	return nil
}
