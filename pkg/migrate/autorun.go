package migrate

import (
	"context"
	"fmt"

	"github.com/salescampus/salescampus-backend/pkg/config"
	"github.com/salescampus/salescampus-backend/pkg/db"
	"github.com/salescampus/salescampus-backend/pkg/logger"
)

// MaybeRunDev brings the schema up on boot, but only in dev and only when
// the auto-migrate flag is set. Production deploys run the migrate binary
// explicitly.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "migrate.auto.start")
	if err := Run(ctx, sqlDB, cfg.Storage.Driver, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "migrate.auto.done")
	return nil
}
