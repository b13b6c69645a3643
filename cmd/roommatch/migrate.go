package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/roommatch/internal/config"
	dbPostgres "github.com/kailas-cloud/roommatch/internal/db/postgres"
	logpkg "github.com/kailas-cloud/roommatch/internal/logger"
	"github.com/kailas-cloud/roommatch/migrations"
)

func newMigrateCmd(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context(), *env)
		},
	}
}

func runMigrate(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	pg, err := dbPostgres.Open(dbPostgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer pg.Close()
	if err := pg.WaitForReady(ctx, time.Duration(cfg.Postgres.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("postgres not ready: %w", err)
	}

	applied, err := dbPostgres.Migrate(ctx, pg, migrations.FS)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Migrations applied", zap.Strings("applied", applied))
	return nil
}
