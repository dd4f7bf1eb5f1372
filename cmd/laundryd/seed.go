package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"laundry-finder-backend/config"
	"laundry-finder-backend/internal/db"
	"laundry-finder-backend/internal/fixture"
	"laundry-finder-backend/internal/store"
)

func seedCmd() *cobra.Command {
	var fixturesPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write fixture shops into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), newLogger(), fixturesPath)
		},
	}
	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "fixture YAML file (default: fixtures.path from config, then built-in)")
	return cmd
}

func seed(ctx context.Context, logger *log.Logger, fixturesPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	if fixturesPath == "" {
		fixturesPath = cfg.Fixtures.Path
	}

	fixtures, err := fixture.Resolve(fixturesPath)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := store.NewGormStore(gormDB).SaveShops(ctx, fixtures.Shops); err != nil {
		return err
	}
	logger.Printf("seeded %d shops", len(fixtures.Shops))
	return nil
}
