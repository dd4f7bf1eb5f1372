package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"laundry-finder-backend/config"
	"laundry-finder-backend/internal/api"
	"laundry-finder-backend/internal/db"
	"laundry-finder-backend/internal/directory"
	"laundry-finder-backend/internal/fixture"
	"laundry-finder-backend/internal/notify"
	"laundry-finder-backend/internal/source"
	"laundry-finder-backend/internal/store"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(newLogger())
		},
	}
}

func serve(logger *log.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	fixtures, err := fixture.Resolve(cfg.Fixtures.Path)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := directory.New(src, directory.Options{
		RefreshDelay: cfg.Directory.RefreshDelay,
		Interval:     cfg.Directory.RefreshInterval,
	})
	if src == nil {
		dir.Load(fixtures.Shops)
		logger.Printf("directory loaded with %d fixture shops", len(fixtures.Shops))
	} else {
		shops, err := src.FetchShops(ctx)
		if err != nil {
			// Start empty; the periodic or manual refresh can fill it later.
			logger.Printf("initial shop fetch failed: %v", err)
		} else {
			dir.Load(shops)
			logger.Printf("directory loaded with %d shops from %s", len(shops), cfg.Directory.Source)
		}
	}

	notes := notify.NewStore()
	for _, e := range fixtures.Notifications {
		if _, err := notes.Add(e); err != nil {
			logger.Printf("skipping seeded notification: %v", err)
		}
	}

	go dir.Run(ctx)

	router := api.NewRouter(dir, notes, cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Println("Shutdown signal received, stopping services...")
	case err := <-serverErr:
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	logger.Println("Server gracefully stopped")
	return nil
}

// buildSource returns the configured shop source, or nil when shops come from fixtures.
func buildSource(cfg *config.Config) (directory.Source, error) {
	switch cfg.Directory.Source {
	case config.SourceDatabase:
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store.NewGormStore(gormDB), nil
	case config.SourceHTTP:
		if cfg.Source.URL == "" {
			return nil, errors.New("source.url must be set when directory.source is http")
		}
		return source.NewHTTPSource(cfg.Source), nil
	default:
		return nil, nil
	}
}
