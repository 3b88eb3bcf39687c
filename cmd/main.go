package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jvdberg/go-api-base/container"
	"github.com/jvdberg/go-api-base/database"
	"github.com/jvdberg/go-api-base/migration"
	"github.com/jvdberg/go-api-base/migration/versions"
	"github.com/jvdberg/go-api-base/settings"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	// Add graceful shutdown support by listening for interruptions
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	settings := settings.New()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(filepath.Dir(settings.DatabasePath), 0o755); err != nil {
		return errors.Join(errors.New("create data dir failed"), err)
	}

	db, err := database.New(settings.DatabasePath)
	if err != nil {
		return errors.Join(errors.New("opening database failed"), err)
	}
	defer db.Close()

	migrator := migration.NewMigrator(db)
	if err := migrator.Up(ctx, []migration.Migration{
		versions.NewMigrationCreateTables(settings.AdminEmail, settings.AdminPassword),
	}); err != nil {
		return errors.Join(errors.New("migration up failed"), err)
	}

	container := container.New(settings, logger, db)

	// Sessions expire lazily, purge the leftovers from previous runs once at boot
	if purged, err := container.SessionStore.DeleteExpiredBefore(ctx, time.Now().UTC().Unix()); err != nil {
		logger.Warn("purging expired sessions failed", slog.String("error", err.Error()))
	} else if purged > 0 {
		logger.Info("purged expired sessions", slog.Int64("count", purged))
	}

	// Serve app
	srvErr := make(chan error, 1)
	go func() {
		logger.Info("listening and serving",
			slog.String("addr", fmt.Sprintf(":%d", settings.Port)),
			slog.String("environment", settings.Environment.String()),
		)
		srvErr <- container.App.Listen(fmt.Sprintf(":%d", settings.Port))
	}()

	// Wait for interruption.
	select {
	case err := <-srvErr:
		// Error when starting HTTP server.
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := container.App.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}

		logger.Info("shutdown completed")
	}

	return nil
}
