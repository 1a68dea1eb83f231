package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/expohub/expohub/internal/infrastructure/migration"
	httpRouter "github.com/expohub/expohub/internal/interfaces/http"
	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/shared/constants"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
	noScheduler        bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the ExpoHub HTTP API together with the background job scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip the migration version check on startup")
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "Do not run background jobs in this process")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap.Load(env)
	if err != nil {
		return err
	}
	defer e.Close()

	log := e.Log
	log.Infow("starting server",
		"environment", e.Name,
		"auto_migrate", autoMigrate,
		"scheduler", !noScheduler)

	if gin.Mode() != gin.DebugMode {
		gin.DefaultWriter = io.Discard
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handleMigrations(ctx, e); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(ctx, e.DB, e.Config, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := router.Shutdown(); err != nil {
			log.Errorw("failed to release container resources", "error", err)
		}
	}()
	router.SetupRoutes()
	if !noScheduler {
		router.StartScheduler()
	}

	srv := &http.Server{
		Addr:         e.Config.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", srv.Addr, "mode", e.Config.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, e *bootstrap.Env) error {
	if autoMigrate {
		if e.Name == constants.EnvProduction {
			e.Log.Warnw("auto-migration is enabled in production")
		}
		manager := migration.NewManager(e.Name, e.Config.Database.Driver, e.Log)
		if err := manager.Migrate(ctx, e.DB); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	if skipMigrationCheck {
		e.Log.Infow("skipping migration check")
		return nil
	}

	strategy := migration.NewGooseStrategy(e.Config.Database.Driver, e.Log)
	version, err := strategy.Version(ctx, e.DB)
	if err != nil {
		e.Log.Warnw("failed to check migration version", "error", err)
		return nil
	}
	e.Log.Infow("current migration version", "version", version)
	return nil
}
