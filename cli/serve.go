package cli

import (
	"context"
	"daily-journal/config"
	"daily-journal/config/setup"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal commands over local HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if *dbPath != "" {
				cfg.Database.Path = *dbPath
			}

			logger := setup.NewLogger(cfg, os.Stdout)
			slog.SetDefault(logger)

			db, err := setup.InitDatabase(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			application, err := setup.InitApp(db, cfg, logger)
			if err != nil {
				db.Close()
				return err
			}
			defer setup.Shutdown(application, logger)

			fiberApp := setup.NewFiberApp(cfg, logger)
			setup.ApplyMiddleware(fiberApp, cfg, logger)
			setup.RegisterRoutes(fiberApp, application)

			logger.Info("starting server", "addr", cfg.Addr(), "env", cfg.Env)

			errCh := make(chan error, 1)
			go func() {
				errCh <- fiberApp.Listen(cfg.Addr())
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				logger.Error("server failed", "error", err)
				return err
			case <-quit:
			}

			logger.Info("shutting down server gracefully")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := fiberApp.ShutdownWithContext(ctx); err != nil {
				logger.Error("server forced to shutdown", "error", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}
}
