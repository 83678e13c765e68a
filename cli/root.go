// Package cli exposes the journal commands on the command line.
package cli

import (
	"context"
	"daily-journal/app"
	"daily-journal/config"
	"daily-journal/config/setup"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the journal command tree. Subcommands load configuration
// and open the database lazily, so `help` never touches the store.
func NewRootCmd() *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:           "journal",
		Short:         "Local-first daily journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path to the journal database (overrides DB_PATH)")

	open := func(ctx context.Context) (*app.App, *slog.Logger, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}

		logger := setup.NewLogger(cfg, os.Stderr)
		slog.SetDefault(logger)

		db, err := setup.InitDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		application, err := setup.InitApp(db, cfg, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return application, logger, nil
	}

	root.AddCommand(
		newServeCmd(&dbPath),
		newNotesCmd(open),
		newUsersCmd(open),
		newVersionCmd(),
	)
	return root
}

type opener func(ctx context.Context) (*app.App, *slog.Logger, error)

// withApp opens the application for the duration of fn.
func withApp(cmd *cobra.Command, open opener, fn func(a *app.App) error) error {
	a, logger, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer setup.Shutdown(a, logger)

	return fn(a)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
