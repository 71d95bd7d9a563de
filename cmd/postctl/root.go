package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/plentylife/mattermost-redux/internal/config"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
)

// cfg is loaded before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "postctl",
	Short: "Prepare channel post lists and check post permissions",
	Long: `postctl merges runs of join, leave, add and remove messages into
combined activity posts and works out which posts a user may edit or delete.

Environment:
  DATABASE_URL          PostgreSQL connection string (view, seed, migrate)
  REDIS_URL             Redis URL for the preference cache (optional)
  LOG_LEVEL             debug, info, warn or error
  POST_CONFIG_FILE      YAML file with server version, license and post settings
  SERVER_VERSION        overrides server_version
  IS_LICENSED           overrides license.is_licensed
  RESTRICT_POST_DELETE  all, team_admin or system_admin
  ALLOW_EDIT_POST       always, never or time_limit
  POST_EDIT_TIME_LIMIT  seconds, -1 for no limit`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel})))
		return nil
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
