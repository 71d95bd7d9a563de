package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the migrations in the migrations directory to DATABASE_URL.
With --down every migration is rolled back instead.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

var (
	migrationsPath string
	migrateDown    bool
)

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrationsPath, "path", "migrations", "directory holding the migration files")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back all migrations")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "connecting to database...")
	m, err := migrate.New("file://"+migrationsPath, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	defer m.Close()

	if migrateDown {
		fmt.Fprintln(out, "rolling back migrations...")
		err = m.Down()
	} else {
		fmt.Fprintln(out, "running migrations...")
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		v, _, _ := m.Version()
		fmt.Fprintf(out, "no changes (current version: %d)\n", v)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	v, dirty, verr := m.Version()
	if errors.Is(verr, migrate.ErrNilVersion) {
		fmt.Fprintln(out, "all migrations rolled back")
		return nil
	}
	fmt.Fprintf(out, "migrations applied (version: %d, dirty: %v)\n", v, dirty)
	return nil
}
