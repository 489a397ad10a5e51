package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/culturiq/engine/internal/config"
	"github.com/culturiq/engine/internal/infrastructure/database/postgres"
)

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&migrationsPath, "migrations", "file://migrations", "migration source URL")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := databaseURL(opts)
			if err != nil {
				return err
			}
			if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}

	down := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default one step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				if _, err := fmt.Sscanf(args[0], "%d", &steps); err != nil {
					return fmt.Errorf("invalid step count %q", args[0])
				}
			}
			dbURL, err := databaseURL(opts)
			if err != nil {
				return err
			}
			if err := postgres.RollbackMigration(dbURL, migrationsPath, steps); err != nil {
				return err
			}
			cmd.Printf("rolled back %d step(s)\n", steps)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := databaseURL(opts)
			if err != nil {
				return err
			}
			version, dirty, err := postgres.MigrationStatus(dbURL, migrationsPath)
			if err != nil {
				return err
			}
			if opts.JSONOutput {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"version": version,
					"dirty":   dirty,
				})
			}
			cmd.Printf("version: %d  dirty: %t\n", version, dirty)
			return nil
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

// databaseURL builds a postgres:// URL for golang-migrate from the loaded
// configuration.
func databaseURL(opts *RootOptions) (string, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}
	return buildDatabaseURL(cfg.Database), nil
}

func buildDatabaseURL(db config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.DBName,
	}
	q := u.Query()
	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}
