package main

import (
	"fmt"
	"os"

	"fleet-admin/internal/config"
	"fleet-admin/internal/database"

	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	seedsDir      string
	withSeeds     bool
	downSteps     int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeDB, err := openRunner()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := runner.WaitForDatabase(); err != nil {
			return fmt.Errorf("database not ready: %w", err)
		}
		if err := runner.RunMigrations(); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		if withSeeds {
			if err := os.Setenv("SEED_DATABASE", "true"); err != nil {
				return fmt.Errorf("enable seeds: %w", err)
			}
			if err := runner.LoadSeeds(); err != nil {
				return fmt.Errorf("load seeds: %w", err)
			}
		}

		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeDB, err := openRunner()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := runner.Rollback(downSteps); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d step(s)\n", downSteps)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeDB, err := openRunner()
		if err != nil {
			return err
		}
		defer closeDB()

		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "migrations", "db/migrations", "migrations directory")
	migrateCmd.PersistentFlags().StringVar(&seedsDir, "seeds", "db/seeds", "seed files directory")
	migrateUpCmd.Flags().BoolVar(&withSeeds, "seed", false, "load seed files after migrating")
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func openRunner() (*database.MigrationRunner, func(), error) {
	cfg := config.Load()
	newLogger(cfg)

	sqlDB, err := database.OpenSQL(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB).WithPaths(migrationsDir, seedsDir)
	return runner, func() { _ = sqlDB.Close() }, nil
}
