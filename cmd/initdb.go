package cmd

import (
	"fmt"

	"event-reconciler/core/config"
	"event-reconciler/core/database"
	"event-reconciler/core/logger"
	"event-reconciler/feature/report"

	"github.com/spf13/cobra"
)

// initdbCmd creates the report table in the output store.
var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the report table if it does not exist",
	Long: `Create the report table in the configured output store.

Safe to run repeatedly: existing tables and rows are never dropped or altered.`,
	RunE: runInitDB,
}

func init() {
	RootCmd.AddCommand(initdbCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := report.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to create report table: %w", err)
	}

	l.Info("Report table ready")
	return nil
}
