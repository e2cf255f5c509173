package cmd

import (
	"context"
	"fmt"

	"event-reconciler/core/config"
	"event-reconciler/core/database"
	"event-reconciler/core/logger"
	"event-reconciler/core/storage"
	"event-reconciler/feature/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportDate string

// reportCmd runs the daily reconciliation pipeline for a single day.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reconcile client and server error events for one day",
	Long: `Reconcile client- and server-reported error events for a single day.

Loads both event CSVs, restricts them to the requested day, joins them on
error_id, drops events of players banned before the event's server-side day,
and appends the survivors to the report table.

Examples:
  # Reconcile January 5th 2021
  event-reconciler report --date 05.01.2021`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Day to reconcile, format DD.MM.YYYY")
	_ = reportCmd.MarkFlagRequired("date")

	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	day, err := report.ParseDay(reportDate)
	if err != nil {
		return fmt.Errorf("invalid --date value: %w", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	l.Info("Starting daily reconciliation", zap.String("date", reportDate))

	// Connect to the registry/report database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Object storage is only needed when a source uses the s3:// scheme
	var store storage.Client
	if report.IsObjectPath(cfg.Sources.ClientPath) || report.IsObjectPath(cfg.Sources.ServerPath) {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	svc := report.NewService(l, db, store)

	summary, err := svc.Run(ctx, cfg.Sources.ClientPath, cfg.Sources.ServerPath, day)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	l.Info("Reconciliation complete",
		zap.Int("client_events", summary.ClientEvents),
		zap.Int("server_events", summary.ServerEvents),
		zap.Int("joined", summary.Joined),
		zap.Int("excluded", summary.Excluded),
		zap.Int("written", summary.Written),
	)

	return nil
}
