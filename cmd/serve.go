package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"event-reconciler/core/config"
	"event-reconciler/core/database"
	"event-reconciler/core/logger"
	"event-reconciler/core/middleware/auth"
	"event-reconciler/core/middleware/rayid"
	"event-reconciler/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd starts the read-only HTTP view over persisted reports.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve persisted reconciliation reports over HTTP",
	Long:  `Starts an HTTP server exposing read-only queries over the report table.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the report store
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to report store", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Serve.ApiKey}))

		// 4. Routes
		handler := report.NewHandler(report.NewService(logg, db, nil))
		handler.RegisterRoutes(app)

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Serve.Port))
			if err := app.Listen(":" + cfg.Serve.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
