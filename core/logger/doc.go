// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber serve surface.
//
// # Correlation
//
// Two helpers attach correlation fields to a logger:
//   - WithRunID tags every entry of one batch reconciliation run.
//   - WithRayID extracts the RayID from a Fiber context so all logs of a
//     request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Reconciliation started")
//
//	// In a batch run:
//	l := logger.WithRunID(log, uuid.NewString())
//	l.Error("Load failed", zap.Error(err))
package logger
