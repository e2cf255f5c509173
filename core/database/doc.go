// Package database handles connections to the cheater registry and report
// stores.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures the connection based on the application's configuration.
//
// # Drivers
//
// Two drivers are supported, selected by the Driver config field:
//   - sqlite: a local database file (the default, matching the original
//     file-based stores)
//   - mysql: a shared server deployment
//
// # Connect
//
// The generic Connect function establishes a connection, applies pool
// settings, and verifies it with a ping before returning.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
