// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Configuration is split into partial configs owned by the packages they
// configure (logger, database, storage) plus the source locations and the
// HTTP serve settings defined here.
//
// # Defaults
//
// Default values are declared as `default:` struct tags and bound into Viper
// by reflection, so every key is registered for AutomaticEnv even when unset.
//
// # Environment mapping
//
// Nested keys map to underscore-separated environment variables:
//
//	sources.client_path -> SOURCES_CLIENT_PATH
//	database.driver     -> DATABASE_DRIVER
//
// The requested reconciliation date is deliberately not part of the
// configuration; it is a per-run value passed on the command line.
package config
