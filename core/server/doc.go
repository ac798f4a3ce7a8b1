// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure for it.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting the admin
// surface, and the shared secret validated on webhook calls.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go when wiring middleware.
package server
