// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings so that core/config
// can embed it alongside the other sections.
//
// # Configuration
//
// The Config struct defines the HTTP port and the API key protecting the
// mutating endpoints.
package server
