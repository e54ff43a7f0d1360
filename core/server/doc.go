// Package server holds the HTTP inspection API configuration.
//
// While cmd/start handles the server startup, this package defines the configuration
// structure for the listen port, API key and shutdown bound.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
