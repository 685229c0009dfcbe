// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the configuration structure for server settings such as the listen port
// and the request body size cap used for icon uploads.
//
// This package is primarily used by the core/config package to embed server
// settings.
package server
