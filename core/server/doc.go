// Package server holds the HTTP server configuration.
//
// While the cmd package handles server startup, this package defines the
// configuration structures for both processes shipped by the binary:
//
//   - Config: the frontend app server (port, base path, UI locale, mount anchor).
//   - APIConfig: the backend API server (port, API key, upload limit).
//
// # Usage
//
// This package is primarily used by core/config to embed server settings and by
// the start/backend commands to bind listeners.
package server
