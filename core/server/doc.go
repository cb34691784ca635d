// Package server holds the HTTP server configuration.
//
// The serve command exposes the favorites feature over HTTP. This package only
// defines the listen port and the API key checked by the auth middleware.
package server
