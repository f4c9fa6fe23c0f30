// Package server holds the HTTP server configuration.
//
// The serve command uses it to pick the listen address and the API key that
// protects every route except the Swagger UI.
package server
