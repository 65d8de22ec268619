// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: serving until the run context is
// cancelled, then shutting down gracefully within the configured timeout.
package server
