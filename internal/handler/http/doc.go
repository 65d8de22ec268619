// Package http implements the REST transport of the contact keeper.
//
// It wires routes, request handlers and middleware. Every JSON response is
// written as a [models.Response] envelope. Authentication, request tracing,
// access logging, panic recovery, CORS and compression are handled here
// before requests reach the service layer.
package http
