package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails, then shuts down gracefully. It blocks until shutdown is done.
	RunServer(ctx context.Context) error
}
