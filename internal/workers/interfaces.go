// Package workers runs background jobs of the server process.
//
// It defines the Worker interface and a Workers aggregate that runs all
// workers until their shared context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and
// returns nil on a regular stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
