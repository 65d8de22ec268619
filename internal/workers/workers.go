package workers

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.PurgeInterval > 0 {
		w.workers = append(w.workers, NewPendingUserPurger(storages.UserRepository, cfg.PurgeInterval, logger))
	} else {
		logger.Info().Msg("pending user purger is disabled")
	}

	return w
}

// Run starts every worker and blocks until all of them have stopped. The
// first worker error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
