// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

// PendingUserPurger periodically deletes registrations whose activation
// window has closed. Their email address becomes free again even if
// nobody registers it anew.
type PendingUserPurger struct {
	users    store.UserRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewPendingUserPurger(users store.UserRepository, interval time.Duration, logger *logger.Logger) *PendingUserPurger {
	return &PendingUserPurger{
		users:    users,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run purges once per interval until ctx is cancelled. A failed purge is
// logged and retried on the next tick.
func (p *PendingUserPurger) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Msg("pending user purger started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("pending user purger stopped")
			return nil
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *PendingUserPurger) purge(ctx context.Context) {
	deleted, err := p.users.DeleteExpiredPendingUsers(ctx, p.now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Err(err).Str("func", "PendingUserPurger.purge").Msg("error purging expired pending users")
		return
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Msg("expired pending users purged")
	}
}
