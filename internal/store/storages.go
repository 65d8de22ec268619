package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages aggregates every repository backed by one PostgreSQL pool.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	Transactor        Transactor
	HealthChecker     HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Msg("database migrations applied")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ContactRepository: NewContactRepository(db, log),
		Transactor:        db,
		HealthChecker:     db,
		db:                db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
