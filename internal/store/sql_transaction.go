package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/vinovest/sqlx"
)

type txCtxKey struct{}

// WithinTransaction runs fn inside a database transaction. The transaction
// is carried by the context passed to fn, so every repository call made with
// that context joins it. fn returning an error or panicking rolls the
// transaction back; a panic is re-raised after rollback. A nested call joins
// the outer transaction.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Bool("retryable", db.retryable(err)).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*DB.WithinTransaction").Msg("error rolling back transaction")
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).Str("func", "*DB.WithinTransaction").Bool("retryable", db.retryable(commitErr)).Msg("error committing transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(context.WithValue(ctx, txCtxKey{}, tx))
}

// executor returns the transaction carried by ctx or the pool.
func (db *DB) executor(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db.DB
}
