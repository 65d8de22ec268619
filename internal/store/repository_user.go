package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/vinovest/sqlx"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Every method runs on the transaction carried by ctx when there is one.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a pending or active user and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(tableUsers).
		Columns("user_id", "name", "email", "password", "is_active", "expire_time").
		Values(user.UserID, user.Name, user.Email, user.Password, user.IsActive, user.ExpireTime).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	if err = sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email is already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.retryable(err)).Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail returns the user registered with email, active or not.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindActiveUserByEmail returns the user registered with email only if the
// account is activated.
func (r *userRepository) FindActiveUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindActiveUserByEmail", sq.Eq{"email": email, "is_active": true})
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(tableUsers).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", fn).Bool("retryable", r.retryable(err)).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ActivateUser flips a pending, unexpired user to active and clears its
// expiry in a single conditional UPDATE. Wrong id, already active and
// expired registrations all yield [ErrNoUserWasFound].
func (r *userRepository) ActivateUser(ctx context.Context, userID string, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(tableUsers).
		Set("is_active", true).
		Set("expire_time", nil).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID, "is_active": false}).
		Where(sq.GtOrEq{"expire_time": now}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.ActivateUser").Str("user_id", userID).Msg("error activating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by registration time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(tableUsers).
		OrderBy("created_at", "user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := make([]models.User, 0)
	if err = sqlx.SelectContext(ctx, r.executor(ctx), &users, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Bool("retryable", r.retryable(err)).Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// UpdateUser writes the non-nil fields of update and returns the stored row.
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.
		Update(tableUsers).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePassword replaces the stored password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query, args, err := r.builder.
		Update(tableUsers).
		Set("password", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingUser(ctx, "*userRepository.UpdatePassword", query, args)
}

// DeleteUser removes the user; contacts and addresses cascade.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	query, args, err := r.builder.
		Delete(tableUsers).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingUser(ctx, "*userRepository.DeleteUser", query, args)
}

// DeleteExpiredPendingUsers removes registrations whose activation window
// closed before now and returns how many were removed.
func (r *userRepository) DeleteExpiredPendingUsers(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(tableUsers).
		Where(sq.Eq{"is_active": false}).
		Where(sq.Lt{"expire_time": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteExpiredPendingUsers").Bool("retryable", r.retryable(err)).Msg("error deleting expired users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}

func (r *userRepository) execAffectingUser(ctx context.Context, fn string, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Bool("retryable", r.retryable(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
