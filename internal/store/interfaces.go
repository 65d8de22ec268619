package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository persists user accounts. Lookups return [ErrNoUserWasFound]
// when nothing matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ActivateUser(ctx context.Context, userID string, now time.Time) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error
	DeleteExpiredPendingUsers(ctx context.Context, now time.Time) (int64, error)
}

// ContactRepository persists contacts and their addresses.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	CreateAddresses(ctx context.Context, contactID int64, addresses []models.Address) ([]models.Address, error)
}

// HealthChecker reports storage availability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
