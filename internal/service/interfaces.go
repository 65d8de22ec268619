package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService covers the account lifecycle: registration, activation,
// authentication and administration of users.
//
// Methods taking raw input validate it first and return a
// *validators.Error listing every violation when it does not pass.
type UserService interface {
	Register(ctx context.Context, input map[string]any) (models.Registration, error)
	Activate(ctx context.Context, userID string) (models.ActivatedUser, error)
	Login(ctx context.Context, input map[string]any) (models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, input map[string]any) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, input map[string]any) error
}

// ContactService stores contacts with their addresses.
type ContactService interface {
	// CreateContact validates input, then persists the contact owned by
	// userID and every address it carries, all or nothing.
	CreateContact(ctx context.Context, userID string, input map[string]any) (models.Contact, error)
}

// TokenService issues and verifies access and refresh tokens.
type TokenService interface {
	IssuePair(ctx context.Context, identity models.Identity) (models.Session, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	ParseRefreshToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information and service health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}
