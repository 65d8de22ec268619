package service

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, notifier adapter.Notifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewDataValidator()
	tokens := NewTokenService(cfg.Auth, logger)

	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		UserService:    NewUserService(storages.UserRepository, storages.Transactor, notifier, tokens, validator, cfg.App, logger),
		ContactService: NewContactService(storages.ContactRepository, storages.Transactor, validator, logger),
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
