// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Auth.AccessTokenSignKey == "" || cfg.Auth.RefreshTokenSignKey == "" {
		return fmt.Errorf("%w: both token sign keys are required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.AccessTokenSignKey == cfg.Auth.RefreshTokenSignKey {
		return fmt.Errorf("%w: access and refresh sign keys must differ", ErrInvalidAuthConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	switch cfg.Notifier.Transport {
	case "":
		return fmt.Errorf("%w: transport is required", ErrInvalidNotifierConfigs)
	case NotifierTransportLog:
	case NotifierTransportSMTP:
		if cfg.Notifier.SMTP.Host == "" {
			return fmt.Errorf("%w: smtp host is required", ErrInvalidNotifierConfigs)
		}
	case NotifierTransportWebhook:
		if cfg.Notifier.Webhook.URL == "" {
			return fmt.Errorf("%w: webhook url is required", ErrInvalidNotifierConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidNotifierConfigs, cfg.Notifier.Transport)
	}

	return nil
}
