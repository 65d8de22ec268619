// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFiles holds secrets read from files named by *_FILE variables, as
// mounted by Docker or Kubernetes secrets.
type secretFiles struct {
	AccessTokenSignKey  string `env:"AUTH_ACCESS_TOKEN_SIGN_KEY_FILE,file"`
	RefreshTokenSignKey string `env:"AUTH_REFRESH_TOKEN_SIGN_KEY_FILE,file"`
	DSN                 string `env:"STORAGE_DB_DATABASE_URI_FILE,file"`
	SMTPPassword        string `env:"NOTIFIER_SMTP_PASSWORD_FILE,file"`
	WebhookToken        string `env:"NOTIFIER_WEBHOOK_TOKEN_FILE,file"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Secrets may also be given as files through the matching *_FILE variable.
// A value set directly in the environment wins over its file.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var files secretFiles
	if err := env.Parse(&files); err != nil {
		return fmt.Errorf("error reading secret files: %w", err)
	}

	setIfEmpty(&cfg.Auth.AccessTokenSignKey, files.AccessTokenSignKey)
	setIfEmpty(&cfg.Auth.RefreshTokenSignKey, files.RefreshTokenSignKey)
	setIfEmpty(&cfg.Storage.DB.DSN, files.DSN)
	setIfEmpty(&cfg.Notifier.SMTP.Password, files.SMTPPassword)
	setIfEmpty(&cfg.Notifier.Webhook.Token, files.WebhookToken)

	return nil
}

// setIfEmpty stores the trimmed secret in dst unless dst is already set.
// Files usually end with a newline.
func setIfEmpty(dst *string, secret string) {
	if *dst == "" {
		*dst = strings.TrimSpace(secret)
	}
}
