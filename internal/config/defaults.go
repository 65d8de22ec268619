package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:         "debug",
			PublicURL:        "http://localhost:8080",
			ActivationWindow: 24 * time.Hour,
			BcryptCost:       bcrypt.DefaultCost,
		},
		Auth: Auth{
			TokenIssuer:          "go-contact-keeper",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 30 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Notifier: Notifier{
			Timeout: 10 * time.Second,
			From:    "go-contact-keeper <no-reply@localhost>",
			SMTP: SMTP{
				Port: 587,
				TLS:  "mandatory",
			},
		},
		Workers: Workers{
			PurgeInterval: time.Hour,
		},
	}
}
