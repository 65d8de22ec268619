// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers the emails the go-contact-keeper server sends to
// its users: account activation links and regenerated passwords.
//
// [Notifier] decouples the service layer from the delivery transport. Three
// transports are available and selected by configuration: SMTP (go-mail), an
// HTTP webhook relay (resty) and a log-only transport for development.
// Message bodies are rendered from text templates embedded in the package.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends account emails. Implementations bound every delivery with
// the configured timeout and return an error when the mail was not accepted
// by the transport.
type Notifier interface {
	// SendActivation sends the activation link of a pending registration.
	SendActivation(ctx context.Context, mail models.ActivationMail) error

	// SendPassword sends a regenerated plain-text password.
	SendPassword(ctx context.Context, mail models.PasswordMail) error
}

// transport delivers an already rendered message.
type transport interface {
	deliver(ctx context.Context, msg message) error
}
