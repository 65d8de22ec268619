package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// logTransport writes messages to the logger instead of sending them.
// Meant for development setups without a mail server. Password mails are
// logged without their body.
const redacted = "[REDACTED]"

type logTransport struct {
	logger *logger.Logger
}

func newLogTransport(log *logger.Logger) *logTransport {
	return &logTransport{logger: log}
}

func (t *logTransport) deliver(ctx context.Context, msg message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := msg.Body
	if msg.Kind == kindPassword {
		body = redacted
	}

	t.logger.Info().
		Str("kind", msg.Kind).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", body).
		Msg("mail written to log")

	return nil
}
