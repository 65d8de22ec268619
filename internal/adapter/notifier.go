package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type notifier struct {
	transport transport
	renderer  renderer
	timeout   time.Duration
	logger    *logger.Logger
}

// NewNotifier builds the [Notifier] selected by cfg.Transport. publicURL is
// the externally reachable base URL used in activation links.
func NewNotifier(cfg config.Notifier, publicURL string, log *logger.Logger) (Notifier, error) {
	var (
		t   transport
		err error
	)

	switch cfg.Transport {
	case config.NotifierTransportSMTP:
		t, err = newSMTPTransport(cfg)
	case config.NotifierTransportWebhook:
		t, err = newWebhookTransport(cfg)
	case config.NotifierTransportLog:
		t = newLogTransport(log)
	case "":
		return nil, fmt.Errorf("%w: transport is required", ErrInvalidNotifierConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("transport", cfg.Transport).Dur("timeout", cfg.Timeout).Msg("notifier created")

	return newNotifier(t, publicURL, cfg.Timeout, log), nil
}

func newNotifier(t transport, publicURL string, timeout time.Duration, log *logger.Logger) *notifier {
	return &notifier{
		transport: t,
		renderer:  newRenderer(publicURL),
		timeout:   timeout,
		logger:    log,
	}
}

// SendActivation implements [Notifier].
func (n *notifier) SendActivation(ctx context.Context, mail models.ActivationMail) error {
	msg, err := n.renderer.activation(mail)
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

// SendPassword implements [Notifier].
func (n *notifier) SendPassword(ctx context.Context, mail models.PasswordMail) error {
	msg, err := n.renderer.password(mail)
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

func (n *notifier) send(ctx context.Context, msg message) error {
	log := logger.FromContext(ctx)

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := n.transport.deliver(ctx, msg); err != nil {
		log.Err(err).
			Str("func", "*notifier.send").
			Str("kind", msg.Kind).
			Str("to", msg.To).
			Dur("elapsed", time.Since(start)).
			Msg("mail was not delivered")
		return err
	}

	log.Debug().Str("kind", msg.Kind).Str("to", msg.To).Dur("elapsed", time.Since(start)).Msg("mail delivered")
	return nil
}
