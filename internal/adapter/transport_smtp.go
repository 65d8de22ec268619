package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/wneessen/go-mail"
)

// SMTP TLS modes accepted in config.SMTP.TLS.
const (
	smtpTLSMandatory     = "mandatory"
	smtpTLSOpportunistic = "opportunistic"
	smtpTLSImplicit      = "ssl"
	smtpTLSNone          = "none"
)

type smtpTransport struct {
	host    string
	from    string
	options []mail.Option
}

func newSMTPTransport(cfg config.Notifier) (*smtpTransport, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("%w: smtp host is required", ErrInvalidNotifierConfig)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: from address is required", ErrInvalidNotifierConfig)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTP.Port),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	switch cfg.SMTP.TLS {
	case smtpTLSMandatory, "":
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	case smtpTLSOpportunistic:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	case smtpTLSImplicit:
		opts = append(opts, mail.WithSSL())
	case smtpTLSNone:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		return nil, fmt.Errorf("%w: unknown smtp tls mode %q", ErrInvalidNotifierConfig, cfg.SMTP.TLS)
	}

	if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTP.Username),
			mail.WithPassword(cfg.SMTP.Password),
		)
	}

	return &smtpTransport{host: cfg.SMTP.Host, from: cfg.From, options: opts}, nil
}

func (t *smtpTransport) deliver(ctx context.Context, msg message) error {
	m := mail.NewMsg()
	if err := m.From(t.from); err != nil {
		return fmt.Errorf("%w: setting from address: %w", ErrSendingMail, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: setting to address: %w", ErrSendingMail, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(t.host, t.options...)
	if err != nil {
		return fmt.Errorf("%w: creating mail client: %w", ErrSendingMail, err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	return nil
}
