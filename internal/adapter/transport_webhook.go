package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// webhookTransport posts messages as JSON to an HTTP mail relay.
type webhookTransport struct {
	client *utils.HTTPClient
	url    string
}

func newWebhookTransport(cfg config.Notifier) (*webhookTransport, error) {
	u, err := url.Parse(cfg.Webhook.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: webhook url must include scheme and host", ErrInvalidNotifierConfig)
	}

	client := utils.NewHTTPClient("", cfg.Timeout)
	if cfg.Webhook.Token != "" {
		client.SetAuthToken(cfg.Webhook.Token)
	}

	return &webhookTransport{client: client, url: u.String()}, nil
}

func (t *webhookTransport) deliver(ctx context.Context, msg message) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(t.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	return mapHTTPError(resp)
}
