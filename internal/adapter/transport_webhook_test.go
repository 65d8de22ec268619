package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookTransport_Deliver(t *testing.T) {
	var (
		got        message
		authHeader string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mail", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	wt, err := newWebhookTransport(config.Notifier{
		Timeout: time.Second,
		Webhook: config.Webhook{URL: srv.URL + "/mail", Token: "relay-token"},
	})
	require.NoError(t, err)

	err = wt.deliver(context.Background(), message{Kind: "activation", To: "a@b.c", Subject: "s", Body: "b"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer relay-token", authHeader)
	assert.Equal(t, message{Kind: "activation", To: "a@b.c", Subject: "s", Body: "b"}, got)
}

func TestWebhookTransport_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantErrs []error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErrs: []error{ErrNotificationRejected}},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErrs: []error{ErrNotificationRejected, ErrUnauthorized}},
		{name: "server error", status: http.StatusInternalServerError, wantErrs: []error{ErrNotificationRejected}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			wt, err := newWebhookTransport(config.Notifier{Webhook: config.Webhook{URL: srv.URL}})
			require.NoError(t, err)

			err = wt.deliver(context.Background(), message{To: "a@b.c"})
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestWebhookTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	wt, err := newWebhookTransport(config.Notifier{Timeout: time.Second, Webhook: config.Webhook{URL: url}})
	require.NoError(t, err)

	err = wt.deliver(context.Background(), message{To: "a@b.c"})
	assert.ErrorIs(t, err, ErrSendingMail)
}
