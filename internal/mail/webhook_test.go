package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookServer(t *testing.T, status int, capture *webhookPayload) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.WriteHeader(status)
	}))
}

func newWebhookSender(address string) *WebhookSender {
	return NewWebhookSender(config.Mailer{
		Mode:    config.MailerModeWebhook,
		Address: address,
		APIKey:  "test-key",
	}, logger.Nop())
}

func TestWebhookSender_Success(t *testing.T) {
	var got webhookPayload
	srv := newWebhookServer(t, http.StatusOK, &got)
	defer srv.Close()

	sender := newWebhookSender(srv.URL)

	err := sender.SendActivationCode(context.Background(), "user@test.com", "1234")
	require.NoError(t, err)

	assert.Equal(t, "user@test.com", got.To)
	assert.Equal(t, "Activation Code", got.Subject)
	assert.Contains(t, got.Body, "1234")
}

func TestWebhookSender_Non2xx(t *testing.T) {
	srv := newWebhookServer(t, http.StatusBadGateway, nil)
	defer srv.Close()

	sender := newWebhookSender(srv.URL)

	err := sender.SendActivationCode(context.Background(), "user@test.com", "1234")
	require.ErrorIs(t, err, ErrMailSend)
}

func TestWebhookSender_TransportError(t *testing.T) {
	srv := newWebhookServer(t, http.StatusOK, nil)
	srv.Close() // refuse connections

	sender := newWebhookSender(srv.URL)

	err := sender.SendActivationCode(context.Background(), "user@test.com", "1234")
	require.ErrorIs(t, err, ErrMailSend)
}

func TestMemorySender_RecordsLastCode(t *testing.T) {
	sender := NewMemorySender()

	require.NoError(t, sender.SendActivationCode(context.Background(), "user@test.com", "1111"))
	require.NoError(t, sender.SendActivationCode(context.Background(), "user@test.com", "2222"))

	assert.True(t, sender.HasActivationCodeMail("user@test.com", "2222"))
	assert.False(t, sender.HasActivationCodeMail("user@test.com", "1111"))
	assert.False(t, sender.HasActivationCodeMail("other@test.com", "2222"))
	assert.Equal(t, 2, sender.Calls())
}

func TestMemorySender_FailWith(t *testing.T) {
	sender := NewMemorySender()
	sender.FailWith(ErrMailSend)

	err := sender.SendActivationCode(context.Background(), "user@test.com", "1111")
	require.ErrorIs(t, err, ErrMailSend)
	assert.False(t, sender.HasActivationCodeMail("user@test.com", "1111"))
}

func TestNewSender_ModeSelection(t *testing.T) {
	log := logger.Nop()

	var s Sender = NewSender(config.Mailer{Mode: config.MailerModeConsole}, log)
	_, ok := s.(*ConsoleSender)
	assert.True(t, ok)

	s = NewSender(config.Mailer{Mode: config.MailerModeWebhook, Address: "https://x", APIKey: "k"}, log)
	_, ok = s.(*WebhookSender)
	assert.True(t, ok)
}
