package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/go-resty/resty/v2"
)

const webhookTimeout = 15 * time.Second

// webhookPayload is the JSON body POSTed to the mail provider.
type webhookPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// WebhookSender delivers activation codes through an external HTTP mail
// provider. Requests carry bearer-token auth; any transport error or
// non-2xx response is reported as [ErrMailSend].
type WebhookSender struct {
	client *resty.Client
	logger *logger.Logger
}

// NewWebhookSender constructs a [WebhookSender] for the provider described
// by cfg.
func NewWebhookSender(cfg config.Mailer, log *logger.Logger) *WebhookSender {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Address, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(webhookTimeout)

	return &WebhookSender{client: cli, logger: log}
}

// SendActivationCode implements [Sender].
func (s *WebhookSender) SendActivationCode(ctx context.Context, email, code string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{
			To:      email,
			Subject: "Activation Code",
			Body:    fmt.Sprintf("Your code: %s", code),
		}).
		Post("/send")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: provider responded %d", ErrMailSend, resp.StatusCode())
	}

	return nil
}
