// Package mail delivers activation codes to users. The outbound transport
// is pluggable: a console sender for local development, an in-memory
// capture for tests, and a webhook sender for real providers.
package mail

import (
	"context"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/logger"
)

// Sender is the notifier contract. Implementations must be safe for
// concurrent use; the background dispatcher invokes SendActivationCode
// outside the request goroutine.
type Sender interface {
	// SendActivationCode delivers the code to the given address.
	// Transport failures surface as [ErrMailSend].
	SendActivationCode(ctx context.Context, email, code string) error
}

// NewSender selects the Sender implementation from the mailer config:
// "webhook" builds a [WebhookSender], anything else falls back to the
// console sender.
func NewSender(cfg config.Mailer, log *logger.Logger) Sender {
	if cfg.Mode == config.MailerModeWebhook {
		return NewWebhookSender(cfg, log)
	}

	return NewConsoleSender(log)
}
