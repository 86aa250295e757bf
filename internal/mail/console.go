package mail

import (
	"context"

	"github.com/avdeyev/go-signup/internal/logger"
)

// ConsoleSender writes the activation code to the structured log instead
// of sending it anywhere. For local development only: it logs a credential.
type ConsoleSender struct {
	logger *logger.Logger
}

// NewConsoleSender constructs a [ConsoleSender].
func NewConsoleSender(log *logger.Logger) *ConsoleSender {
	return &ConsoleSender{logger: log}
}

// SendActivationCode implements [Sender]. It always succeeds.
func (s *ConsoleSender) SendActivationCode(_ context.Context, email, code string) error {
	s.logger.Info().
		Str("to", email).
		Str("code", code).
		Msg("sending activation code")

	return nil
}
