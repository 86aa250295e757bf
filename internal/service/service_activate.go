package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
)

// activateService is the concrete implementation of [ActivateService].
type activateService struct {
	userRepository store.UserRepository
	codeRepository store.ActivationCodeRepository
	logger         *logger.Logger
}

// NewActivateService constructs an [ActivateService] wired to the given
// gateways.
func NewActivateService(
	userRepository store.UserRepository,
	codeRepository store.ActivationCodeRepository,
	logger *logger.Logger,
) ActivateService {
	return &activateService{
		userRepository: userRepository,
		codeRepository: codeRepository,
		logger:         logger,
	}
}

// Execute verifies the redeemed code and activates the account.
//
// [store.ErrInvalidActivationCode] and [store.ErrCodeExpired] propagate
// unchanged; both are terminal for the call, nothing is retried. The
// subsequent activation update is monotone — once activated, an account
// never flips back.
func (s *activateService) Execute(ctx context.Context, userID int64, code string) error {
	log := logger.FromContext(ctx)

	if err := s.codeRepository.HasValidCode(ctx, userID, code); err != nil {
		return fmt.Errorf("activation code check failed: %w", err)
	}

	if err := s.userRepository.UpdateActivated(ctx, userID); err != nil {
		return fmt.Errorf("activating user failed: %w", err)
	}

	log.Debug().Int64("id", userID).Msg("user activated")

	return nil
}
