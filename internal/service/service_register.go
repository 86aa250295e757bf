package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/avdeyev/go-signup/models"
)

// registerService is the concrete implementation of [RegisterService].
type registerService struct {
	userRepository store.UserRepository
	codeRepository store.ActivationCodeRepository
	scheduler      MailScheduler
	logger         *logger.Logger
}

// NewRegisterService constructs a [RegisterService] wired to the given
// gateways and mail scheduler.
func NewRegisterService(
	userRepository store.UserRepository,
	codeRepository store.ActivationCodeRepository,
	scheduler MailScheduler,
	logger *logger.Logger,
) RegisterService {
	return &registerService{
		userRepository: userRepository,
		codeRepository: codeRepository,
		scheduler:      scheduler,
		logger:         logger,
	}
}

// Execute persists the account and its activation code, then schedules the
// notification mail.
//
// The snapshot is taken exactly once so the row carries a single bcrypt
// hash. A duplicate email propagates as [store.ErrEmailAlreadyExists],
// untouched and unretried. The mail handoff is fire-and-forget: the caller
// gets its 201 whether or not delivery later succeeds, and a failed send
// is only logged by the dispatcher (the user falls back to support).
func (s *registerService) Execute(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	snap, err := user.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshotting user failed: %w", err)
	}

	id, err := s.userRepository.CreateUser(ctx, snap)
	if err != nil {
		return fmt.Errorf("user creation ended with error: %w", err)
	}
	user.Register(id)

	if _, err = s.codeRepository.SaveCode(ctx, id, snap.ActivationCode); err != nil {
		return fmt.Errorf("saving activation code failed: %w", err)
	}

	log.Debug().Int64("id", id).Str("email", snap.Email).Msg("user registered")

	s.scheduler.Enqueue(snap.Email, snap.ActivationCode)

	return nil
}
