package service

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/avdeyev/go-signup/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of [AuthService]. It resolves
// Basic-Auth credentials against the user store and verifies the password
// with bcrypt's constant-time comparison.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Authenticate implements [AuthService].
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.UserRecord, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.UserRecord{}, ErrWrongPassword
	}

	return foundUser, nil
}

// AuthenticateInactive implements [AuthService]. Special gate for users
// not activated yet; used only by the activation route.
func (a *authService) AuthenticateInactive(ctx context.Context, email, password string) (models.UserRecord, error) {
	foundUser, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return models.UserRecord{}, err
	}

	if foundUser.Activated {
		return models.UserRecord{}, ErrAlreadyActivated
	}

	return foundUser, nil
}

// AuthenticateActive implements [AuthService]. This is the gate to
// authenticate users with 99% of the time; no current route needs it yet.
func (a *authService) AuthenticateActive(ctx context.Context, email, password string) (models.UserRecord, error) {
	foundUser, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return models.UserRecord{}, err
	}

	if !foundUser.Activated {
		return models.UserRecord{}, ErrNotActivated
	}

	return foundUser, nil
}
