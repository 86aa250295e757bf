package service

import (
	"context"

	"github.com/avdeyev/go-signup/models"
)

// RegisterService is the registration use case: persist a new account,
// store its activation code, and schedule the notification mail.
type RegisterService interface {
	Execute(ctx context.Context, user *models.User) error
}

// ActivateService is the activation use case: verify a redeemed code and
// flip the account to activated.
type ActivateService interface {
	Execute(ctx context.Context, userID int64, code string) error
}

// AuthService resolves Basic-Auth credentials to a stored account row and
// gates it by activation state.
type AuthService interface {
	// Authenticate verifies (email, password) against the stored bcrypt
	// hash. Returns the account row, [store.ErrUserNotFound] for an
	// unknown email, or [ErrWrongPassword] on hash mismatch.
	Authenticate(ctx context.Context, email, password string) (models.UserRecord, error)

	// AuthenticateInactive is the gate for the activation endpoint:
	// authenticates and then rejects already-activated accounts with
	// [ErrAlreadyActivated].
	AuthenticateInactive(ctx context.Context, email, password string) (models.UserRecord, error)

	// AuthenticateActive authenticates and rejects not-yet-activated
	// accounts with [ErrNotActivated]. Unused by current routes, but this
	// is the gate any future authenticated endpoint should use.
	AuthenticateActive(ctx context.Context, email, password string) (models.UserRecord, error)
}

// MailScheduler is the fire-and-forget handoff to the background mail
// dispatcher. Implemented by [workers.MailDispatcher].
type MailScheduler interface {
	Enqueue(email, code string)
}
