package store

import (
	"context"

	"github.com/avdeyev/go-signup/models"
)

// UserRepository is the persistence gateway for account rows. Callers
// depend on this contract only; both the PostgreSQL implementation and
// the in-memory test double honor it.
type UserRepository interface {
	// CreateUser inserts the snapshot's email and password hash and
	// returns the store-generated identity.
	// A duplicate email yields [ErrEmailAlreadyExists]; the unique index
	// is authoritative, there is no application-level pre-check.
	CreateUser(ctx context.Context, user models.UserSnapshot) (int64, error)

	// FindUserByEmail returns the account row for the given canonical
	// email, or [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.UserRecord, error)

	// UpdateActivated sets activated=true for the given user. It returns
	// [ErrUserNotFound] when the id does not exist; activating an already
	// activated account again is a safe no-op at this layer.
	UpdateActivated(ctx context.Context, userID int64) error
}

// ActivationCodeRepository is the persistence gateway for activation
// code rows. A user may accumulate many rows over time (resends); only
// the newest row matching a supplied code is consulted.
type ActivationCodeRepository interface {
	// SaveCode inserts a fresh code row for the user and returns the
	// row's identity.
	SaveCode(ctx context.Context, userID int64, code string) (int64, error)

	// HasValidCode succeeds iff a row matching (userID, code) exists and
	// was issued within the freshness window. A matching but stale row
	// yields [ErrCodeExpired]; no matching row yields
	// [ErrInvalidActivationCode].
	HasValidCode(ctx context.Context, userID int64, code string) error
}
