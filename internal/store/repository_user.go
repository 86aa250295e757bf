package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and activation against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account row and returns the server-assigned id.
//
// The INSERT carries only the email and the password hash; activated and
// created_at take their column defaults. The unique index on users.email is
// the authoritative duplicate check, so concurrent registrations of the same
// address race safely: exactly one insert wins.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.UserSnapshot) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash)

	if err := row.Scan(&id); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("duplicate email")
			return 0, ErrEmailAlreadyExists
		default:
			r.db.logQueryError(ctx, "*userRepository.CreateUser", err)
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("id", id).Msg("user created")

	return id, nil
}

// FindUserByEmail retrieves the account row whose email matches the given
// canonical address.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.UserRecord, error) {
	query, args, err := findUserByEmailQuery(email)
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.UserRecord
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.Activated, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserRecord{}, ErrUserNotFound
		}

		r.db.logQueryError(ctx, "*userRepository.FindUserByEmail", err)
		return models.UserRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateActivated flips activated to true for the given user id.
//
// The activation flag is monotone: the UPDATE can only set it, never
// clear it, so running the statement twice is harmless. An id matching
// no row yields [ErrUserNotFound].
func (r *userRepository) UpdateActivated(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateActivated, userID)
	if err != nil {
		r.db.logQueryError(ctx, "*userRepository.UpdateActivated", err)
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	log.Debug().Str("func", "*userRepository.UpdateActivated").Int64("id", userID).Msg("user activated")

	return nil
}
