package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeyev/go-signup/internal/logger"
)

// activationCodeRepository is the PostgreSQL-backed implementation of
// [ActivationCodeRepository]. A user accumulates one "activation_code" row
// per issued code; only the newest row matching a redeemed code counts.
type activationCodeRepository struct {
	logger  *logger.Logger
	db      *DB
	codeTTL time.Duration
}

// NewActivationCodeRepository constructs an [ActivationCodeRepository]
// backed by the provided database connection. codeTTL is the freshness
// window within which an issued code stays redeemable.
func NewActivationCodeRepository(db *DB, codeTTL time.Duration, logger *logger.Logger) ActivationCodeRepository {
	logger.Debug().Msg("creating activation code repository")
	return &activationCodeRepository{
		db:      db,
		codeTTL: codeTTL,
		logger:  logger,
	}
}

// SaveCode inserts a fresh code row for the user; created_at takes the
// column default. A resend therefore stacks a new row instead of
// overwriting the old one.
func (r *activationCodeRepository) SaveCode(ctx context.Context, userID int64, code string) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	row := r.db.QueryRowContext(ctx, saveActivationCode, userID, code)

	if err := row.Scan(&id); err != nil {
		r.db.logQueryError(ctx, "*activationCodeRepository.SaveCode", err)
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	log.Debug().Str("func", "*activationCodeRepository.SaveCode").Int64("user_id", userID).Msg("activation code saved")

	return id, nil
}

// HasValidCode looks up the newest row matching (userID, code) and checks
// its age against the freshness window in Go rather than in the WHERE
// clause, so that a matching-but-stale code is reported as [ErrCodeExpired]
// instead of being indistinguishable from a wrong code.
func (r *activationCodeRepository) HasValidCode(ctx context.Context, userID int64, code string) error {
	query, args, err := newestCodeQuery(userID, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdAt time.Time
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidActivationCode
		}

		r.db.logQueryError(ctx, "*activationCodeRepository.HasValidCode", err)
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if time.Since(createdAt) > r.codeTTL {
		return ErrCodeExpired
	}

	return nil
}
