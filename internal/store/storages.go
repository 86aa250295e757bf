package store

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/logger"
)

// Storages aggregates every persistence gateway behind one constructor so
// the entrypoint wires a single value into the service layer.
type Storages struct {
	UserRepository           UserRepository
	ActivationCodeRepository ActivationCodeRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the embedded migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		ActivationCodeRepository: NewActivationCodeRepository(db, cfg.CodeTTL, log),
		db:                       db,
	}, nil
}

// Ping verifies the database connection; used by the health endpoint.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
