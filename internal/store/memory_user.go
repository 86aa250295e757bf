package store

import (
	"context"
	"sync"
	"time"

	"github.com/avdeyev/go-signup/models"
)

// MemoryUserRepository is the in-memory test double of [UserRepository].
// It honors the same contract as the PostgreSQL implementation, including
// [ErrUserNotFound] from UpdateActivated on an unknown id.
type MemoryUserRepository struct {
	mu     sync.Mutex
	users  map[string]models.UserRecord
	lastID int64
}

// NewMemoryUserRepository constructs an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.UserRecord),
	}
}

// CreateUser implements [UserRepository]. Identity assignment is
// monotonically increasing, mirroring a BIGSERIAL column.
func (r *MemoryUserRepository) CreateUser(_ context.Context, user models.UserSnapshot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return 0, ErrEmailAlreadyExists
	}

	r.lastID++
	r.users[user.Email] = models.UserRecord{
		ID:           r.lastID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	return r.lastID, nil
}

// FindUserByEmail implements [UserRepository].
func (r *MemoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return models.UserRecord{}, ErrUserNotFound
	}

	return user, nil
}

// UpdateActivated implements [UserRepository].
func (r *MemoryUserRepository) UpdateActivated(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, user := range r.users {
		if user.ID == userID {
			user.Activated = true
			r.users[email] = user
			return nil
		}
	}

	return ErrUserNotFound
}

// HasUser reports whether an account with the given email exists.
// Test helper, not part of the [UserRepository] contract.
func (r *MemoryUserRepository) HasUser(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[email]
	return ok
}
