package store

import (
	"context"
	"sync"
	"time"
)

type codeRow struct {
	code      string
	createdAt time.Time
}

// MemoryActivationCodeRepository is the in-memory test double of
// [ActivationCodeRepository]. Like the PostgreSQL implementation it keeps
// every issued row and consults only the newest match, distinguishing a
// stale code from a wrong one.
type MemoryActivationCodeRepository struct {
	mu      sync.Mutex
	codes   map[int64][]codeRow
	lastID  int64
	codeTTL time.Duration
}

// NewMemoryActivationCodeRepository constructs an empty in-memory code
// store with the given freshness window.
func NewMemoryActivationCodeRepository(codeTTL time.Duration) *MemoryActivationCodeRepository {
	return &MemoryActivationCodeRepository{
		codes:   make(map[int64][]codeRow),
		codeTTL: codeTTL,
	}
}

// SaveCode implements [ActivationCodeRepository].
func (r *MemoryActivationCodeRepository) SaveCode(_ context.Context, userID int64, code string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	r.codes[userID] = append(r.codes[userID], codeRow{code: code, createdAt: time.Now().UTC()})

	return r.lastID, nil
}

// HasValidCode implements [ActivationCodeRepository]. The match check runs
// first, then the age check, so a matching-but-stale code yields
// [ErrCodeExpired] rather than [ErrInvalidActivationCode].
func (r *MemoryActivationCodeRepository) HasValidCode(_ context.Context, userID int64, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	newest, ok := r.newestMatch(userID, code)
	if !ok {
		return ErrInvalidActivationCode
	}

	if time.Since(newest.createdAt) > r.codeTTL {
		return ErrCodeExpired
	}

	return nil
}

func (r *MemoryActivationCodeRepository) newestMatch(userID int64, code string) (codeRow, bool) {
	rows := r.codes[userID]
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].code == code {
			return rows[i], true
		}
	}

	return codeRow{}, false
}

// ExpireCode backdates every row of the user far beyond the freshness
// window. Test helper, not part of the contract.
func (r *MemoryActivationCodeRepository) ExpireCode(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.codes[userID]
	for i := range rows {
		rows[i].createdAt = time.Now().UTC().Add(-time.Hour)
	}
}

// SaveFakeCode inserts a fresh row with an arbitrary code value.
// Test helper, not part of the contract.
func (r *MemoryActivationCodeRepository) SaveFakeCode(userID int64, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[userID] = append(r.codes[userID], codeRow{code: code, createdAt: time.Now().UTC()})
}
