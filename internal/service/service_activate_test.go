package service

import (
	"context"
	"testing"
	"time"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registeredUser runs a full registration and hands back the assigned id
// and the issued code, ready for activation scenarios.
func registeredUser(t *testing.T, users *store.MemoryUserRepository, codes *store.MemoryActivationCodeRepository) (int64, string) {
	t.Helper()

	scheduler := &recordingScheduler{}
	register := NewRegisterService(users, codes, scheduler, logger.Nop())
	user := newTestUser(t, "ivan@example.com")
	require.NoError(t, register.Execute(context.Background(), user))

	return user.ID(), user.ActivationCode().String()
}

func TestActivateService_Execute(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, code := registeredUser(t, users, codes)

	activate := NewActivateService(users, codes, logger.Nop())

	err := activate.Execute(context.Background(), id, code)
	require.NoError(t, err)

	record, err := users.FindUserByEmail(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.True(t, record.Activated)
}

func TestActivateService_Execute_WrongCode(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, _ := registeredUser(t, users, codes)

	activate := NewActivateService(users, codes, logger.Nop())

	err := activate.Execute(context.Background(), id, "0000")
	require.ErrorIs(t, err, store.ErrInvalidActivationCode)

	record, _ := users.FindUserByEmail(context.Background(), "ivan@example.com")
	assert.False(t, record.Activated, "a wrong code must not activate the account")
}

func TestActivateService_Execute_StaleCode(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, code := registeredUser(t, users, codes)

	codes.ExpireCode(id)

	activate := NewActivateService(users, codes, logger.Nop())

	err := activate.Execute(context.Background(), id, code)
	require.ErrorIs(t, err, store.ErrCodeExpired)
}

func TestActivateService_Execute_OlderCodeStillFresh(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, code := registeredUser(t, users, codes)

	// A re-registration attempt would mint a fresh code; the older one
	// still activates as long as it sits inside the freshness window.
	codes.SaveFakeCode(id, "9999")

	activate := NewActivateService(users, codes, logger.Nop())
	require.NoError(t, activate.Execute(context.Background(), id, code))
}
