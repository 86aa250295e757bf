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

func TestAuthService_Authenticate(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, _ := registeredUser(t, users, codes)

	auth := NewAuthService(users, logger.Nop())

	record, err := auth.Authenticate(context.Background(), "ivan@example.com", "Sup3r$ecret")
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, "ivan@example.com", record.Email)
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	auth := NewAuthService(store.NewMemoryUserRepository(), logger.Nop())

	_, err := auth.Authenticate(context.Background(), "nobody@example.com", "Sup3r$ecret")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	registeredUser(t, users, codes)

	auth := NewAuthService(users, logger.Nop())

	_, err := auth.Authenticate(context.Background(), "ivan@example.com", "Wr0ng$ecret")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_AuthenticateInactive(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, _ := registeredUser(t, users, codes)

	auth := NewAuthService(users, logger.Nop())

	record, err := auth.AuthenticateInactive(context.Background(), "ivan@example.com", "Sup3r$ecret")
	require.NoError(t, err)
	assert.False(t, record.Activated)

	require.NoError(t, users.UpdateActivated(context.Background(), id))

	_, err = auth.AuthenticateInactive(context.Background(), "ivan@example.com", "Sup3r$ecret")
	require.ErrorIs(t, err, ErrAlreadyActivated)
}

func TestAuthService_AuthenticateActive(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	id, _ := registeredUser(t, users, codes)

	auth := NewAuthService(users, logger.Nop())

	_, err := auth.AuthenticateActive(context.Background(), "ivan@example.com", "Sup3r$ecret")
	require.ErrorIs(t, err, ErrNotActivated)

	require.NoError(t, users.UpdateActivated(context.Background(), id))

	record, err := auth.AuthenticateActive(context.Background(), "ivan@example.com", "Sup3r$ecret")
	require.NoError(t, err)
	assert.True(t, record.Activated)
}
