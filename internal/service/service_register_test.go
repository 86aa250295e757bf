package service

import (
	"context"
	"testing"
	"time"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/avdeyev/go-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScheduler captures Enqueue calls so tests can assert on the
// handoff without spinning up a dispatcher goroutine.
type recordingScheduler struct {
	emails []string
	codes  []string
}

func (s *recordingScheduler) Enqueue(email, code string) {
	s.emails = append(s.emails, email)
	s.codes = append(s.codes, code)
}

func newTestUser(t *testing.T, rawEmail string) *models.User {
	t.Helper()

	email, err := models.NewEmail(rawEmail)
	require.NoError(t, err)
	password, err := models.NewPassword("Sup3r$ecret")
	require.NoError(t, err)

	return models.NewUser(email, password)
}

func TestRegisterService_Execute(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	scheduler := &recordingScheduler{}
	register := NewRegisterService(users, codes, scheduler, logger.Nop())

	user := newTestUser(t, "ivan@example.com")

	err := register.Execute(context.Background(), user)
	require.NoError(t, err)

	assert.NotZero(t, user.ID(), "user should carry the id assigned by the store")
	assert.True(t, users.HasUser("ivan@example.com"))

	require.Len(t, scheduler.emails, 1)
	assert.Equal(t, "ivan@example.com", scheduler.emails[0])
	assert.Equal(t, user.ActivationCode().String(), scheduler.codes[0])

	err = codes.HasValidCode(context.Background(), user.ID(), user.ActivationCode().String())
	assert.NoError(t, err, "the stored code should match the one given to the user")
}

func TestRegisterService_Execute_DuplicateEmail(t *testing.T) {
	users := store.NewMemoryUserRepository()
	codes := store.NewMemoryActivationCodeRepository(time.Minute)
	scheduler := &recordingScheduler{}
	register := NewRegisterService(users, codes, scheduler, logger.Nop())

	require.NoError(t, register.Execute(context.Background(), newTestUser(t, "ivan@example.com")))

	err := register.Execute(context.Background(), newTestUser(t, "ivan@example.com"))
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)

	assert.Len(t, scheduler.emails, 1, "no mail should be scheduled for a rejected registration")
}
