package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeyev/go-signup/models"
)

func TestMemoryUserRepository_Contract(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	snap := models.UserSnapshot{Email: "user@test.com", PasswordHash: "hash"}

	id, err := repo.CreateUser(ctx, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected monotonically assigned id=1, got %d", id)
	}

	// duplicate email, regardless of password
	_, err = repo.CreateUser(ctx, models.UserSnapshot{Email: "user@test.com", PasswordHash: "other"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	found, err := repo.FindUserByEmail(ctx, "user@test.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != id || found.Activated {
		t.Errorf("unexpected record: %+v", found)
	}

	_, err = repo.FindUserByEmail(ctx, "missing@test.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err = repo.UpdateActivated(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found, _ = repo.FindUserByEmail(ctx, "user@test.com")
	if !found.Activated {
		t.Error("expected record to be activated")
	}

	// second activation is a no-op at this layer
	if err = repo.UpdateActivated(ctx, id); err != nil {
		t.Fatalf("unexpected error on repeated activation: %v", err)
	}

	if err = repo.UpdateActivated(ctx, 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown id, got %v", err)
	}
}

func TestMemoryActivationCodeRepository_Contract(t *testing.T) {
	repo := NewMemoryActivationCodeRepository(time.Minute)
	ctx := context.Background()

	if _, err := repo.SaveCode(ctx, 1, "1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.HasValidCode(ctx, 1, "1234"); err != nil {
		t.Fatalf("expected fresh matching code to be valid, got %v", err)
	}

	if err := repo.HasValidCode(ctx, 1, "0000"); !errors.Is(err, ErrInvalidActivationCode) {
		t.Fatalf("expected ErrInvalidActivationCode, got %v", err)
	}

	if err := repo.HasValidCode(ctx, 2, "1234"); !errors.Is(err, ErrInvalidActivationCode) {
		t.Fatalf("expected ErrInvalidActivationCode for wrong user, got %v", err)
	}

	repo.ExpireCode(1)
	if err := repo.HasValidCode(ctx, 1, "1234"); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired after backdating, got %v", err)
	}
}

func TestMemoryActivationCodeRepository_NewestRowWins(t *testing.T) {
	repo := NewMemoryActivationCodeRepository(time.Minute)
	ctx := context.Background()

	repo.SaveFakeCode(1, "1111")
	repo.ExpireCode(1)
	if _, err := repo.SaveCode(ctx, 1, "1111"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a resend stacks a fresh row; the newest match decides
	if err := repo.HasValidCode(ctx, 1, "1111"); err != nil {
		t.Fatalf("expected newest row to validate, got %v", err)
	}
}
