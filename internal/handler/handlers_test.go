package handler

import (
	"testing"
	"time"

	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers verifies that a configured HTTP address yields an
// initialised HTTP handler.
func TestNewHandlers(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    ":8080",
		RequestTimeout: 30 * time.Second,
	}

	h, err := NewHandlers(newTestServices(), nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty HTTP address is treated as
// a fatal misconfiguration.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), nil, config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, h)
}
