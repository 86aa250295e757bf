package http

import (
	"context"
	"time"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/service"
)

// Pinger reports whether the backing storage is reachable. Implemented by
// [store.Storages]; the health route depends on nothing else from the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		db:             db,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
