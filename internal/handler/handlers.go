package handler

import (
	"github.com/avdeyev/go-signup/internal/config"
	"github.com/avdeyev/go-signup/internal/handler/http"
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, db http.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, db, cfg.RequestTimeout, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
