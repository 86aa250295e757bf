package service

import (
	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
)

// Services bundles every application service the HTTP layer needs.
type Services struct {
	Register RegisterService
	Activate ActivateService
	Auth     AuthService
}

// NewServices builds the service layer on top of the given storages and
// mail scheduler.
func NewServices(storages *store.Storages, scheduler MailScheduler, log *logger.Logger) *Services {
	return &Services{
		Register: NewRegisterService(storages.UserRepository, storages.ActivationCodeRepository, scheduler, log),
		Activate: NewActivateService(storages.UserRepository, storages.ActivationCodeRepository, log),
		Auth:     NewAuthService(storages.UserRepository, log),
	}
}
