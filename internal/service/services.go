package service

import (
	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/store"
)

// Services aggregates the server-side business logic behind one constructor.
type Services struct {
	Auth AuthService
	User UserService
}

// NewServices wires the service layer on top of the repositories.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Auth: NewAuthService(storages.UserRepository, cfg.Auth, log),
		User: NewUserService(storages.UserRepository, log),
	}
}
