package service

import (
	"github.com/dreamclick/dreamclick/internal/adapter"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	GuardService ClientGuardService
	UserService  ClientUserService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, serverAdapter, log)

	return &ClientServices{
		AuthService:  authSvc,
		GuardService: NewClientGuardService(log),
		UserService:  NewClientUserService(serverAdapter, authSvc, log),
	}
}
