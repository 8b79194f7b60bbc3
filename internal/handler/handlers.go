package handler

import (
	"github.com/dreamclick/dreamclick/internal/handler/http"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
)

// Handlers aggregates the transport-level handlers of the server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the transport layer on top of the service layer.
func NewHandlers(services *service.Services, log *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, log),
	}
}
