package store

import (
	"fmt"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
)

// ClientStorages aggregates the client-local stores.
type ClientStorages struct {
	Session SessionStore
}

// NewClientStorages opens the client-local session store.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	session, err := NewSessionStore(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}
	log.Debug().Str("path", cfg.Path).Msg("session store opened")

	return &ClientStorages{Session: session}, nil
}
