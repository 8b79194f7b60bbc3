package store

import (
	"context"
	"fmt"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
)

// Storages aggregates every server-side repository behind one constructor so
// main can wire the service layer in a single call.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL, runs the embedded migrations, and
// returns the repository set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
