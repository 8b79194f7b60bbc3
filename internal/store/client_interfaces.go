package store

import (
	"context"
	"errors"

	"github.com/dreamclick/dreamclick/models"
)

// ErrNoLocalSession is returned by [SessionStore.Load] when no token is
// persisted locally. A profile without a token also counts as no session:
// the token is the sole authentication signal.
var ErrNoLocalSession = errors.New("no local session found")

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists the client-held authentication state: the raw session
// token and the cached profile snapshot, stored under two independent
// namespaced keys so either can be missing on its own.
type SessionStore interface {
	// SaveToken writes the token key.
	SaveToken(ctx context.Context, token string) error

	// SaveProfile writes the profile key.
	SaveProfile(ctx context.Context, profile models.User) error

	// Load reads both keys and assembles a [models.Session]. Returns
	// [ErrNoLocalSession] when the token key is absent. A missing or
	// undecodable profile yields a session with a nil Profile, never an
	// error — role checks downstream fail closed on it.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes both keys. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
