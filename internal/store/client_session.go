package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dreamclick/dreamclick/models"
)

// Namespaced keys for the two session values. They are written and read
// independently; the behaviour when one is present without the other is
// defined by [SessionStore.Load].
const (
	sessionTokenKey   = "dreamclick.session.token"
	sessionProfileKey = "dreamclick.session.profile"
)

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS session_kv (
		key      TEXT PRIMARY KEY,
		value    TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);`

// sqliteSessionStore is the SQLite-backed implementation of [SessionStore].
// It keeps the session in a tiny key/value table so the client survives
// restarts without re-authenticating while the token is still valid.
type sqliteSessionStore struct {
	db *sql.DB
}

// NewSessionStore opens (or creates) the SQLite session database at path and
// ensures the key/value table exists.
func NewSessionStore(path string) (SessionStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err = db.Exec(createSessionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return &sqliteSessionStore{db: db}, nil
}

func (s *sqliteSessionStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_kv (key, value, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, saved_at = excluded.saved_at;`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write session key %q: %w", key, err)
	}
	return nil
}

func (s *sqliteSessionStore) get(ctx context.Context, key string) (string, time.Time, error) {
	var (
		value   string
		savedAt time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, saved_at FROM session_kv WHERE key = ?;`, key).
		Scan(&value, &savedAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return value, savedAt, nil
}

// SaveToken implements [SessionStore].
func (s *sqliteSessionStore) SaveToken(ctx context.Context, token string) error {
	return s.put(ctx, sessionTokenKey, token)
}

// SaveProfile implements [SessionStore].
func (s *sqliteSessionStore) SaveProfile(ctx context.Context, profile models.User) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.put(ctx, sessionProfileKey, string(raw))
}

// Load implements [SessionStore]. The token key alone decides whether a
// session exists; the profile is best-effort metadata.
func (s *sqliteSessionStore) Load(ctx context.Context) (models.Session, error) {
	token, savedAt, err := s.get(ctx, sessionTokenKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoLocalSession
		}
		return models.Session{}, fmt.Errorf("read session token: %w", err)
	}

	session := models.Session{Token: token, SavedAt: savedAt}

	profileRaw, _, err := s.get(ctx, sessionProfileKey)
	if err != nil {
		// Missing profile is a degraded but valid session.
		if errors.Is(err, sql.ErrNoRows) {
			return session, nil
		}
		return models.Session{}, fmt.Errorf("read session profile: %w", err)
	}

	var profile models.User
	if err = json.Unmarshal([]byte(profileRaw), &profile); err == nil {
		session.Profile = &profile
	}
	// An undecodable profile is dropped silently: the session stays
	// authenticated, role checks fail closed.

	return session, nil
}

// Clear implements [SessionStore].
func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_kv WHERE key IN (?, ?);`,
		sessionTokenKey, sessionProfileKey)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close implements [SessionStore].
func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
