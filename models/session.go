package models

import "time"

// Session is the client-held authentication state: the raw session token and
// a denormalized snapshot of the authenticated user. The profile is a cache,
// not a source of truth — it is written at login and never re-validated
// against the server within a session, so it can drift (e.g. a role change
// will not propagate until re-login or an explicit profile refresh).
type Session struct {
	// Token is the compact JWS string issued by the server.
	Token string `json:"token"`

	// Profile is the cached identity, nil when the profile key is missing
	// from the session store. A session with a token but no profile is
	// treated as authenticated for routing purposes, but all role checks
	// must fail closed.
	Profile *User `json:"profile,omitempty"`

	// SavedAt is when the session was persisted locally.
	SavedAt time.Time `json:"saved_at"`
}

// HasToken reports whether any token is held at all. Presence of a token is
// the sole authentication signal consulted by the route guard.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// Role returns the cached role, failing closed to the empty role when the
// profile snapshot is missing.
func (s Session) Role() Role {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Role
}
