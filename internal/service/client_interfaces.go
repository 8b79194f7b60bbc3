package service

import (
	"context"

	"github.com/dreamclick/dreamclick/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for authentication and
// local session management. Implementations own the persisted session: a
// successful login or signup writes it, a logout or a server-side 401 clears
// it, and nothing else mutates it.
type ClientAuthService interface {
	// Signup creates an account on the server and, on success, persists the
	// issued token and profile locally. The local session is untouched when
	// the server rejects the request.
	Signup(ctx context.Context, req models.SignupRequest) (models.Session, error)

	// Login authenticates against the server and, on success, persists the
	// issued token and profile locally. The local session is untouched when
	// the credentials are rejected.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// RestoreSession loads the persisted session, if any, and arms the
	// server adapter with its token. Returns [store.ErrNoLocalSession]
	// (wrapped) when nothing is persisted.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Session returns the current in-memory session snapshot. The zero
	// session means signed out.
	Session() models.Session

	// RefreshProfile re-fetches the profile from the server and updates the
	// local snapshot. A 401 from the server hard-logs-out the session.
	RefreshProfile(ctx context.Context) (models.User, error)

	// Logout clears the persisted session and the adapter token. Logging out
	// while signed out is a no-op.
	Logout(ctx context.Context) error

	// HandleAuthError inspects err after any server call. When it carries
	// [adapter.ErrUnauthorized] the local session is cleared (hard logout)
	// and true is returned so callers can route to the login screen.
	HandleAuthError(ctx context.Context, err error) bool
}

// ClientGuardService decides whether the current session may enter a client
// route. Decisions are pure: evaluating a guard never mutates the session,
// so guarding the same route twice yields the same verdict.
//
// The guard is a UX device. It reads the token expiry WITHOUT verifying the
// signature, because the client does not hold the server's key; the server
// re-verifies every request regardless of what the guard allowed.
type ClientGuardService interface {
	// CheckAccess evaluates the route's requirements against the session and
	// returns the verdict with the redirect target for denials.
	CheckAccess(session models.Session, route models.Route) models.GuardDecision
}

// ClientUserService exposes the admin account-management operations to the
// client UI. Every call requires an admin token; a 401 response hard-logs-out
// the local session via [ClientAuthService.HandleAuthError].
type ClientUserService interface {
	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
