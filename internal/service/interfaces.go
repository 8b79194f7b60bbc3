package service

import (
	"context"

	"github.com/dreamclick/dreamclick/models"
)

// AuthService authenticates credentials and manages the session-token
// lifecycle. Profiles returned by SignUp and Login are sanitized: they never
// carry the password hash.
type AuthService interface {
	// SignUp validates the request, hashes the password, persists the new
	// account, and returns the created profile. The caller issues the token
	// (auto-login after signup) via CreateToken.
	SignUp(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login verifies the credentials and returns the matching profile.
	// Unknown email and wrong password produce the same
	// [ErrInvalidCredentials] so callers cannot enumerate accounts.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string (signature, issuer, expiry).
	// Every validation failure is normalised to [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves profile reads and the admin-only account management
// operations.
type UserService interface {
	// GetUser returns one sanitized profile.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns a sanitized, paginated account listing.
	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error)

	// UpdateUser applies a partial update and returns the updated profile.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID int64) error

	// RequireAdmin checks the CURRENT role of the account against the
	// database. The token never carries the role and the client-cached role
	// is cosmetic, so this fresh lookup is the only authorization source for
	// admin routes. Returns [ErrForbidden] when the role is not admin.
	RequireAdmin(ctx context.Context, userID int64) error
}
