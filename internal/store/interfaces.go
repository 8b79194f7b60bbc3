// Package store implements persistence for DreamClick accounts: a
// PostgreSQL-backed user repository on the server and a SQLite-backed
// session store on the client.
package store

import (
	"context"

	"github.com/dreamclick/dreamclick/models"
)

// UserRepository is the data-access layer for account records.
//
// Implementations must map driver-level failures to the package sentinels:
// a unique-violation on the email column becomes [ErrEmailAlreadyExists],
// a missing row becomes [ErrNoUserWasFound].
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt, UpdatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns one page of accounts matching the request plus the
	// total match count across all pages.
	ListUsers(ctx context.Context, req models.ListUsersRequest) ([]models.User, int64, error)

	// UpdateUser applies a partial update and returns the updated record.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID int64) error

	// TouchLastLogin records a successful login time for the account.
	TouchLastLogin(ctx context.Context, userID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
