// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

// Package adapter provides transport-layer abstractions for communicating
// with the DreamClick server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/dreamclick/dreamclick/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the DreamClick
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Signup or Login, and
	// on startup when a persisted session is restored.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// ClearToken drops the stored bearer token. Subsequent authenticated
	// requests go out without an Authorization header.
	ClearToken()

	// Signup creates a new account. On success the returned token is stored
	// via SetToken (signup auto-logs-in) and the created profile is returned
	// together with the raw token string.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates the credentials. On success the returned token is
	// stored via SetToken. Returns [ErrUnauthorized] (wrapped) when the
	// server rejects the credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me fetches the profile of the authenticated account.
	Me(ctx context.Context) (models.User, error)

	// ListUsers fetches a page of accounts. Admin only; the server answers
	// 403 for anyone else, surfaced as [ErrForbidden].
	ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error)

	// UpdateUser applies a partial update to an account. Admin only.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, userID int64) error
}
