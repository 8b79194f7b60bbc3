// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package http

import "errors"

// Sentinel errors used while parsing the "Authorization" HTTP header. They
// are logged for operators but never surfaced in the response body: every
// authentication failure answers with the same uniform 401 payload.
var (
	// ErrEmptyAuthorizationHeader is recorded when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is recorded when the header is present
	// but cannot be split into at least two space-separated parts.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is recorded when the header contains the scheme prefix
	// but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Response messages. The unauthorized message is shared by every 401 the
// token middleware produces so a probing client cannot tell a missing token
// from a forged or an expired one.
const (
	msgUnauthorized  = "authentication required"
	msgForbidden     = "admin role required"
	msgInvalidJSON   = "invalid JSON was passed"
	msgInternalError = "internal server error"
	msgEmailConflict = "email already registered"
	msgUserNotFound  = "user not found"
	msgInvalidUserID = "invalid user id"
)
