package service

import "errors"

var (
	// ErrInvalidDataProvided marks a request that failed validation before
	// reaching business logic.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers unknown email, wrong password, and
	// deactivated accounts alike. Keeping them indistinguishable prevents
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps failures while signing a new token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single error class for every token
	// verification failure: expired, forged, malformed, wrong issuer.
	// Callers must not be able to tell which one occurred.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when an authenticated account lacks the role
	// required for the operation.
	ErrForbidden = errors.New("admin role required")
)
