package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes. The service layer matches
// them with [errors.Is]; [ErrUnauthorized] in particular triggers the hard
// logout of the local session.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
