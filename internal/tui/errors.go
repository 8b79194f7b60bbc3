package tui

import (
	"errors"

	"github.com/dreamclick/dreamclick/internal/adapter"
)

// humanizeAuthError turns adapter sentinels into short messages a terminal
// user can act on. Unknown errors pass through verbatim.
func humanizeAuthError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "invalid credentials or session no longer valid"
	case errors.Is(err, adapter.ErrForbidden):
		return "you do not have permission for this action"
	case errors.Is(err, adapter.ErrConflict):
		return "an account with this email already exists"
	case errors.Is(err, adapter.ErrBadRequest):
		return "the server rejected the request, check the entered values"
	case errors.Is(err, adapter.ErrNotFound):
		return "the requested account no longer exists"
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return "the server is unavailable, try again later"
	case err == nil:
		return ""
	}
	return err.Error()
}
