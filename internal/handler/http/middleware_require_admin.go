package http

import (
	"errors"
	"net/http"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/internal/utils"
)

// requireAdmin gates admin routes on the account's CURRENT role. The role is
// read from the database on every request; neither the token nor anything the
// client sends carries authority. A role revoked after login therefore takes
// effect on the next request, not at token expiry.
//
// Runs after [Handler.auth], which guarantees a user ID in the context.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("no user id in context on admin route")
			unauthorized(w)
			return
		}

		if err := h.services.User.RequireAdmin(ctx, userID); err != nil {
			switch {
			case errors.Is(err, service.ErrForbidden):
				log.Debug().Int64("user_id", userID).Msg("admin route denied")
				utils.WriteJSONError(w, msgForbidden, http.StatusForbidden)
				return
			case errors.Is(err, store.ErrNoUserWasFound):
				// Valid token, vanished account. The session is dead.
				log.Debug().Int64("user_id", userID).Msg("token for deleted account")
				unauthorized(w)
				return
			default:
				log.Err(err).Msg("unexpected error occurred during role check")
				utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
