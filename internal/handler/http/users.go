package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
	"github.com/go-chi/chi/v5"
)

// pathUserID parses the {userID} route parameter.
func pathUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	listing, err := h.services.User.ListUsers(ctx, models.ListUsersRequest{
		Page:   page,
		Limit:  limit,
		Search: query.Get("search"),
	})
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathUserID(r)
	if err != nil {
		utils.WriteJSONError(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	profile, err := h.services.User.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user lookup")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathUserID(r)
	if err != nil {
		utils.WriteJSONError(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.User.UpdateUser(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
			utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathUserID(r)
	if err != nil {
		utils.WriteJSONError(w, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	if err = h.services.User.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user delete")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
