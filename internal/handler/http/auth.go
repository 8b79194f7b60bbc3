package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.Auth.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSONError(w, msgEmailConflict, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.Auth.CreateToken(ctx, createdUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: createdUser, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	loggedInUser, err := h.services.Auth.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("login rejected")
			utils.WriteJSONError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.Auth.CreateToken(ctx, loggedInUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{User: loggedInUser, Token: token.SignedString}, http.StatusOK)
}

// me returns the profile of the authenticated account. The user ID comes from
// the verified token in the request context, never from the request body.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on authenticated route")
		utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	profile, err := h.services.User.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// The account behind a still-valid token is gone. Treat the
			// session as dead rather than leaking a 404.
			utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during profile lookup")
		utils.WriteJSONError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
