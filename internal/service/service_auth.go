// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
)

const (
	minNameLength     = 3
	maxNameLength     = 100
	minPasswordLength = 6
	maxPasswordLength = 100
)

// authService implements [AuthService] on top of the user repository. Token
// parameters (issuer, sign key, lifetime) and the bcrypt cost come from the
// auth config.
type authService struct {
	repository store.UserRepository
	logger     *logger.Logger
	authConfig config.Auth
}

// NewAuthService creates an [AuthService] backed by the given repository.
func NewAuthService(repository store.UserRepository, authConfig config.Auth, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		repository: repository,
		authConfig: authConfig,
		logger:     logger,
	}
}

// SignUp implements [AuthService].
func (s *authService) SignUp(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateSignup(req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.SignUp").Msg("signup validation failed")
		return models.User{}, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEndUser
	}

	hash, err := utils.HashPassword(req.Password, s.authConfig.BcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error: password hashing failed")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repository.CreateUser(ctx, models.User{
		Email:          strings.TrimSpace(req.Email),
		Name:           strings.TrimSpace(req.Name),
		PasswordHash:   hash,
		Role:           role,
		Phone:          req.Phone,
		BillingAddress: req.BillingAddress,
		CreatorProfile: req.CreatorProfile,
	})
	if err != nil {
		// ErrEmailAlreadyExists passes through for the handler to map.
		return models.User{}, err
	}

	log.Info().Int64("user_id", created.UserID).Str("role", created.Role.String()).Msg("account created")

	return created.Sanitized(), nil
}

// Login implements [AuthService]. The not-found and wrong-password branches
// deliberately collapse into one error; only the debug log keeps the detail.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateLogin(req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("login validation failed")
		return models.User{}, err
	}

	foundUser, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("func", "*authService.Login").Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Debug().Int64("user_id", foundUser.UserID).Str("func", "*authService.Login").Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Debug().Int64("user_id", foundUser.UserID).Str("func", "*authService.Login").Msg("login attempt for deactivated account")
		return models.User{}, ErrInvalidCredentials
	}

	if err = s.repository.TouchLastLogin(ctx, foundUser.UserID); err != nil {
		// Best effort. A failed timestamp write must not block the login.
		log.Warn().Err(err).Int64("user_id", foundUser.UserID).Msg("last login update failed")
	} else {
		foundUser.LastLogin = time.Now()
	}

	log.Info().Int64("user_id", foundUser.UserID).Msg("login successful")

	return foundUser.Sanitized(), nil
}

// CreateToken implements [AuthService].
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(
		s.authConfig.TokenIssuer,
		user.UserID,
		s.authConfig.TokenDuration,
		s.authConfig.TokenSignKey,
	)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authService.CreateToken").Msg("error: token signing failed")
		return models.Token{}, ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken implements [AuthService].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.authConfig.TokenSignKey, s.authConfig.TokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// validateSignup enforces the account creation rules. Admin accounts are not
// self-service; they are promoted by an existing admin via the user update
// endpoint.
func validateSignup(req models.SignupRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < minNameLength || len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidDataProvided, minNameLength, maxNameLength)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: malformed email address", ErrInvalidDataProvided)
	}

	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidDataProvided, minPasswordLength, maxPasswordLength)
	}

	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidDataProvided)
	}

	switch req.Role {
	case "", models.RoleEndUser, models.RoleContentCreator:
	default:
		return fmt.Errorf("%w: role must be %q or %q", ErrInvalidDataProvided, models.RoleEndUser, models.RoleContentCreator)
	}

	return nil
}

func validateLogin(req models.LoginRequest) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: malformed email address", ErrInvalidDataProvided)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	return nil
}
