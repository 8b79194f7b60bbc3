// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dreamclick/dreamclick/internal/adapter"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/models"
)

// clientAuthService implements [ClientAuthService]. It is the single writer
// of the persisted session: the in-memory snapshot and the session store are
// only ever updated together, under the mutex, so the background expiry
// watcher and the UI always agree on whether a session exists.
type clientAuthService struct {
	storages      *store.ClientStorages
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewClientAuthService creates a [ClientAuthService] over the local session
// store and the server adapter.
func NewClientAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		storages:      storages,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// Signup implements [ClientAuthService].
func (s *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.Session, error) {
	auth, err := s.serverAdapter.Signup(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("signup on server: %w", err)
	}

	return s.persistSession(ctx, auth)
}

// Login implements [ClientAuthService]. Nothing is written locally until the
// server has accepted the credentials, so a failed attempt cannot clobber an
// existing session.
func (s *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	auth, err := s.serverAdapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}

	return s.persistSession(ctx, auth)
}

// persistSession saves the token and profile and refreshes the in-memory
// snapshot.
func (s *clientAuthService) persistSession(ctx context.Context, auth models.AuthResponse) (models.Session, error) {
	if err := s.storages.Session.SaveToken(ctx, auth.Token); err != nil {
		return models.Session{}, fmt.Errorf("persist token: %w", err)
	}
	if err := s.storages.Session.SaveProfile(ctx, auth.User); err != nil {
		// The token is already on disk; a lost profile only degrades role
		// display, so keep the session and log the failure.
		s.logger.Warn().Err(err).Msg("persist profile failed")
	}

	profile := auth.User
	session := models.Session{Token: auth.Token, Profile: &profile, SavedAt: time.Now()}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info().Int64("user_id", profile.UserID).Str("role", profile.Role.String()).Msg("session established")

	return session, nil
}

// RestoreSession implements [ClientAuthService].
func (s *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := s.storages.Session.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoLocalSession) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	s.serverAdapter.SetToken(session.Token)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Debug().Str("role", session.Role().String()).Msg("session restored")

	return session, nil
}

// Session implements [ClientAuthService].
func (s *clientAuthService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// RefreshProfile implements [ClientAuthService].
func (s *clientAuthService) RefreshProfile(ctx context.Context) (models.User, error) {
	profile, err := s.serverAdapter.Me(ctx)
	if err != nil {
		s.HandleAuthError(ctx, err)
		return models.User{}, fmt.Errorf("refresh profile: %w", err)
	}

	if err = s.storages.Session.SaveProfile(ctx, profile); err != nil {
		s.logger.Warn().Err(err).Msg("persist refreshed profile failed")
	}

	s.mu.Lock()
	s.session.Profile = &profile
	s.mu.Unlock()

	return profile, nil
}

// Logout implements [ClientAuthService].
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.serverAdapter.ClearToken()

	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if err := s.storages.Session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info().Msg("session cleared")

	return nil
}

// HandleAuthError implements [ClientAuthService]. Any 401 means the server no
// longer honours the token, whatever the local expiry hint says, so the whole
// session is dropped.
func (s *clientAuthService) HandleAuthError(ctx context.Context, err error) bool {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return false
	}

	s.logger.Info().Msg("server rejected the session token, logging out")

	if logoutErr := s.Logout(ctx); logoutErr != nil {
		s.logger.Err(logoutErr).Msg("hard logout failed")
	}

	return true
}
