package service

import (
	"context"
	"fmt"

	"github.com/dreamclick/dreamclick/internal/adapter"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/models"
)

// clientUserService implements [ClientUserService]. It is a thin veneer over
// the adapter: the server makes every authorization decision, this side only
// reacts to the verdicts (hard logout on 401).
type clientUserService struct {
	serverAdapter adapter.ServerAdapter
	authService   ClientAuthService
	logger        *logger.Logger
}

// NewClientUserService creates a [ClientUserService].
func NewClientUserService(serverAdapter adapter.ServerAdapter, authService ClientAuthService, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		serverAdapter: serverAdapter,
		authService:   authService,
		logger:        logger,
	}
}

// ListUsers implements [ClientUserService].
func (s *clientUserService) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error) {
	listing, err := s.serverAdapter.ListUsers(ctx, req)
	if err != nil {
		s.authService.HandleAuthError(ctx, err)
		return models.UserListResponse{}, fmt.Errorf("list users: %w", err)
	}
	return listing, nil
}

// UpdateUser implements [ClientUserService].
func (s *clientUserService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	updated, err := s.serverAdapter.UpdateUser(ctx, userID, update)
	if err != nil {
		s.authService.HandleAuthError(ctx, err)
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	s.logger.Debug().Int64("user_id", userID).Msg("account updated from client")

	return updated, nil
}

// DeleteUser implements [ClientUserService].
func (s *clientUserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.serverAdapter.DeleteUser(ctx, userID); err != nil {
		s.authService.HandleAuthError(ctx, err)
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Debug().Int64("user_id", userID).Msg("account deleted from client")

	return nil
}
