package service

import (
	"context"
	"fmt"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/store"
	"github.com/dreamclick/dreamclick/models"
)

const (
	defaultListPage  = 1
	defaultListLimit = 20
	maxListLimit     = 100
)

// userService implements [UserService].
type userService struct {
	repository store.UserRepository
	logger     *logger.Logger
}

// NewUserService creates a [UserService] backed by the given repository.
func NewUserService(repository store.UserRepository, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		repository: repository,
		logger:     logger,
	}
}

// GetUser implements [UserService].
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := s.repository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	return foundUser.Sanitized(), nil
}

// ListUsers implements [UserService]. Out-of-range paging values are clamped
// rather than rejected.
func (s *userService) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error) {
	if req.Page < 1 {
		req.Page = defaultListPage
	}
	if req.Limit < 1 {
		req.Limit = defaultListLimit
	}
	if req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}

	users, total, err := s.repository.ListUsers(ctx, req)
	if err != nil {
		return models.UserListResponse{}, err
	}

	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	return models.UserListResponse{
		Users: sanitized,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

// UpdateUser implements [UserService].
func (s *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.User{}, fmt.Errorf("%w: no fields to update", ErrInvalidDataProvided)
	}
	if update.Role != nil && !update.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, *update.Role)
	}

	updated, err := s.repository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Int64("user_id", userID).Msg("account updated")

	return updated.Sanitized(), nil
}

// DeleteUser implements [UserService].
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.repository.DeleteUser(ctx, userID); err != nil {
		return err
	}

	log.Info().Int64("user_id", userID).Msg("account deleted")

	return nil
}

// RequireAdmin implements [UserService]. A deleted account passes
// [store.ErrNoUserWasFound] through so the caller can treat the session as
// unauthenticated rather than merely under-privileged.
func (s *userService) RequireAdmin(ctx context.Context, userID int64) error {
	foundUser, err := s.repository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !foundUser.Role.IsAdmin() || !foundUser.IsActive {
		return ErrForbidden
	}

	return nil
}
