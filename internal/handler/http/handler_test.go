package http

import (
	"context"
	"net/http/httptest"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/models"
	"github.com/go-chi/chi/v5"
)

// ─────────────────────────────────────────────
// Mocks: service.AuthService / service.UserService
// ─────────────────────────────────────────────

type mockAuthService struct {
	signUpFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockUserService struct {
	getFn          func(ctx context.Context, userID int64) (models.User, error)
	listFn         func(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error)
	updateFn       func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	deleteFn       func(ctx context.Context, userID int64) error
	requireAdminFn func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return models.UserListResponse{}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, update)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

func (m *mockUserService) RequireAdmin(ctx context.Context, userID int64) error {
	if m.requireAdminFn != nil {
		return m.requireAdminFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(auth *mockAuthService, user *mockUserService) *chi.Mux {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if user == nil {
		user = &mockUserService{}
	}
	h := NewHandler(&service.Services{Auth: auth, User: user}, logger.Nop())
	return h.Init()
}

func newTestServer(auth *mockAuthService, user *mockUserService) *httptest.Server {
	return httptest.NewServer(newTestRouter(auth, user))
}
