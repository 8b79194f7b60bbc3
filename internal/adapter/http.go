package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests. Safe for concurrent use with the background session watcher.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// Signup implements [ServerAdapter]. It POSTs the request to
// POST /auth/signup and, on success, stores the token from the response body
// via SetToken.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and, on success, stores the token from the response body
// via SetToken. The server's 401 for bad credentials surfaces as
// [ErrUnauthorized].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Me implements [ServerAdapter]. It GETs /auth/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var profile models.User
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return profile, nil
}

// ListUsers implements [ServerAdapter]. It GETs /api/users with paging and
// search query parameters. Requires an admin token.
func (h *httpServerAdapter) ListUsers(ctx context.Context, req models.ListUsersRequest) (models.UserListResponse, error) {
	request := h.authedRequest(ctx)
	if req.Page > 0 {
		request.SetQueryParam("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		request.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}
	if req.Search != "" {
		request.SetQueryParam("search", req.Search)
	}

	resp, err := request.Get("/api/users/")
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserListResponse{}, err
	}

	var listing models.UserListResponse
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return models.UserListResponse{}, fmt.Errorf("decode list users response: %w", err)
	}

	return listing, nil
}

// UpdateUser implements [ServerAdapter]. It PATCHes the partial update to
// PATCH /api/users/{id}. Requires an admin token.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("decode update user response: %w", err)
	}

	return updated, nil
}

// DeleteUser implements [ServerAdapter]. It sends DELETE /api/users/{id}.
// Requires an admin token.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
