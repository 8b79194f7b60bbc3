package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dreamclick/dreamclick/internal/config"
	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ─────────────────────────────────────────────
// URL normalisation
// ─────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain host and port", "localhost:8080", "http://localhost:8080", false},
		{"full url", "https://api.dreamclick.io/", "https://api.dreamclick.io", false},
		{"empty", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Login / Signup
// ─────────────────────────────────────────────

func TestHTTPServerAdapter_Login_StoresToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			User:  models.User{UserID: 7, Email: req.Email},
			Token: "issued-token",
		})
	}))

	auth, err := a.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "p4ssword",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), auth.User.UserID)
	assert.Equal(t, "issued-token", a.Token(), "login must store the issued token")
}

func TestHTTPServerAdapter_Login_BadCredentials(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	}))

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.Empty(t, a.Token(), "a failed login must not store a token")
}

func TestHTTPServerAdapter_Signup_AutoLogin(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			User:  models.User{UserID: 11},
			Token: "fresh-token",
		})
	}))

	auth, err := a.Signup(context.Background(), models.SignupRequest{
		Name: "Alice", Email: "alice@example.com",
		Password: "p4ssword", ConfirmPassword: "p4ssword",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), auth.User.UserID)
	assert.Equal(t, "fresh-token", a.Token())
}

// ─────────────────────────────────────────────
// Authenticated requests
// ─────────────────────────────────────────────

func TestHTTPServerAdapter_Me_SendsBearerToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{UserID: 42, Email: "alice@example.com"})
	}))
	a.SetToken("stored-token")

	profile, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)
}

func TestHTTPServerAdapter_ClearToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "no header after ClearToken")
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
	}))
	a.SetToken("stored-token")
	a.ClearToken()

	_, err := a.Me(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPServerAdapter_ListUsers_QueryParams(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "alice", r.URL.Query().Get("search"))
		writeJSON(t, w, http.StatusOK, models.UserListResponse{Total: 1, Page: 2, Limit: 50})
	}))
	a.SetToken("admin-token")

	listing, err := a.ListUsers(context.Background(), models.ListUsersRequest{Page: 2, Limit: 50, Search: "alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), listing.Total)
}

func TestHTTPServerAdapter_ListUsers_Forbidden(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "admin role required"})
	}))
	a.SetToken("end-user-token")

	_, err := a.ListUsers(context.Background(), models.ListUsersRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHTTPServerAdapter_DeleteUser(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/users/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	a.SetToken("admin-token")

	err := a.DeleteUser(context.Background(), 5)

	require.NoError(t, err)
}
