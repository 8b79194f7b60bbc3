package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "handler-test-sign-key"

// parseTokenLikeServer mirrors the production verification path so the
// middleware tests exercise real tokens, not canned mock verdicts.
func parseTokenLikeServer(_ context.Context, tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, testSignKey, "dreamclick")
}

func signedToken(t *testing.T, issuer, key string, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, 42, ttl, key)
	require.NoError(t, err)
	return token.SignedString
}

func doAuthedRequest(t *testing.T, srv *httptest.Server, authHeader string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

// Every authentication failure must be indistinguishable on the wire: same
// status, same body, regardless of whether the token is missing, malformed,
// expired, or forged.
func TestAuthMiddleware_UniformRejection(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenLikeServer}
	srv := newTestServer(auth, nil)
	defer srv.Close()

	expired := signedToken(t, "dreamclick", testSignKey, -time.Minute)
	forged := signedToken(t, "dreamclick", "attacker-key", time.Hour)
	wrongIssuer := signedToken(t, "someone-else", testSignKey, time.Hour)

	tests := []struct {
		name   string
		header string
	}{
		{"no authorization header", ""},
		{"scheme without token", "Bearer"},
		{"empty token value", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"forged signature", "Bearer " + forged},
		{"wrong issuer", "Bearer " + wrongIssuer},
	}

	var wantBody string
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doAuthedRequest(t, srv, tt.header)

			require.Equal(t, http.StatusUnauthorized, status)
			if i == 0 {
				wantBody = body
				assert.JSONEq(t, `{"error":"authentication required"}`, body)
				return
			}
			assert.Equal(t, wantBody, body, "all 401 bodies must be byte-identical")
		})
	}
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenLikeServer}
	user := &mockUserService{
		getFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID, "user id must come from the token subject")
			return models.User{UserID: userID, Email: "alice@example.com"}, nil
		},
	}
	srv := newTestServer(auth, user)
	defer srv.Close()

	valid := signedToken(t, "dreamclick", testSignKey, time.Hour)

	status, body := doAuthedRequest(t, srv, "Bearer "+valid)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "alice@example.com")
}

// An expired token must produce a clean 401, never a panic or a 500.
func TestAuthMiddleware_ExpiredTokenNoPanic(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: parseTokenLikeServer}
	srv := newTestServer(auth, nil)
	defer srv.Close()

	expired := signedToken(t, "dreamclick", testSignKey, -24*time.Hour)

	status, _ := doAuthedRequest(t, srv, "Bearer "+expired)

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing token", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token", "Bearer ", "", ErrEmptyToken},
		{"bare token without scheme", "abc.def.ghi", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}
