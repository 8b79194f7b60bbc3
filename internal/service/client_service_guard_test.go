package service

import (
	"testing"
	"time"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard() *clientGuardService {
	return NewClientGuardService(logger.Nop()).(*clientGuardService)
}

func guardToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("dreamclick", 1, ttl, "guard-test-key")
	require.NoError(t, err)
	return token.SignedString
}

func sessionWith(token string, role models.Role) models.Session {
	session := models.Session{Token: token}
	if role != "" {
		session.Profile = &models.User{UserID: 1, Role: role}
	}
	return session
}

func TestGuard_CheckAccess(t *testing.T) {
	guard := newTestGuard()

	valid := guardToken(t, time.Hour)
	expired := guardToken(t, -time.Minute)

	tests := []struct {
		name         string
		session      models.Session
		route        models.Route
		wantVerdict  models.GuardVerdict
		wantRedirect models.Route
	}{
		{
			name:        "anonymous on welcome",
			session:     models.Session{},
			route:       models.RouteWelcome,
			wantVerdict: models.GuardAllowed,
		},
		{
			name:        "anonymous on login",
			session:     models.Session{},
			route:       models.RouteLogin,
			wantVerdict: models.GuardAllowed,
		},
		{
			name:         "anonymous on dashboard",
			session:      models.Session{},
			route:        models.RouteDashboard,
			wantVerdict:  models.GuardDeniedUnauthenticated,
			wantRedirect: models.RouteLogin,
		},
		{
			name:         "expired token on dashboard",
			session:      sessionWith(expired, models.RoleEndUser),
			route:        models.RouteDashboard,
			wantVerdict:  models.GuardDeniedUnauthenticated,
			wantRedirect: models.RouteLogin,
		},
		{
			name:         "malformed token on dashboard",
			session:      sessionWith("garbage.token.here", models.RoleEndUser),
			route:        models.RouteDashboard,
			wantVerdict:  models.GuardDeniedUnauthenticated,
			wantRedirect: models.RouteLogin,
		},
		{
			name:        "end user on dashboard",
			session:     sessionWith(valid, models.RoleEndUser),
			route:       models.RouteDashboard,
			wantVerdict: models.GuardAllowed,
		},
		{
			name:         "end user on admin users",
			session:      sessionWith(valid, models.RoleEndUser),
			route:        models.RouteAdminUsers,
			wantVerdict:  models.GuardDeniedForbidden,
			wantRedirect: models.RouteDashboard,
		},
		{
			name:         "content creator on admin users",
			session:      sessionWith(valid, models.RoleContentCreator),
			route:        models.RouteAdminUsers,
			wantVerdict:  models.GuardDeniedForbidden,
			wantRedirect: models.RouteDashboard,
		},
		{
			name:        "admin on admin users",
			session:     sessionWith(valid, models.RoleAdmin),
			route:       models.RouteAdminUsers,
			wantVerdict: models.GuardAllowed,
		},
		{
			name:         "missing profile fails closed on admin route",
			session:      sessionWith(valid, ""),
			route:        models.RouteAdminUsers,
			wantVerdict:  models.GuardDeniedForbidden,
			wantRedirect: models.RouteDashboard,
		},
		{
			name:         "expired session on admin route redirects to login not dashboard",
			session:      sessionWith(expired, models.RoleAdmin),
			route:        models.RouteAdminUsers,
			wantVerdict:  models.GuardDeniedUnauthenticated,
			wantRedirect: models.RouteLogin,
		},
		{
			name:         "authenticated user on login bounces to dashboard",
			session:      sessionWith(valid, models.RoleEndUser),
			route:        models.RouteLogin,
			wantVerdict:  models.GuardDeniedForbidden,
			wantRedirect: models.RouteDashboard,
		},
		{
			name:        "expired session may see login",
			session:     sessionWith(expired, models.RoleEndUser),
			route:       models.RouteLogin,
			wantVerdict: models.GuardAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.CheckAccess(tt.session, tt.route)

			assert.Equal(t, tt.wantVerdict, decision.Verdict)
			assert.Equal(t, tt.wantRedirect, decision.RedirectTo)
			if !decision.Allowed() && decision.Verdict != models.GuardAllowed {
				assert.Equal(t, tt.route, decision.From, "denials must preserve the requested route")
			}
		})
	}
}

// Guard decisions are pure: asking twice changes nothing.
func TestGuard_CheckAccess_Idempotent(t *testing.T) {
	guard := newTestGuard()
	session := sessionWith(guardToken(t, time.Hour), models.RoleEndUser)

	first := guard.CheckAccess(session, models.RouteAdminUsers)
	second := guard.CheckAccess(session, models.RouteAdminUsers)

	assert.Equal(t, first, second)
}

// The expiry boundary: a token is usable strictly before its exp claim.
func TestGuard_SessionUsable_ExpiryBoundary(t *testing.T) {
	guard := newTestGuard()

	token := guardToken(t, time.Hour)
	expiresAt, err := utils.DecodeTokenExpiry(token)
	require.NoError(t, err)

	guard.now = func() time.Time { return expiresAt.Add(-time.Second) }
	assert.True(t, guard.sessionUsable(models.Session{Token: token}))

	guard.now = func() time.Time { return expiresAt }
	assert.False(t, guard.sessionUsable(models.Session{Token: token}))
}
