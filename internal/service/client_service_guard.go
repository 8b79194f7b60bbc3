package service

import (
	"time"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
)

// Denial reasons surfaced on the redirect target screen.
const (
	reasonLoginRequired  = "please log in to continue"
	reasonSessionExpired = "your session has expired, please log in again"
	reasonAdminOnly      = "this area requires an administrator account"
)

// routeRequirement captures what a route demands from the session.
type routeRequirement struct {
	auth  bool
	admin bool
}

// routePolicy is the full client navigation policy. Routes absent from the
// map are public.
var routePolicy = map[models.Route]routeRequirement{
	models.RouteDashboard:  {auth: true},
	models.RouteAdminUsers: {auth: true, admin: true},
}

// clientGuardService implements [ClientGuardService].
type clientGuardService struct {
	logger *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewClientGuardService creates the navigation guard.
func NewClientGuardService(logger *logger.Logger) ClientGuardService {
	return &clientGuardService{logger: logger, now: time.Now}
}

// CheckAccess implements [ClientGuardService].
//
// Order of checks:
//  1. An authenticated user heading to login or signup is bounced to the
//     dashboard; re-authenticating in a live session is never useful.
//  2. Routes demanding authentication reject sessions whose token is
//     missing, undecodable, or past its expiry claim.
//  3. Routes demanding the admin role reject sessions whose cached profile
//     role is anything else. A missing profile fails closed.
func (g *clientGuardService) CheckAccess(session models.Session, route models.Route) models.GuardDecision {
	requirement := routePolicy[route]
	authenticated := g.sessionUsable(session)

	if !requirement.auth {
		if authenticated && (route == models.RouteLogin || route == models.RouteSignup) {
			return models.GuardDecision{
				Verdict:    models.GuardDeniedForbidden,
				RedirectTo: models.RouteDashboard,
				From:       route,
			}
		}
		return models.GuardDecision{Verdict: models.GuardAllowed}
	}

	if !authenticated {
		reason := reasonLoginRequired
		if session.HasToken() {
			reason = reasonSessionExpired
		}
		g.logger.Debug().Str("route", route.String()).Msg("guard: unauthenticated")
		return models.GuardDecision{
			Verdict:    models.GuardDeniedUnauthenticated,
			RedirectTo: models.RouteLogin,
			From:       route,
			Reason:     reason,
		}
	}

	if requirement.admin && !session.Role().IsAdmin() {
		g.logger.Debug().Str("route", route.String()).Str("role", session.Role().String()).Msg("guard: forbidden")
		return models.GuardDecision{
			Verdict:    models.GuardDeniedForbidden,
			RedirectTo: models.RouteDashboard,
			From:       route,
			Reason:     reasonAdminOnly,
		}
	}

	return models.GuardDecision{Verdict: models.GuardAllowed}
}

// sessionUsable reports whether the session carries a token whose expiry
// claim is still in the future. The signature is NOT checked here; only the
// server can do that, and it will.
func (g *clientGuardService) sessionUsable(session models.Session) bool {
	if !session.HasToken() {
		return false
	}

	expiresAt, err := utils.DecodeTokenExpiry(session.Token)
	if err != nil {
		// Undecodable tokens are dead weight.
		return false
	}

	return expiresAt.After(g.now())
}
