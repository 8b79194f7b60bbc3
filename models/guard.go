package models

// GuardVerdict is the outcome of a client-side navigation guard. Modelling
// the denial reason explicitly lets each caller pick its own redirect target
// instead of conflating "not logged in" with "logged in but not allowed".
type GuardVerdict int

const (
	// GuardAllowed means the requested screen may be rendered.
	GuardAllowed GuardVerdict = iota

	// GuardDeniedUnauthenticated means no usable session exists: the token
	// is absent, malformed, or expired. Callers should redirect to login.
	GuardDeniedUnauthenticated

	// GuardDeniedForbidden means the session is valid but the cached role
	// does not grant access. Callers should redirect to the default
	// authenticated page, not to login.
	GuardDeniedForbidden
)

func (v GuardVerdict) String() string {
	switch v {
	case GuardAllowed:
		return "allowed"
	case GuardDeniedUnauthenticated:
		return "denied_unauthenticated"
	case GuardDeniedForbidden:
		return "denied_forbidden"
	}
	return "unknown"
}

// Route identifies a client screen for navigation-guard purposes.
type Route string

const (
	RouteWelcome    Route = "/"
	RouteLogin      Route = "/login"
	RouteSignup     Route = "/signup"
	RouteDashboard  Route = "/dashboard"
	RouteAdminUsers Route = "/admin/users"
)

func (r Route) String() string {
	return string(r)
}

// GuardDecision pairs a verdict with the redirect the caller should perform
// when the verdict is a denial.
type GuardDecision struct {
	Verdict GuardVerdict

	// RedirectTo is the route to navigate to on denial ("" when allowed).
	RedirectTo Route

	// From is the originally requested route, preserved so the login screen
	// can return the user after a successful authentication.
	From Route

	// Reason is a human-readable explanation surfaced on the target screen.
	Reason string
}

// Allowed reports whether the guarded screen may be rendered.
func (d GuardDecision) Allowed() bool {
	return d.Verdict == GuardAllowed
}
