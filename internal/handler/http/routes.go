package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Three tiers of routes:
//   - public: signup and login, no token required;
//   - authenticated: any valid token;
//   - admin: valid token AND a fresh database role check per request.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
	})

	// routes for any authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/me", h.me)
	})

	// admin-only account management
	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireAdmin)
		r.Get("/", h.listUsers)
		r.Get("/{userID}", h.getUser)
		r.Patch("/{userID}", h.updateUser)
		r.Delete("/{userID}", h.deleteUser)
	})

	return router
}
