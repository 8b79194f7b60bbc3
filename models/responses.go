package models

// AuthResponse is the success body of POST /auth/login and POST /auth/signup:
// the public profile plus the signed session token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the uniform JSON error envelope returned for every failed
// request. The message is intentionally generic on authentication failures so
// callers cannot distinguish a missing token from a forged or expired one.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserListResponse is the paginated body of GET /api/users.
type UserListResponse struct {
	// Users is the page of sanitized profiles.
	Users []User `json:"users"`

	// Total is the number of accounts matching the search across all pages.
	Total int64 `json:"total"`

	// Page is the 1-based page that was returned.
	Page int `json:"page"`

	// Limit is the page size that was applied.
	Limit int `json:"limit"`
}
