package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup. Password and
// ConfirmPassword must match; Role is optional and defaults to end_user.
type SignupRequest struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirmPassword"`
	Role            Role           `json:"role,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	BillingAddress  BillingAddress `json:"billing_address,omitzero"`
	CreatorProfile  CreatorProfile `json:"creator_profile,omitzero"`
}

// UserUpdate is a partial update for an existing account. Only non-nil
// fields are written; nil fields keep their current value.
type UserUpdate struct {
	Name          *string `json:"name,omitempty"`
	Role          *Role   `json:"role,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	EmailVerified *bool   `json:"email_verified,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Role == nil && u.Phone == nil &&
		u.IsActive == nil && u.EmailVerified == nil
}

// ListUsersRequest holds pagination and search parameters for the admin
// user listing. Zero values fall back to the server defaults.
type ListUsersRequest struct {
	// Page is 1-based.
	Page int `json:"page"`

	// Limit is the page size; capped server-side.
	Limit int `json:"limit"`

	// Search filters by name or email substring, case-insensitive.
	Search string `json:"search"`
}
