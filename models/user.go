package models

import "time"

// User represents a DreamClick account. It is both the persistence model and
// the public profile returned by the API; credential material is excluded from
// JSON unconditionally and must additionally be stripped via [User.Sanitized]
// before the record leaves the service layer.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique account identifier used during authentication.
	// Stored lowercased and trimmed.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized; never returned to clients.
	PasswordHash string `json:"-"`

	// Role determines what the account may do. See [Role] for the
	// accepted values. Defaults to [RoleEndUser].
	Role Role `json:"role"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// BillingAddress is optional payment contact data.
	BillingAddress BillingAddress `json:"billing_address,omitzero"`

	// CreatorProfile holds public data for content-creator accounts.
	CreatorProfile CreatorProfile `json:"creator_profile,omitzero"`

	// IsActive marks whether the account may authenticate at all.
	IsActive bool `json:"is_active"`

	// EmailVerified reports whether the address has been confirmed.
	EmailVerified bool `json:"email_verified"`

	// LastLogin is the time of the most recent successful login.
	// Zero for accounts that have never logged in.
	LastLogin time.Time `json:"last_login,omitzero"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillingAddress is an optional postal address attached to the account.
type BillingAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// CreatorProfile holds the public face of a content-creator account.
type CreatorProfile struct {
	Bio         string      `json:"bio,omitempty"`
	Avatar      string      `json:"avatar,omitempty"`
	Website     string      `json:"website,omitempty"`
	SocialLinks SocialLinks `json:"social_links,omitzero"`
	IsVerified  bool        `json:"is_verified,omitempty"`
}

// SocialLinks groups external profile URLs shown on a creator page.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Sanitized returns a copy of the user safe to hand to clients: the password
// hash is cleared. JSON tags already hide the hash, but clearing it here keeps
// credential material from travelling through layers that do not need it.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
