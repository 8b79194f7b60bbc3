package models

// Role is the coarse capability level of an account.
type Role string

const (
	// RoleEndUser is the default role for new signups: browse and purchase.
	RoleEndUser Role = "end_user"

	// RoleContentCreator may publish templates in addition to end-user rights.
	RoleContentCreator Role = "content_creator"

	// RoleAdmin may manage users and templates.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEndUser, RoleContentCreator, RoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants access to admin-only surfaces.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
