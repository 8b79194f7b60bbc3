package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dreamclick/dreamclick/models"
)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{
	"user_id",
	"email",
	"name",
	"password_hash",
	"role",
	"phone",
	"billing_address",
	"creator_profile",
	"is_active",
	"email_verified",
	"last_login",
	"created_at",
	"updated_at",
}

const (
	createUser = `INSERT INTO users (email, name, password_hash, role, phone, billing_address, creator_profile)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING user_id, email, name, password_hash, role, phone, billing_address, creator_profile,
	          is_active, email_verified, last_login, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, role, phone, billing_address, creator_profile,
	          is_active, email_verified, last_login, created_at, updated_at
	FROM users
	WHERE LOWER(email) = LOWER($1);`

	findUserByID = `SELECT user_id, email, name, password_hash, role, phone, billing_address, creator_profile,
	          is_active, email_verified, last_login, created_at, updated_at
	FROM users
	WHERE user_id = $1;`

	touchLastLogin = `UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// ($1-style placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListUsersQuery builds the paginated, optionally searched SELECT for
// the admin user listing. Search matches name or email, case-insensitively.
func buildListUsersQuery(req models.ListUsersRequest) (string, []any, error) {
	builder := psql.
		Select(userColumns...).
		From("users").
		OrderBy("user_id ASC").
		Limit(uint64(req.Limit)).
		Offset(uint64((req.Page - 1) * req.Limit))

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	return builder.ToSql()
}

// buildCountUsersQuery builds the total-count companion of the listing query.
func buildCountUsersQuery(req models.ListUsersRequest) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("users")

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	return builder.ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE touching only the fields set
// in update, always bumping updated_at, and returning the full row.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	builder := psql.
		Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.EmailVerified != nil {
		builder = builder.Set("email_verified", *update.EmailVerified)
	}

	builder = builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix(`RETURNING user_id, email, name, password_hash, role, phone, billing_address, creator_profile,
	          is_active, email_verified, last_login, created_at, updated_at`)

	return builder.ToSql()
}
