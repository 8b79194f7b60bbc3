package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, listing, and mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full users row. JSONB columns are decoded from their
// raw bytes; last_login maps NULL to the zero time.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user       models.User
		billingRaw []byte
		creatorRaw []byte
		lastLogin  sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.Phone,
		&billingRaw,
		&creatorRaw,
		&user.IsActive,
		&user.EmailVerified,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if len(billingRaw) > 0 {
		if err = json.Unmarshal(billingRaw, &user.BillingAddress); err != nil {
			return models.User{}, fmt.Errorf("decode billing address: %w", err)
		}
	}
	if len(creatorRaw) > 0 {
		if err = json.Unmarshal(creatorRaw, &user.CreatorProfile); err != nil {
			return models.User{}, fmt.Errorf("decode creator profile: %w", err)
		}
	}
	if lastLogin.Valid {
		user.LastLogin = lastLogin.Time
	}

	return user, nil
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	billingRaw, err := json.Marshal(user.BillingAddress)
	if err != nil {
		return models.User{}, fmt.Errorf("encode billing address: %w", err)
	}
	creatorRaw, err := json.Marshal(user.CreatorProfile)
	if err != nil {
		return models.User{}, fmt.Errorf("encode creator profile: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Name, user.PasswordHash, string(user.Role), user.Phone, billingRaw, creatorRaw)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case "":
			return models.User{}, err
		default:
			r.logClassification(log, err)
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves an account whose email matches, ignoring case.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		r.logClassification(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves an account by its identifier. Missing rows map to
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		r.logClassification(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns the requested page of accounts and the total count of
// accounts matching the search.
func (r *userRepository) ListUsers(ctx context.Context, req models.ListUsersRequest) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(req)
	if err != nil {
		return nil, 0, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: user list query failed")
		r.logClassification(log, err)
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, req.Limit)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	countQuery, countArgs, err := buildCountUsersQuery(req)
	if err != nil {
		return nil, 0, fmt.Errorf("build count users query: %w", err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: user count query failed")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, total, nil
}

// UpdateUser applies the partial update and returns the updated record.
// Missing rows map to [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		return models.User{}, fmt.Errorf("build update user query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: user update failed")
		r.logClassification(log, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes an account; deleting a non-existent account returns
// [ErrNoUserWasFound].
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: user delete failed")
		r.logClassification(log, err)
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// TouchLastLogin records the current time as the account's last login.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchLastLogin, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: last login update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// logClassification notes whether the failed operation would be worth a
// retry, so operators can tell transient incidents from data problems.
func (r *userRepository) logClassification(log *logger.Logger, err error) {
	if r.db.errorClassificator == nil {
		return
	}
	retryable := r.db.errorClassificator.Classify(err) == Retryable
	log.Debug().Bool("retryable", retryable).Msg("classified DB error")
}
