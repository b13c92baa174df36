package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) → [ErrEmailAlreadyExists].
//   - not_null_violation / check_violation → [*validators.ValidationError]
//     with the column-appropriate message.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.EmailAddress, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("pg_code", postgresError(err)).Msg("error: user insert failed")
		return models.User{}, r.classifyWriteError(err)
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.EmailAddress, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.classifyWriteError(err)
	}

	user.Password = ""

	return user, nil
}

// FindUserByEmail retrieves the user record whose email address matches.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, emailAddress)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.FirstName, &foundUser.LastName, &foundUser.EmailAddress, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// classifyWriteError converts a driver-level write error into the matching
// domain failure: [ErrEmailAlreadyExists] for uniqueness conflicts, a typed
// validation error for schema-level field checks, and a wrapped error for
// everything else.
func (r *userRepository) classifyWriteError(err error) error {
	switch r.db.classifier.Classify(err) {
	case UniquenessConflict:
		return ErrEmailAlreadyExists
	case FieldValidation:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fieldValidationError(pgErr)
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
