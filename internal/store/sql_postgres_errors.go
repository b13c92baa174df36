package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It tags a failed database operation with the kind of well-known failure it
// represents so that callers can convert it into the matching response shape.
type ErrorClassification int

const (
	// Unclassified is the default classification for errors the store does
	// not recognise. Such errors are passed through untouched and end up at
	// the final error responder.
	Unclassified ErrorClassification = iota

	// UniquenessConflict indicates a unique-constraint violation
	// (e.g. duplicate email address on user creation).
	UniquenessConflict

	// FieldValidation indicates a model-level check enforced by the
	// database schema itself (NOT NULL or CHECK constraint violations).
	FieldValidation
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is
// not a PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	// Default: pass unrecognised errors through untouched.
	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based
// on the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Class 23 (integrity constraint violations) carries the domain meaning:
//   - unique_violation (23505) → [UniquenessConflict]
//   - not_null_violation (23502), check_violation (23514) → [FieldValidation]
//
// Any other code is classified as [Unclassified].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniquenessConflict

	case pgerrcode.NotNullViolation, // 23502
		pgerrcode.CheckViolation: // 23514
		return FieldValidation
	}

	return Unclassified
}

// columnMessages maps schema column names to the user-facing message used
// when the database itself rejects a row for that column. The wording
// matches the validation-chain messages so clients see one vocabulary.
var columnMessages = map[string]string{
	"first_name":    "First Name is required",
	"last_name":     "Last Name is required",
	"email_address": "Email address is required",
	"password_hash": "Password is required",
	"title":         "Please provide a value for the title field",
	"description":   "Please provide a value for the description input",
}

// fieldValidationError converts a FieldValidation-classified driver error
// into a [*validators.ValidationError] carrying the message for the column
// that the database rejected.
func fieldValidationError(pgErr *pgconn.PgError) *validators.ValidationError {
	message, ok := columnMessages[pgErr.ColumnName]
	if !ok {
		message = fmt.Sprintf("Please provide a value for the %s field", pgErr.ColumnName)
	}

	return &validators.ValidationError{Messages: []string{message}}
}
