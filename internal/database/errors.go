package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRowReturned is returned when an INSERT or UPDATE with a RETURNING
// clause yields no row. That can only happen through a programming error
// (wrong statement, wrong where predicate on an insert) and is never a
// retryable condition.
var ErrNoRowReturned = errors.New("write with returning clause produced no row")

// ConnectionError reports a failure to establish or verify a connection
// pool for one logical database.
type ConnectionError struct {
	Database string
	Role     string // "master" or "replica"
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database %s (%s): %v", e.Database, e.Role, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IntegrityError reports a storage-level constraint violation (unique,
// foreign key, not-null, check). It is surfaced to the caller untouched;
// repositories never retry on it.
type IntegrityError struct {
	Constraint string
	Code       string
	Err        error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("integrity violation on %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("integrity violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// translateError wraps integrity-class postgres errors into *IntegrityError
// and leaves everything else alone.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &IntegrityError{Constraint: pgErr.ConstraintName, Code: pgErr.Code, Err: err}
	}
	return err
}

// IsIntegrityError reports whether err is a constraint violation.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie) && ie.Code == "23505"
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie) && ie.Code == "23503"
}
