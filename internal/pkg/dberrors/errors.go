package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the PostgreSQL SQLSTATE of a unique constraint violation
const UniqueViolation = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique violation error
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// IsDuplicateConstraintError checks if the error is a unique violation of the named constraint
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// Constraint returns the constraint named by a PostgreSQL error, or ""
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
