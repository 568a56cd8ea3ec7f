package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation   = "23505"
	numericOutOfRange = "22003"
	checkViolation    = "23514"
)

func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsDataViolation reports a value Postgres refused: a number too large for its
// column or a row breaking a CHECK constraint.
func IsDataViolation(err error) bool {
	return hasCode(err, numericOutOfRange) || hasCode(err, checkViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
