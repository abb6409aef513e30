package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23: integrity constraint violation.
const pgIntegrityClass = "23"

// IsKnownConstraint reports whether err is an integrity failure raised by the
// store, as opposed to an unexpected one.
func IsKnownConstraint(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == pgIntegrityClass
	}

	return false
}

// TranslateConstraint turns a known constraint violation into an internal
// business error carrying the store's message. Other errors pass through.
func TranslateConstraint(err error) error {
	if !IsKnownConstraint(err) {
		return err
	}
	return InternalErr("database_constraint", err.Error())
}
