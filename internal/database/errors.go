package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

// Postgres error codes that mean another transaction got in the way.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Wrap adds the operation to err and turns concurrency failures into
// apperr.ConflictError so callers can tell them apart from other storage errors.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return apperr.Conflict(op, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
