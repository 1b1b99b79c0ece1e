package postgres

import (
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

// Constraint names declared in pkg/database/schema.sql
const (
	constraintUserEmail      = "users_email_key"
	constraintApplicationKey = "applications_job_user_key"
)

// mapError turns a driver error into the application taxonomy. Unique
// violations become conflicts with a message naming what collided; anything
// the caller cannot fix is reported as transient.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case constraintUserEmail:
				return apperror.Conflict("User with this email already exists").Wrap(err)
			case constraintApplicationKey:
				return apperror.Conflict(domain.ErrAlreadyApplied).Wrap(err)
			default:
				return apperror.Conflict("Record already exists").Wrap(err)
			}
		case pgInvalidText:
			// Malformed uuid in a lookup
			return apperror.Validation("Invalid identifier").Wrap(err)
		}
	}
	return apperror.Transient(err)
}

// isInvalidText reports whether err is a malformed-input error, which for id
// lookups means the row cannot exist.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidText
}
