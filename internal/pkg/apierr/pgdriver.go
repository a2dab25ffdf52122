package apierr

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	SQLStateUniqueViolation     = "23505"
	SQLStateForeignKeyViolation = "23503"
)

// SQLState returns the SQLSTATE code of a PostgreSQL error, or an empty string
// if err did not originate from the server.
func SQLState(err error) string {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// Translate maps store rejections onto their user-facing counterparts. Errors that are not
// store rejections are returned untouched.
func Translate(err error) error {
	switch SQLState(err) {
	case SQLStateUniqueViolation:
		return ErrConflict
	case SQLStateForeignKeyViolation:
		return ErrNotFound
	}
	return err
}
