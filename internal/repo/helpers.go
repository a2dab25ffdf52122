package repo

import (
	"database/sql"

	"eag.dev/backend/internal/pkg/apierr"
)

// affectedOne maps a write that touched no row onto apierr.ErrNotFound.
func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return apierr.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apierr.ErrNotFound
	}
	return nil
}
