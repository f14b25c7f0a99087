package repository

import (
	"database/sql"
	"errors"
)

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr; other errors are returned unchanged.
func MapError(err error, notFoundErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	return err
}
