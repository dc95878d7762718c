package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound reports whether err is the driver's empty-result sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
