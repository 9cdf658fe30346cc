package db

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a romanization lookup matches no row.
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows reports whether err means the requested romanization does
// not exist, whichever backend produced it: the sqlite backend
// surfaces database/sql errors, the postgres backend pgx ones, and
// both normalize to the package sentinel.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}
