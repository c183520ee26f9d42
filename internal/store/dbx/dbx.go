package dbx

import (
	"context"
	"database/sql"

	"github.com/5w1tchy/library-catalog/internal/api/apperr"
)

// Queryer covers *sqlx.DB and *sqlx.Tx for the read paths.
type Queryer interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

// Execer covers *sqlx.DB and *sqlx.Tx for the write paths.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Conn is everything a store issues statements through.
type Conn interface {
	Queryer
	Execer
}

// MapPGError turns constraint violations on user input into a validation
// error; everything else is returned unchanged.
func MapPGError(err error) error {
	if err == nil {
		return nil
	}
	if verr, ok := apperr.FromPG(err); ok {
		return verr
	}
	return err
}
