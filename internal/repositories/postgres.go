package repositories

import (
	"errors"

	"github.com/anonto42/second-brain/backend/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
)

// translatePostgresError maps unique-constraint violations (SQLSTATE 23505)
// to the store-agnostic sentinel so handlers never see driver errors.
func translatePostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errs.ErrDuplicate
	}
	return err
}
