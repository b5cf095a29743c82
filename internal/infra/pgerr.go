package infra

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// KindFromPgErr classifies constraint violations; everything else is a
// generic DB failure.
func KindFromPgErr(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicateKey
		case pgForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}
