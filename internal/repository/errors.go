package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}
