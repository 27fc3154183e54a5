package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE class 23 (integrity constraint violation) codes raised by Postgres.
const (
	pgCodeNotNullViolation = "23502"
	pgCodeUniqueViolation  = "23505"
)

// isUniqueConstraintViolation reports whether err is a duplicate-key failure.
// The pooled handle opens GORM without error translation, so a Postgres unique
// violation arrives as a *pgconn.PgError rather than gorm.ErrDuplicatedKey;
// both forms are recognized.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgCodeUniqueViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeNotNullViolation
}

// pgErrorCode extracts the SQLSTATE code from a driver error, or "" when err
// did not come from the driver.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
