package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	duplicateKey := &pgconn.PgError{
		Code:           pgCodeUniqueViolation,
		Severity:       "ERROR",
		Message:        `duplicate key value violates unique constraint "idx_passes_klass_generator"`,
		ConstraintName: "idx_passes_klass_generator",
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "driver unique violation", err: duplicateKey, want: true},
		{name: "wrapped driver unique violation", err: errors.Wrap(duplicateKey, "failed to create pass"), want: true},
		{name: "gorm translated duplicate", err: gorm.ErrDuplicatedKey, want: true},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	notNull := &pgconn.PgError{
		Code:       pgCodeNotNullViolation,
		Severity:   "ERROR",
		Message:    `null value in column "serial_number" violates not-null constraint`,
		ColumnName: "serial_number",
	}

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isNotNullConstraintViolation(errors.Wrap(notNull, "failed to create pass")))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgCodeUniqueViolation}))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
