package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "schema_migrations_pkey"}

	assert.True(t, IsDuplicateConstraintError(dup, "schema_migrations_pkey"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("record: %w", dup), "schema_migrations_pkey"))
	assert.False(t, IsDuplicateConstraintError(dup, "kv_store_pkey"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain"), "schema_migrations_pkey"))
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, IsUndefinedTable(&pgconn.PgError{Code: CodeUndefinedTable}))
	assert.False(t, IsUndefinedTable(&pgconn.PgError{Code: CodeUniqueViolation}))
	assert.False(t, IsUndefinedTable(nil))
}
