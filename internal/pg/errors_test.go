package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique_idx"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDataViolation(t *testing.T) {
	assert.True(t, IsDataViolation(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"}))
	assert.True(t, IsDataViolation(fmt.Errorf("increment: %w", &pgconn.PgError{Code: "23514"})))
	assert.False(t, IsDataViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDataViolation(errors.New("numeric field overflow")))
	assert.False(t, IsDataViolation(nil))
}
