package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "name"})

	converted := ToDomainError(original)
	require.NotNil(t, converted)
	assert.Equal(t, "VALIDATION_FAILED", converted.Code)
	assert.Equal(t, http.StatusBadRequest, converted.HTTPStatus)
	assert.Equal(t, "name", converted.Details["field"])
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewForbidden("insufficient role"))

	converted := ToDomainError(wrapped)
	require.NotNil(t, converted)
	assert.Equal(t, "FORBIDDEN", converted.Code)
	assert.Equal(t, http.StatusForbidden, converted.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	converted := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	require.NotNil(t, converted)
	assert.Equal(t, "NOT_FOUND", converted.Code)
	assert.Equal(t, http.StatusNotFound, converted.HTTPStatus)
}

func TestToDomainErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	converted := ToDomainError(pgErr)
	require.NotNil(t, converted)
	assert.Equal(t, "CONFLICT", converted.Code)
	assert.Equal(t, http.StatusConflict, converted.HTTPStatus)
}

func TestToDomainErrorUnknownBecomesInternal(t *testing.T) {
	converted := ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, converted)
	assert.Equal(t, "INTERNAL_ERROR", converted.Code)
	assert.Equal(t, "internal server error", converted.Message)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	slotErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_active_slot"}

	assert.True(t, IsUniqueViolation(slotErr, "uq_appointments_active_slot"))
	assert.True(t, IsUniqueViolation(slotErr, ""))
	assert.False(t, IsUniqueViolation(slotErr, "users_email_key"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}
