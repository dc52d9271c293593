package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewNotFound("store", nil), "NOT_FOUND", http.StatusNotFound},
		{NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{NewConflict("exists", nil), "CONFLICT", http.StatusConflict},
		{NewGone("expired"), "EXPIRED", http.StatusGone},
		{NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		domainErr := ToDomainError(tc.err)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", ToDomainError(pgx.ErrNoRows).Code)
	assert.Equal(t, "NOT_FOUND", ToDomainError(sql.ErrNoRows).Code)
	assert.Equal(t, "NOT_FOUND", ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows)).Code)
}

func TestToDomainErrorPreservesWrappedDomainError(t *testing.T) {
	original := NewConflict("exists", map[string]any{"email": "taken"})
	wrapped := fmt.Errorf("signup: %w", original)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "taken", domainErr.Details["email"])
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("connection refused"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	// the raw cause stays out of the client message
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestResultEnvelopes(t *testing.T) {
	success := Ok(map[string]string{"id": "1"})
	assert.True(t, success.Success)
	assert.Nil(t, success.Error)

	withMessage := OkMessage(nil, "done")
	assert.True(t, withMessage.Success)
	assert.Equal(t, "done", withMessage.Message)

	failure := Fail(ToDomainError(NewValidationError("bad input", map[string]any{"name": "required"})))
	require.NotNil(t, failure.Error)
	assert.False(t, failure.Success)
	assert.Equal(t, "VALIDATION_FAILED", failure.Error.Code)
	assert.Equal(t, "required", failure.Error.ValidationErrors["name"])
}
