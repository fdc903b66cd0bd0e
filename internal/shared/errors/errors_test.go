package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewNotFoundError("Receiver not found")
	wrapped := fmt.Errorf("send message: %w", base)

	got := GetAppError(wrapped)
	assert.Same(t, base, got)
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
}

func TestAuthErrorUnwrapsToAppError(t *testing.T) {
	err := NewInvalidCredentialsError()

	appErr := GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	}
	assert.True(t, IsUnauthorizedError(err))
	assert.False(t, IsUnauthorizedError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	cases := map[string]bool{
		"Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.idx_users_email'": true,
		`ERROR: duplicate key value violates unique constraint "idx_users_email"`:      true,
		"UNIQUE constraint failed: users.email":                                         true,
		"connection refused":                                                            false,
	}
	for msg, want := range cases {
		assert.Equal(t, want, IsDuplicateError(errors.New(msg)), msg)
	}
	assert.False(t, IsDuplicateError(nil))
}
