package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := NotFound("post not found")
	wrapped := fmt.Errorf("handling request: %w", err)

	assert.True(t, Is(wrapped, KindNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(Validation("bad")))
	assert.Equal(t, 401, HTTPStatus(Auth("no")))
	assert.Equal(t, 404, HTTPStatus(NotFound("gone")))
	assert.Equal(t, 409, HTTPStatus(Conflict("dup")))
	assert.Equal(t, 422, HTTPStatus(Integrity("cross-ref")))
	assert.Equal(t, 500, HTTPStatus(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.user_name")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
