package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already exists")))
	assert.Equal(t, KindExpired, KindOf(Expired("too late")))

	// Unclassified errors are treated as fatal.
	assert.Equal(t, KindFatal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindFatal, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := NotFound("no such request")
	wrapped := fmt.Errorf("loading request: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindConflict))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "no usable session", Message(Unauthorized("no usable session")))
	assert.Equal(t, "internal server error", Message(errors.New("sql: driver busted")))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Transient("store unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}
