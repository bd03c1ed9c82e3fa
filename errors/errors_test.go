package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrReadOnly, "switch the room to business entry first")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "switch the room to business entry first", hints[0])
	assert.True(t, IsReadOnlyError(err))
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found wrapped", NewNotFoundError("room %d", 7), IsNotFoundError, true},
		{"invalid request wrapped", NewInvalidRequestError("unknown field %q", "colour"), IsInvalidRequestError, true},
		{"read-only wrapped", Wrap(ErrReadOnly, "bed edit"), IsReadOnlyError, true},
		{"conflict wrapped", fmt.Errorf("save: %w", ErrConflict), IsConflictError, true},
		{"nil is never a match", nil, IsNotFoundError, false},
		{"other sentinel", ErrConflict, IsReadOnlyError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestNewNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("room %d", 42)
	assert.Contains(t, err.Error(), "room 42")
	assert.Contains(t, err.Error(), "not found")
}
