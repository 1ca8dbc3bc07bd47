package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMessageKeepsClass(t *testing.T) {
	err := WithMessage(ErrNotFound, "Event not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.EqualError(t, err, "Event not found")
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err   error
		class error
		msg   string
	}{
		{Validation("Invalid %s", "amount"), ErrValidation, "Invalid amount"},
		{NotFound("Payment not found"), ErrNotFound, "Payment not found"},
		{Conflict("Payment has already been processed"), ErrConflict, "Payment has already been processed"},
		{Unauthorized("Invalid credentials"), ErrUnauthorized, "Invalid credentials"},
	}

	for _, tt := range tests {
		assert.True(t, errors.Is(tt.err, tt.class))
		assert.EqualError(t, tt.err, tt.msg)
	}
}

func TestClassSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("setting interest: %w", Validation("Invalid interest level"))
	assert.True(t, errors.Is(err, ErrValidation))
}
