package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.org", "a@b.co"}
	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "expected %q to be valid", email)
	}

	invalid := []string{"", "plain", "missing@domain", "@nouser.com", "spaces in@mail.com"}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "expected %q to be invalid", email)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, validRole("participant"))
	assert.True(t, validRole("organizer"))
	assert.True(t, validRole("both"))

	assert.False(t, validRole(""))
	assert.False(t, validRole("admin"))
}

func TestSignupRejectsInvalidEmail(t *testing.T) {
	s := NewUserService(nil, nil)

	_, err := s.Signup(context.Background(), &models.SignupRequest{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "secret123",
		Role:     "participant",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid email format")
}

func TestSignupRejectsShortPassword(t *testing.T) {
	s := NewUserService(nil, nil)

	_, err := s.Signup(context.Background(), &models.SignupRequest{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "short",
		Role:     "participant",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	s := NewUserService(nil, nil)

	_, err := s.Signup(context.Background(), &models.SignupRequest{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "secret123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid role")
}

func TestResetPasswordRejectsShortNewPassword(t *testing.T) {
	s := NewUserService(nil, nil)

	err := s.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		UserID:          1,
		CurrentPassword: "old-password",
		NewPassword:     "short",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
