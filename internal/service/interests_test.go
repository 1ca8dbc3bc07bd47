package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

func TestValidInterestLevel(t *testing.T) {
	assert.True(t, validInterestLevel(models.InterestInterested))
	assert.True(t, validInterestLevel(models.InterestNotInterested))
	assert.True(t, validInterestLevel(models.InterestGoing))

	assert.False(t, validInterestLevel(""))
	assert.False(t, validInterestLevel("maybe"))
	assert.False(t, validInterestLevel("Interested"))
}

func TestSetInterestRejectsInvalidLevel(t *testing.T) {
	s := NewInterestService(nil, nil, nil)

	_, err := s.Set(context.Background(), &models.SetInterestRequest{
		UserID:        1,
		EventID:       2,
		InterestLevel: "maybe",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid interest level")
}
