package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

func TestAmountPattern(t *testing.T) {
	valid := []string{"0", "100", "100.5", "1500.50", "0.99"}
	for _, amount := range valid {
		assert.True(t, amountPattern.MatchString(amount), "expected %q to be valid", amount)
	}

	invalid := []string{"", "-100", "100.123", "1,000.00", "100.", ".50", "abc", "1e3"}
	for _, amount := range invalid {
		assert.False(t, amountPattern.MatchString(amount), "expected %q to be invalid", amount)
	}
}

func TestReorderByRank(t *testing.T) {
	events := []models.Event{{ID: 1}, {ID: 2}, {ID: 3}}

	ordered := reorderByRank(events, []int64{3, 1, 2})

	assert.Equal(t, []int64{3, 1, 2}, []int64{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestReorderByRankSkipsMissingRows(t *testing.T) {
	events := []models.Event{{ID: 1}}

	ordered := reorderByRank(events, []int64{9, 1, 7})

	assert.Len(t, ordered, 1)
	assert.Equal(t, int64(1), ordered[0].ID)
}

func TestCreateEventRejectsBadTicketPrice(t *testing.T) {
	s := NewEventService(nil, nil, nil)

	_, err := s.Create(context.Background(), &models.CreateEventRequest{
		EventName:     "Beach Cleanup",
		EventCategory: "Community",
		EventDate:     "2026-04-01",
		EventTime:     "09:00",
		Location:      "Galle Face",
		TicketPrice:   "ten rupees",
		Capacity:      100,
		OrganizerID:   1,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid ticket price format")
}

func TestCreateEventRejectsNonPositiveCapacity(t *testing.T) {
	s := NewEventService(nil, nil, nil)

	_, err := s.Create(context.Background(), &models.CreateEventRequest{
		EventName:     "Beach Cleanup",
		EventCategory: "Community",
		EventDate:     "2026-04-01",
		EventTime:     "09:00",
		Location:      "Galle Face",
		TicketPrice:   "100.00",
		Capacity:      0,
		OrganizerID:   1,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
