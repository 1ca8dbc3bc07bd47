package service

import (
	"context"
	"log/slog"
	"time"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/messaging"
	"gatherly/internal/models"
	"gatherly/internal/repository"
)

func validInterestLevel(level string) bool {
	switch level {
	case models.InterestInterested, models.InterestNotInterested, models.InterestGoing:
		return true
	}
	return false
}

type InterestService struct {
	interests *repository.InterestRepository
	events    *repository.EventRepository
	nats      *messaging.NATSClient
}

func NewInterestService(interests *repository.InterestRepository, events *repository.EventRepository, nats *messaging.NATSClient) *InterestService {
	return &InterestService{interests: interests, events: events, nats: nats}
}

// Set records the user's interest in an event, replacing any previous level.
func (s *InterestService) Set(ctx context.Context, req *models.SetInterestRequest) (*models.SetInterestResponse, error) {
	if !validInterestLevel(req.InterestLevel) {
		return nil, apperrors.Validation("Invalid interest level")
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found")
	}

	inserted, err := s.interests.Upsert(ctx, req.UserID, req.EventID, req.InterestLevel)
	if err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectInterestUpdated, req.UserID, req.EventID, req.InterestLevel)

	message := "Interest updated successfully"
	if inserted {
		message = "Interest added successfully"
	}
	return &models.SetInterestResponse{
		Message:       message,
		InterestLevel: req.InterestLevel,
	}, nil
}

// Get returns the user's interest in an event, or nil when none exists.
func (s *InterestService) Get(ctx context.Context, userID, eventID int64) (*models.UserInterest, error) {
	return s.interests.Get(ctx, userID, eventID)
}

// Remove deletes the interest row. Removing an absent interest succeeds.
func (s *InterestService) Remove(ctx context.Context, userID, eventID int64) (*models.MessageResponse, error) {
	if err := s.interests.Delete(ctx, userID, eventID); err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectInterestRemoved, userID, eventID, "")
	return &models.MessageResponse{Message: "Interest removed successfully"}, nil
}

func (s *InterestService) ListByUser(ctx context.Context, userID int64) ([]models.InterestWithEvent, error) {
	return s.interests.ListByUser(ctx, userID)
}

func (s *InterestService) publishChange(subject string, userID, eventID int64, level string) {
	err := s.nats.Publish(subject, models.InterestChangedEvent{
		UserID:        userID,
		EventID:       eventID,
		InterestLevel: level,
		Timestamp:     time.Now(),
	})
	if err != nil {
		slog.Error("Failed to publish interest change",
			"subject", subject, "user_id", userID, "event_id", eventID, "error", err)
	}
}
