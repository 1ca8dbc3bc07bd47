package service

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/messaging"
	"gatherly/internal/models"
	"gatherly/internal/repository"
	"gatherly/internal/search"
)

// amountPattern accepts plain decimal money strings such as "100" or
// "1500.50". Scale beyond two digits is rejected rather than rounded.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

type EventService struct {
	events *repository.EventRepository
	nats   *messaging.NATSClient
	search *search.Client
}

func NewEventService(events *repository.EventRepository, nats *messaging.NATSClient, searchClient *search.Client) *EventService {
	return &EventService{events: events, nats: nats, search: searchClient}
}

func (s *EventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if !amountPattern.MatchString(req.TicketPrice) {
		return nil, apperrors.Validation("Invalid ticket price format")
	}
	if req.Capacity <= 0 {
		return nil, apperrors.Validation("Capacity must be greater than zero")
	}

	event := &models.Event{
		EventName:     req.EventName,
		EventCategory: req.EventCategory,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		Location:      req.Location,
		TicketPrice:   req.TicketPrice,
		Capacity:      req.Capacity,
		OrganizerID:   req.OrganizerID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectEventCreated, event)
	return event, nil
}

// List returns all events, or events matching the search query. Search goes
// through the index when one is configured and falls back to the database
// on any failure, so a degraded index never breaks listing.
func (s *EventService) List(ctx context.Context, query string) ([]models.Event, error) {
	if query == "" || s.search == nil {
		return s.events.List(ctx, query)
	}

	ids, err := s.search.SearchEvents(ctx, query)
	if err != nil {
		slog.Warn("Search index query failed, falling back to database", "error", err)
		return s.events.List(ctx, query)
	}
	if len(ids) == 0 {
		return []models.Event{}, nil
	}

	events, err := s.events.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return reorderByRank(events, ids), nil
}

// reorderByRank sorts events into the relevance order of ids. Ids without a
// matching row (index ahead of the database) are skipped.
func reorderByRank(events []models.Event, ids []int64) []models.Event {
	byID := make(map[int64]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	ordered := make([]models.Event, 0, len(events))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found")
	}
	return event, nil
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	return s.events.ListByOrganizer(ctx, organizerID)
}

func (s *EventService) Update(ctx context.Context, eventID int64, req *models.UpdateEventRequest) (*models.Event, error) {
	if !amountPattern.MatchString(req.TicketPrice) {
		return nil, apperrors.Validation("Invalid ticket price format")
	}
	if req.Capacity <= 0 {
		return nil, apperrors.Validation("Capacity must be greater than zero")
	}

	event, err := s.events.GetByIDForOrganizer(ctx, eventID, req.OrganizerID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found or unauthorized")
	}

	event.EventName = req.EventName
	event.EventCategory = req.EventCategory
	event.EventDate = req.EventDate
	event.EventTime = req.EventTime
	event.Location = req.Location
	event.TicketPrice = req.TicketPrice
	event.Capacity = req.Capacity

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectEventUpdated, event)
	return s.events.GetByID(ctx, eventID)
}

// Delete removes the event after an ownership check and returns the deleted
// row so the handler can clean up its photo file.
func (s *EventService) Delete(ctx context.Context, eventID, organizerID int64) (*models.Event, error) {
	event, err := s.events.GetByIDForOrganizer(ctx, eventID, organizerID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found or unauthorized")
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectEventDeleted, event)
	return event, nil
}

// SetPhoto stores the new photo URL and returns the previous one.
func (s *EventService) SetPhoto(ctx context.Context, eventID, organizerID int64, photoURL *string) (*string, error) {
	event, err := s.events.GetByIDForOrganizer(ctx, eventID, organizerID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found or unauthorized")
	}

	if err := s.events.UpdatePhoto(ctx, eventID, photoURL); err != nil {
		return nil, err
	}

	s.publishChange(models.SubjectEventUpdated, event)
	return event.PhotoURL, nil
}

// publishChange is fire-and-forget; a publish failure is logged and the
// request still succeeds.
func (s *EventService) publishChange(subject string, event *models.Event) {
	err := s.nats.Publish(subject, models.EventChangedEvent{
		EventID:     event.ID,
		OrganizerID: event.OrganizerID,
		Timestamp:   time.Now(),
	})
	if err != nil {
		slog.Error("Failed to publish event change", "subject", subject, "event_id", event.ID, "error", err)
	}
}
