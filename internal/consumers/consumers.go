package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"

	"gatherly/internal/messaging"
	"gatherly/internal/models"
	"gatherly/internal/repository"
	"gatherly/internal/search"
)

// queueGroup spreads subjects across worker instances; each message is
// handled by exactly one worker.
const queueGroup = "gatherly-workers"

const handleTimeout = 10 * time.Second

// Service consumes the API's change events. It keeps the search index in
// sync with the database and logs notification-worthy lifecycle events.
type Service struct {
	nats   *messaging.NATSClient
	search *search.Client
	events *repository.EventRepository
	subs   []stan.Subscription
}

func NewService(nats *messaging.NATSClient, searchClient *search.Client, events *repository.EventRepository) *Service {
	return &Service{nats: nats, search: searchClient, events: events}
}

// Start subscribes to every subject. Subscriptions are durable, so messages
// published while the workers were down are replayed on restart.
func (s *Service) Start() error {
	subjects := map[string]stan.MsgHandler{
		models.SubjectEventCreated:     s.handleEventChanged,
		models.SubjectEventUpdated:     s.handleEventChanged,
		models.SubjectEventDeleted:     s.handleEventDeleted,
		models.SubjectInterestUpdated:  s.handleInterestChanged,
		models.SubjectInterestRemoved:  s.handleInterestChanged,
		models.SubjectPaymentSubmitted: s.handlePaymentLifecycle,
		models.SubjectPaymentVerified:  s.handlePaymentLifecycle,
		models.SubjectPaymentRejected:  s.handlePaymentLifecycle,
	}

	for subject, handler := range subjects {
		sub, err := s.nats.SubscribeQueue(subject, queueGroup, handler)
		if err != nil {
			return err
		}
		s.subs = append(s.subs, sub)
	}
	return nil
}

// Stop closes the subscriptions without removing the durable state.
func (s *Service) Stop() {
	for _, sub := range s.subs {
		if err := sub.Close(); err != nil {
			slog.Error("Failed to close subscription", "error", err)
		}
	}
}

func (s *Service) handleEventChanged(msg *stan.Msg) {
	var event models.EventChangedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode event change", "subject", msg.Subject, "error", err)
		return
	}

	slog.Info("Event changed", "subject", msg.Subject, "event_id", event.EventID)
	if s.search == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	row, err := s.events.GetByID(ctx, event.EventID)
	if err != nil {
		slog.Error("Failed to load event for indexing", "event_id", event.EventID, "error", err)
		return
	}
	if row == nil {
		// Deleted between publish and consume; drop the stale document.
		if err := s.search.DeleteEvent(ctx, event.EventID); err != nil {
			slog.Error("Failed to delete event document", "event_id", event.EventID, "error", err)
		}
		return
	}

	if err := s.search.IndexEvent(ctx, row); err != nil {
		slog.Error("Failed to index event", "event_id", event.EventID, "error", err)
	}
}

func (s *Service) handleEventDeleted(msg *stan.Msg) {
	var event models.EventChangedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode event deletion", "error", err)
		return
	}

	slog.Info("Event deleted", "event_id", event.EventID)
	if s.search == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := s.search.DeleteEvent(ctx, event.EventID); err != nil {
		slog.Error("Failed to delete event document", "event_id", event.EventID, "error", err)
	}
}

func (s *Service) handleInterestChanged(msg *stan.Msg) {
	var event models.InterestChangedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode interest change", "subject", msg.Subject, "error", err)
		return
	}

	slog.Info("Interest changed",
		"subject", msg.Subject,
		"user_id", event.UserID,
		"event_id", event.EventID,
		"interest_level", event.InterestLevel,
	)
}

// handlePaymentLifecycle logs the notification that would go out to the
// participant. Delivery channels (email, push) plug in here.
func (s *Service) handlePaymentLifecycle(msg *stan.Msg) {
	var event models.PaymentLifecycleEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to decode payment lifecycle event", "subject", msg.Subject, "error", err)
		return
	}

	slog.Info("Payment lifecycle notification",
		"subject", msg.Subject,
		"payment_id", event.PaymentID,
		"user_id", event.UserID,
		"event_id", event.EventID,
		"amount", event.Amount,
		"status", event.Status,
	)
}
