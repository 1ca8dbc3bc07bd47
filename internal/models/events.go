package models

import "time"

// NATS subjects published by the API and consumed by cmd/consumers.
const (
	SubjectEventCreated     = "event.created"
	SubjectEventUpdated     = "event.updated"
	SubjectEventDeleted     = "event.deleted"
	SubjectInterestUpdated  = "interest.updated"
	SubjectInterestRemoved  = "interest.removed"
	SubjectPaymentSubmitted = "payment.submitted"
	SubjectPaymentVerified  = "payment.verified"
	SubjectPaymentRejected  = "payment.rejected"
)

// EventChangedEvent is published on event create/update/delete.
type EventChangedEvent struct {
	EventID     int64     `json:"event_id"`
	OrganizerID int64     `json:"organizer_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// InterestChangedEvent is published on interest upsert/removal.
type InterestChangedEvent struct {
	UserID        int64     `json:"user_id"`
	EventID       int64     `json:"event_id"`
	InterestLevel string    `json:"interest_level,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// PaymentLifecycleEvent is published on payment submission and verification.
type PaymentLifecycleEvent struct {
	PaymentID int64     `json:"payment_id"`
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
