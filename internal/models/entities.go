package models

import (
	"time"
)

// User represents a registered user. The password hash never leaves the API.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           string    `json:"role" db:"role"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"-" db:"updated_at"`
}

// Event represents an event owned by one organizer. Booked is never stored;
// it is the count of 'going' interests computed at read time.
type Event struct {
	ID            int64     `json:"id" db:"id"`
	EventName     string    `json:"event_name" db:"event_name"`
	EventCategory string    `json:"event_category" db:"event_category"`
	EventDate     string    `json:"event_date" db:"event_date"`
	EventTime     string    `json:"event_time" db:"event_time"`
	Location      string    `json:"location" db:"location"`
	TicketPrice   string    `json:"ticket_price" db:"ticket_price"`
	Capacity      int       `json:"capacity" db:"capacity"`
	PhotoURL      *string   `json:"photo_url" db:"photo_url"`
	OrganizerID   int64     `json:"organizer_id" db:"organizer_id"`
	OrganizerName *string   `json:"organizer_name,omitempty"`
	Booked        int64     `json:"booked"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserInterest is the single interest row per (user, event) pair.
type UserInterest struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	EventID       int64     `json:"event_id" db:"event_id"`
	InterestLevel string    `json:"interest_level" db:"interest_level"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Payment records one payment attempt for a (user, event, reference) triple.
// Card submissions keep only the truncated card number.
type Payment struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"user_id" db:"user_id"`
	EventID         int64      `json:"event_id" db:"event_id"`
	PaymentMethod   string     `json:"payment_method" db:"payment_method"`
	AccountNumber   *string    `json:"account_number" db:"account_number"`
	AccountName     *string    `json:"account_name" db:"account_name"`
	BankName        *string    `json:"bank_name" db:"bank_name"`
	CardLastFour    *string    `json:"card_last_four" db:"card_last_four"`
	CardHolderName  *string    `json:"card_holder_name" db:"card_holder_name"`
	ReferenceNumber string     `json:"reference_number" db:"reference_number"`
	Amount          string     `json:"amount" db:"amount"`
	PaymentStatus   string     `json:"payment_status" db:"payment_status"`
	RejectionReason *string    `json:"rejection_reason" db:"rejection_reason"`
	VerifiedBy      *int64     `json:"verified_by" db:"verified_by"`
	PaymentDate     *string    `json:"payment_date" db:"payment_date"`
	VerifiedAt      *time.Time `json:"verified_at" db:"verified_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// Interest levels.
const (
	InterestInterested    = "interested"
	InterestNotInterested = "not_interested"
	InterestGoing         = "going"
)

// Payment methods.
const (
	PaymentMethodBank = "bank"
	PaymentMethodCard = "card"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)
