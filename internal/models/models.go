package models

import "time"

// Auth / profile

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	UserID          int64  `json:"userId" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateProfileResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// Events

type CreateEventRequest struct {
	EventName     string `json:"event_name" binding:"required"`
	EventCategory string `json:"event_category" binding:"required"`
	EventDate     string `json:"event_date" binding:"required"`
	EventTime     string `json:"event_time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	TicketPrice   string `json:"ticket_price" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required"`
	OrganizerID   int64  `json:"organizer_id" binding:"required"`
}

type UpdateEventRequest struct {
	EventName     string `json:"event_name" binding:"required"`
	EventCategory string `json:"event_category" binding:"required"`
	EventDate     string `json:"event_date" binding:"required"`
	EventTime     string `json:"event_time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	TicketPrice   string `json:"ticket_price" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required"`
	OrganizerID   int64  `json:"organizer_id" binding:"required"`
}

// Interests

type SetInterestRequest struct {
	UserID        int64  `json:"user_id" binding:"required"`
	EventID       int64  `json:"event_id" binding:"required"`
	InterestLevel string `json:"interest_level" binding:"required"`
}

type SetInterestResponse struct {
	Message       string `json:"message"`
	InterestLevel string `json:"interest_level"`
}

// InterestWithEvent is an interest row joined with its event for list views.
type InterestWithEvent struct {
	UserInterest
	EventName string  `json:"event_name"`
	EventDate string  `json:"event_date"`
	EventTime string  `json:"event_time"`
	Location  string  `json:"location"`
	PhotoURL  *string `json:"photo_url"`
}

// Payments

type SubmitPaymentRequest struct {
	UserID          int64  `json:"user_id" binding:"required"`
	EventID         int64  `json:"event_id" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	AccountNumber   string `json:"account_number"`
	AccountName     string `json:"account_name"`
	BankName        string `json:"bank_name"`
	CardNumber      string `json:"card_number"`
	CardHolderName  string `json:"card_holder_name"`
	ReferenceNumber string `json:"reference_number" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	PaymentDate     string `json:"payment_date"`
}

type SubmitPaymentResponse struct {
	Message       string `json:"message"`
	PaymentID     int64  `json:"payment_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
}

type VerifyPaymentRequest struct {
	VerifiedBy      int64  `json:"verified_by" binding:"required"`
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

// PaymentWithEvent is a payment joined with its event for history views.
type PaymentWithEvent struct {
	Payment
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
	Location  string `json:"location"`
}

// Analytics

type EventOverview struct {
	EventID       int64   `json:"event_id"`
	EventName     string  `json:"event_name"`
	TicketPrice   string  `json:"ticket_price"`
	Interested    int64   `json:"interested"`
	NotInterested int64   `json:"not_interested"`
	Going         int64   `json:"going"`
	Revenue       float64 `json:"revenue"`
}

type EventAttendance struct {
	ID        int64  `json:"id"`
	EventName string `json:"eventName"`
	Attendees int64  `json:"attendees"`
}

type AttendeeInsightsResponse struct {
	EventDistribution []EventAttendance `json:"eventDistribution"`
	TotalAttendees    int64             `json:"totalAttendees"`
}

type EventInterestCount struct {
	ID              int64  `json:"id"`
	EventName       string `json:"eventName"`
	InterestedCount int64  `json:"interestedCount"`
}

type InterestedParticipantsResponse struct {
	EventInterests []EventInterestCount `json:"eventInterests"`
}

type Participant struct {
	UserID         int64     `json:"userId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	ProfilePicture *string   `json:"profilePicture"`
	EventID        int64     `json:"eventId"`
	EventName      string    `json:"eventName"`
	InterestLevel  string    `json:"interestLevel"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ParticipantsListResponse struct {
	Participants []Participant `json:"participants"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ActivityItem struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
	Time   string `json:"time"`
	Color  string `json:"color"`
}

type TrendingEvent struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalEvents         int64         `json:"totalEvents"`
	TrendingEvent       TrendingEvent `json:"trendingEvent"`
	UserOrganizedEvents int64         `json:"userOrganizedEvents"`
	TotalMembers        int64         `json:"totalMembers"`
}

// MessageResponse is the generic {message} success body.
type MessageResponse struct {
	Message string `json:"message"`
}
