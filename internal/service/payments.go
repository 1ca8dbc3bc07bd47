package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/messaging"
	"gatherly/internal/models"
	"gatherly/internal/repository"
)

type PaymentService struct {
	payments *repository.PaymentRepository
	events   *repository.EventRepository
	nats     *messaging.NATSClient
}

func NewPaymentService(payments *repository.PaymentRepository, events *repository.EventRepository, nats *messaging.NATSClient) *PaymentService {
	return &PaymentService{payments: payments, events: events, nats: nats}
}

// Submit records a pending payment after validating the method details and
// checking the amount against the event's current ticket price. The full
// card number is never stored; only its last four digits are kept.
func (s *PaymentService) Submit(ctx context.Context, req *models.SubmitPaymentRequest) (*models.SubmitPaymentResponse, error) {
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodBank
	}
	if method != models.PaymentMethodBank && method != models.PaymentMethodCard {
		return nil, apperrors.Validation("Invalid payment method")
	}
	if !amountPattern.MatchString(req.Amount) {
		return nil, apperrors.Validation("Invalid amount format")
	}

	payment := &models.Payment{
		UserID:          req.UserID,
		EventID:         req.EventID,
		PaymentMethod:   method,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentDate:     optional(req.PaymentDate),
	}

	switch method {
	case models.PaymentMethodBank:
		if req.BankName == "" {
			return nil, apperrors.Validation("Bank name is required for bank transfer payments")
		}
		payment.BankName = optional(req.BankName)
		payment.AccountNumber = optional(req.AccountNumber)
		payment.AccountName = optional(req.AccountName)
	case models.PaymentMethodCard:
		if req.CardNumber == "" {
			return nil, apperrors.Validation("Card number is required for card payments")
		}
		payment.CardLastFour = optional(lastFour(req.CardNumber))
		payment.CardHolderName = optional(req.CardHolderName)
	}

	_, match, found, err := s.events.TicketPriceMatch(ctx, req.EventID, req.Amount)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("Event not found")
	}
	if !match {
		return nil, apperrors.Validation("Payment amount does not match ticket price")
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.publishLifecycle(models.SubjectPaymentSubmitted, payment)

	return &models.SubmitPaymentResponse{
		Message:       submitMessage(method),
		PaymentID:     payment.ID,
		Status:        payment.PaymentStatus,
		PaymentMethod: method,
	}, nil
}

func submitMessage(method string) string {
	if method == models.PaymentMethodCard {
		return "Card payment processed successfully. Awaiting verification."
	}
	return "Payment submitted successfully. Awaiting verification."
}

// Verify settles a pending payment as verified or rejected. A payment
// already settled stays as it is; a second decision is a conflict.
func (s *PaymentService) Verify(ctx context.Context, paymentID int64, req *models.VerifyPaymentRequest) (*models.MessageResponse, error) {
	if req.Status != models.PaymentStatusVerified && req.Status != models.PaymentStatusRejected {
		return nil, apperrors.Validation("Invalid status")
	}

	var rejectionReason *string
	if req.Status == models.PaymentStatusRejected {
		if strings.TrimSpace(req.RejectionReason) == "" {
			return nil, apperrors.Validation("Rejection reason is required")
		}
		rejectionReason = &req.RejectionReason
	}

	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("Payment not found")
	}

	decided, err := s.payments.Decide(ctx, paymentID, req.Status, req.VerifiedBy, rejectionReason)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, apperrors.Conflict("Payment has already been processed")
	}

	payment.PaymentStatus = req.Status
	subject := models.SubjectPaymentVerified
	if req.Status == models.PaymentStatusRejected {
		subject = models.SubjectPaymentRejected
	}
	s.publishLifecycle(subject, payment)

	return &models.MessageResponse{
		Message: fmt.Sprintf("Payment %s successfully", req.Status),
	}, nil
}

// Latest returns the user's most recent payment for the event, or nil.
func (s *PaymentService) Latest(ctx context.Context, userID, eventID int64) (*models.Payment, error) {
	return s.payments.Latest(ctx, userID, eventID)
}

func (s *PaymentService) History(ctx context.Context, userID int64) ([]models.PaymentWithEvent, error) {
	return s.payments.ListByUser(ctx, userID)
}

func (s *PaymentService) publishLifecycle(subject string, payment *models.Payment) {
	err := s.nats.Publish(subject, models.PaymentLifecycleEvent{
		PaymentID: payment.ID,
		UserID:    payment.UserID,
		EventID:   payment.EventID,
		Amount:    payment.Amount,
		Status:    payment.PaymentStatus,
		Timestamp: time.Now(),
	})
	if err != nil {
		slog.Error("Failed to publish payment lifecycle event",
			"subject", subject, "payment_id", payment.ID, "error", err)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func lastFour(cardNumber string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
