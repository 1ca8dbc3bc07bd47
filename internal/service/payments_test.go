package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

func TestLastFour(t *testing.T) {
	assert.Equal(t, "1111", lastFour("4111111111111111"))
	assert.Equal(t, "4242", lastFour("4242 4242 4242 4242"))
	assert.Equal(t, "4242", lastFour("4242-4242-4242-4242"))
	assert.Equal(t, "123", lastFour("123"))
	assert.Equal(t, "", lastFour("no digits"))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))

	ptr := optional("value")
	assert.NotNil(t, ptr)
	assert.Equal(t, "value", *ptr)
}

func TestSubmitRejectsInvalidMethod(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	_, err := s.Submit(context.Background(), &models.SubmitPaymentRequest{
		UserID:          1,
		EventID:         1,
		PaymentMethod:   "crypto",
		ReferenceNumber: "REF-1",
		Amount:          "100.00",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid payment method")
}

func TestSubmitRejectsBadAmountFormat(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	for _, amount := range []string{"abc", "-5", "10.123", "1,000", ""} {
		_, err := s.Submit(context.Background(), &models.SubmitPaymentRequest{
			UserID:          1,
			EventID:         1,
			PaymentMethod:   models.PaymentMethodBank,
			BankName:        "Commercial Bank",
			ReferenceNumber: "REF-1",
			Amount:          amount,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation, "amount %q", amount)
	}
}

func TestSubmitRequiresBankName(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	_, err := s.Submit(context.Background(), &models.SubmitPaymentRequest{
		UserID:          1,
		EventID:         1,
		PaymentMethod:   models.PaymentMethodBank,
		ReferenceNumber: "REF-1",
		Amount:          "100.00",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Bank name is required for bank transfer payments")
}

func TestSubmitRequiresCardNumber(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	_, err := s.Submit(context.Background(), &models.SubmitPaymentRequest{
		UserID:          1,
		EventID:         1,
		PaymentMethod:   models.PaymentMethodCard,
		ReferenceNumber: "REF-1",
		Amount:          "100.00",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Card number is required for card payments")
}

func TestSubmitMessageByMethod(t *testing.T) {
	assert.Equal(t,
		"Payment submitted successfully. Awaiting verification.",
		submitMessage(models.PaymentMethodBank))
	assert.Equal(t,
		"Card payment processed successfully. Awaiting verification.",
		submitMessage(models.PaymentMethodCard))
}

func TestVerifyRejectsInvalidStatus(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	_, err := s.Verify(context.Background(), 1, &models.VerifyPaymentRequest{
		VerifiedBy: 2,
		Status:     "pending",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.EqualError(t, err, "Invalid status")
}

func TestVerifyRequiresRejectionReason(t *testing.T) {
	s := NewPaymentService(nil, nil, nil)

	for _, reason := range []string{"", "   "} {
		_, err := s.Verify(context.Background(), 1, &models.VerifyPaymentRequest{
			VerifiedBy:      2,
			Status:          models.PaymentStatusRejected,
			RejectionReason: reason,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.EqualError(t, err, "Rejection reason is required")
	}
}
