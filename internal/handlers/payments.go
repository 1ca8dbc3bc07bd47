package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatherly/internal/models"
)

func (h *Handlers) SubmitPayment(c *gin.Context) {
	var req models.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Payments.Submit(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) VerifyPayment(c *gin.Context) {
	paymentID, ok := paramID(c, "paymentId")
	if !ok {
		return
	}

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Payments.Verify(c.Request.Context(), paymentID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetLatestPayment returns the user's most recent payment row for an
// event, or null when none has been submitted.
func (h *Handlers) GetLatestPayment(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	payment, err := h.services.Payments.Latest(c.Request.Context(), userID, eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeRow(c, payment)
}

func (h *Handlers) ListPayments(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	payments, err := h.services.Payments.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
