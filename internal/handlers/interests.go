package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatherly/internal/models"
)

func (h *Handlers) SetInterest(c *gin.Context) {
	var req models.SetInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.services.Interests.Set(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInterest returns the user's interest row for one event, or null when
// none has been recorded.
func (h *Handlers) GetInterest(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	interest, err := h.services.Interests.Get(c.Request.Context(), userID, eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeRow(c, interest)
}

func (h *Handlers) RemoveInterest(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	resp, err := h.services.Interests.Remove(c.Request.Context(), userID, eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ListInterests(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	interests, err := h.services.Interests.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, interests)
}
