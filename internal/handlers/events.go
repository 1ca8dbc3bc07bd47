package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gatherly/internal/models"
)

func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

// ListEvents returns all events, filtered by the optional ?query= term.
func (h *Handlers) ListEvents(c *gin.Context) {
	events, err := h.services.Events.List(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handlers) GetEvent(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	event, err := h.services.Events.GetByID(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handlers) ListEventsByOrganizer(c *gin.Context) {
	organizerID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	events, err := h.services.Events.ListByOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handlers) UpdateEvent(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Update(c.Request.Context(), eventID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// DeleteEvent removes an owned event and its uploaded photo file.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	organizerID, err := strconv.ParseInt(c.Query("organizer_id"), 10, 64)
	if err != nil || organizerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organizer_id"})
		return
	}

	event, err := h.services.Events.Delete(c.Request.Context(), eventID, organizerID)
	if err != nil {
		writeError(c, err)
		return
	}

	h.removeUploadedFile(event.PhotoURL)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Event deleted successfully"})
}
