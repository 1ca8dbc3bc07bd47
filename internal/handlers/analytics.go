package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EventOverview reports interest counts and verified revenue for every
// event the organizer owns.
func (h *Handlers) EventOverview(c *gin.Context) {
	organizerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	overview, err := h.services.Analytics.Overview(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *Handlers) AttendeeInsights(c *gin.Context) {
	organizerID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	insights, err := h.services.Analytics.Insights(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (h *Handlers) RegistrationTrend(c *gin.Context) {
	organizerID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	trend, err := h.services.Analytics.RegistrationTrend(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (h *Handlers) RecentActivity(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	activity, err := h.services.Analytics.RecentActivity(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *Handlers) InterestedParticipants(c *gin.Context) {
	organizerID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	resp, err := h.services.Analytics.InterestedParticipants(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ParticipantsList(c *gin.Context) {
	organizerID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	resp, err := h.services.Analytics.ParticipantsList(c.Request.Context(), organizerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) DashboardStats(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	stats, err := h.services.Analytics.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
