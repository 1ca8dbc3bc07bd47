package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gatherly/internal/database"
	"gatherly/internal/service"
)

type Handlers struct {
	services  *service.Services
	db        *database.DB
	uploadDir string
}

func NewHandlers(services *service.Services, db *database.DB, uploadDir string) *Handlers {
	return &Handlers{services: services, db: db, uploadDir: uploadDir}
}

func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community events API is running"})
}

func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports API liveness plus database pool health.
func (h *Handlers) Health(c *gin.Context) {
	check := h.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if check.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":   check.Status,
		"database": check,
	})
}
