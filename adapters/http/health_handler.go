package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saikrishna-79/portfolio-pro/internal/config"
)

type HealthHandler struct {
	serviceName string
	environment string
	startedAt   time.Time
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{
		serviceName: cfg.App.ServiceName,
		environment: cfg.App.Env,
		startedAt:   time.Now(),
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "service is healthy",
		"data": gin.H{
			"status":      "OK",
			"service":     h.serviceName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(h.startedAt).Seconds(),
			"environment": h.environment,
		},
	})
}
