package handler

import (
	"net/http"
	"time"

	"linkhub/internal/model"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness
type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler creates a new HealthHandler; uptime counts from startedAt
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Health handles GET /health under the API base path
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	now := h.now()
	respondOK(c, http.StatusOK, model.HealthResponse{
		Status:    "OK",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}
