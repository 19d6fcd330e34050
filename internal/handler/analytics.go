package handler

import (
	"net/http"
	"time"

	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the analytics read side and the manual weekly rollup
type AnalyticsHandler struct {
	query      service.QueryServiceInterface
	aggregator service.AggregatorInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(query service.QueryServiceInterface, aggregator service.AggregatorInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		query:      query,
		aggregator: aggregator,
	}
}

// GetSummary handles GET /analytics
// @Summary Analytics summary
// @Description Totals, recent activity, top links and daily/weekly rollups
// @Tags analytics
// @Produce json
// @Success 200 {object} model.SummaryResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.query.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch analytics")
		return
	}

	respondOK(c, http.StatusOK, summary)
}

// GetLinkDetail handles GET /analytics/link/:linkId
// @Summary Per-link analytics
// @Tags analytics
// @Produce json
// @Param linkId path string true "Link ID"
// @Success 200 {object} model.LinkDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /analytics/link/{linkId} [get]
func (h *AnalyticsHandler) GetLinkDetail(c *gin.Context) {
	detail, err := h.query.GetLinkDetail(c.Request.Context(), c.Param("linkId"))
	if err != nil {
		respondError(c, err, "fetch link analytics")
		return
	}

	respondOK(c, http.StatusOK, detail)
}

// UpdateWeekly handles POST /analytics/update-weekly
// @Summary Run the weekly rollup now
// @Tags analytics
// @Produce json
// @Success 200 {object} WeeklyUpdateResponse
// @Router /analytics/update-weekly [post]
func (h *AnalyticsHandler) UpdateWeekly(c *gin.Context) {
	created, err := h.aggregator.ReconcileWeekly(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err, "update weekly analytics")
		return
	}

	respondOK(c, http.StatusOK, WeeklyUpdateResponse{
		Success: true,
		Message: "Weekly analytics updated successfully",
		Created: created,
	})
}
