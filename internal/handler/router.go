package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served under the API base path
type Handlers struct {
	Links     *LinkHandler
	Track     *TrackHandler
	Analytics *AnalyticsHandler
	Health    *HealthHandler
}

// Register mounts every API route on the group
func (h *Handlers) Register(api *gin.RouterGroup) {
	api.GET("/links", h.Links.List)
	api.POST("/links", h.Links.Create)
	api.PUT("/links/:id", h.Links.Update)
	api.DELETE("/links/:id", h.Links.Delete)

	api.POST("/track-view", h.Track.TrackView)
	api.POST("/track-click/:linkId", h.Track.TrackClick)

	api.GET("/analytics", h.Analytics.GetSummary)
	api.GET("/analytics/link/:linkId", h.Analytics.GetLinkDetail)
	api.POST("/analytics/update-weekly", h.Analytics.UpdateWeekly)

	api.GET("/health", h.Health.Health)
}
