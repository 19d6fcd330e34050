package handler

import (
	"errors"
	"net/http"

	"linkhub/internal/model"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MessageResponse acknowledges an action that has no resource to return
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TrackClickResponse is returned by a recorded click
type TrackClickResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Link    *model.Link `json:"link"`
}

// WeeklyUpdateResponse is returned by a forced weekly rollup
type WeeklyUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Created bool   `json:"created"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondOK writes the resource itself as the body
func respondOK(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// respondError maps service errors to HTTP statuses. Storage details stay in
// the logs; clients only see what failed.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Link not found",
		})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Failed to " + action)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to " + action,
		})
	}
}
