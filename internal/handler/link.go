package handler

import (
	"net/http"

	"linkhub/internal/model"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles link CRUD
type LinkHandler struct {
	service service.LinkServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// List handles GET /links
// @Summary List links
// @Description Returns every link, oldest first
// @Tags links
// @Produce json
// @Success 200 {array} model.Link
// @Router /links [get]
func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch links")
		return
	}

	respondOK(c, http.StatusOK, links)
}

// Create handles POST /links
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Link to create"
// @Success 201 {object} model.Link
// @Failure 400 {object} ErrorResponse
// @Router /links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create link")
		return
	}

	respondOK(c, http.StatusCreated, link)
}

// Update handles PUT /links/:id
// @Summary Update a link
// @Description Changes only the supplied fields
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body model.UpdateLinkRequest true "Fields to change"
// @Success 200 {object} model.Link
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /links/{id} [put]
func (h *LinkHandler) Update(c *gin.Context) {
	var req model.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	link, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update link")
		return
	}

	respondOK(c, http.StatusOK, link)
}

// Delete handles DELETE /links/:id
// @Summary Delete a link
// @Description Deletes the link and its click history
// @Tags links
// @Param id path string true "Link ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete link")
		return
	}

	respondOK(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Link deleted successfully",
	})
}
