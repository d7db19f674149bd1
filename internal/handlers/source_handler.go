package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monetra/internal/errors"
	"monetra/internal/pagination"
	"monetra/internal/services"
)

// SourceHandler handles income-source requests.
type SourceHandler struct {
	sourceService services.SourceServicer
}

// NewSourceHandler creates a new SourceHandler.
func NewSourceHandler(sourceService services.SourceServicer) *SourceHandler {
	return &SourceHandler{sourceService: sourceService}
}

// SourceRequest represents the payload for creating or renaming a source.
type SourceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateSource handles the creation of a new income source.
// @Summary     Create an income source
// @Tags        sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SourceRequest true "Source details"
// @Success     201 {object} models.IncomeSource "Source created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /sources [post]
func (h *SourceHandler) CreateSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	source, err := h.sourceService.CreateSource(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"source": source})
}

// GetSources handles listing income sources.
// @Summary     Get income sources
// @Tags        sources
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeSource] "Paginated sources"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /sources [get]
func (h *SourceHandler) GetSources(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.sourceService.GetUserSources(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSource handles retrieving a single income source.
// @Summary     Get income source by ID
// @Tags        sources
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Source ID"
// @Success     200 {object} models.IncomeSource "Source"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /sources/{id} [get]
func (h *SourceHandler) GetSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	source, err := h.sourceService.GetSourceByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": source})
}

// UpdateSource handles renaming an income source.
// @Summary     Rename an income source
// @Tags        sources
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Source ID"
// @Param       request body SourceRequest true "New name"
// @Success     200 {object} models.IncomeSource "Updated source"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /sources/{id} [put]
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	source, err := h.sourceService.UpdateSource(userID, id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"source": source})
}

// DeleteSource handles deleting an income source.
// @Summary     Delete an income source
// @Tags        sources
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Source ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /sources/{id} [delete]
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sourceService.DeleteSource(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source deleted"})
}
