package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles HTTP requests for production reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// CompletionReport handles GET /api/v1/projects/:id/reports/completion
// @Summary Form completion report
// @Description Summarize sign-up form completion and missing-info counts for a project
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.CompletionReport "Completion report"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/reports/completion [get]
func (h *ReportHandler) CompletionReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	report, err := h.service.Completion(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build completion report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ConflictReport handles GET /api/v1/projects/:id/reports/conflicts
// @Summary Scheduling conflict report
// @Description Re-evaluate every assignment of a project against current data and list live conflicts
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ConflictReport "Conflict report"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/reports/conflicts [get]
func (h *ReportHandler) ConflictReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	report, err := h.service.Conflicts(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build conflict report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
