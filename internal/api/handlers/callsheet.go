package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallSheetHandler handles HTTP requests for call sheet distribution
type CallSheetHandler struct {
	service service.CallSheetServiceInterface
}

// NewCallSheetHandler creates a new call sheet handler
func NewCallSheetHandler(service service.CallSheetServiceInterface) *CallSheetHandler {
	return &CallSheetHandler{service: service}
}

// SendCallSheet handles POST /api/v1/callsheets/send
// @Summary Send a call sheet
// @Description Render the call sheet PDF for a shoot date, email it to every assigned crew member and record the distribution
// @Tags callsheets
// @Accept json
// @Produce json
// @Param callsheet body service.SendCallSheetRequest true "Call sheet request"
// @Success 200 {object} service.SendResult "Distribution summary"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found or no assignments for the date"
// @Failure 503 {object} map[string]interface{} "Email dispatch not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /callsheets/send [post]
func (h *CallSheetHandler) SendCallSheet(c *gin.Context) {
	var req service.SendCallSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Send(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound), errors.Is(err, apperrors.ErrNoAssignmentsForDate):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidCallTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMailerNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send call sheet", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// CallSheetHistory handles GET /api/v1/projects/:id/callsheets
// @Summary Call sheet distribution history
// @Description List the recorded call sheet distributions of a project, newest first
// @Tags callsheets
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} service.CallSheetResponse "Distribution records"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/callsheets [get]
func (h *CallSheetHandler) CallSheetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	records, err := h.service.History(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get call sheet history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
