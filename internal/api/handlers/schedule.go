package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedule assignments
type ScheduleHandler struct {
	service service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// CheckConflicts handles POST /api/v1/schedule/check
// @Summary Check scheduling conflicts
// @Description Evaluate all conflict predicates for a (project, crew, date) triple without writing anything
// @Tags schedule
// @Accept json
// @Produce json
// @Param check body service.ConflictCheckRequest true "Triple to check"
// @Success 200 {object} service.ConflictResult "Conflict evaluation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project or crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/check [post]
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req service.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Check(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check conflicts", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Assign handles POST /api/v1/schedule/assign
// @Summary Assign a crew member to a shoot date
// @Description Run the conflict detector and persist the assignment. A blocking conflict without override returns 409 with the full conflict diagnostics; missing info alone never blocks.
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignment body service.AssignRequest true "Assignment request"
// @Success 200 {object} service.AssignOutcome "Assignment stored"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project or crew member not found"
// @Failure 409 {object} service.AssignOutcome "Blocked by a scheduling conflict"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/assign [post]
func (h *ScheduleHandler) Assign(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	outcome, err := h.service.Assign(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidCallTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign", "details": err.Error()})
		}
		return
	}

	if outcome.Status == service.AssignmentRejected {
		c.JSON(http.StatusConflict, outcome)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// AssignDepartment handles POST /api/v1/schedule/assign-department
// @Summary Assign a whole department to a shoot date
// @Description Bulk-assign every crew member of a department. Never blocks on conflicts; existing assignments for the date are left untouched.
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignment body service.AssignDepartmentRequest true "Bulk assignment request"
// @Success 200 {object} service.DepartmentAssignResult "Bulk assignment summary"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found or department empty"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/assign-department [post]
func (h *ScheduleHandler) AssignDepartment(c *gin.Context) {
	var req service.AssignDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.AssignDepartment(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidCallTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign department", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Unassign handles DELETE /api/v1/schedule/assignments
// @Summary Remove a crew member from a shoot date
// @Description Delete an assignment. Idempotent: removing an absent assignment still returns 204.
// @Tags schedule
// @Accept json
// @Produce json
// @Param assignment body service.UnassignRequest true "Assignment to remove"
// @Success 204 "Assignment removed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule/assignments [delete]
func (h *ScheduleHandler) Unassign(c *gin.Context) {
	var req service.UnassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Unassign(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DaySchedule handles GET /api/v1/schedule
// @Summary Get a day's schedule
// @Description List a project's assignments for one shoot date, ordered by call time
// @Tags schedule
// @Accept json
// @Produce json
// @Param project_id query string true "Project ID (UUID)"
// @Param date query string true "Shoot date (YYYY-MM-DD)"
// @Success 200 {object} service.DayScheduleResponse "Day schedule"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule [get]
func (h *ScheduleHandler) DaySchedule(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id: invalid UUID format"})
		return
	}

	schedule, err := h.service.DaySchedule(projectID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get day schedule", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}
