package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject handles POST /api/v1/projects
// @Summary Create a new project
// @Description Create a production with its date range; the sign-up code is generated server-side
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.service.CreateProject(&req)
	if err != nil {
		if apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /api/v1/projects/:id
// @Summary Get project by ID
// @Description Get a specific project by its UUID
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	project, err := h.service.GetProject(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectByCode handles GET /api/v1/projects/by-code/:code
// @Summary Get project by sign-up code
// @Description Get a specific project by its human-shareable sign-up code
// @Tags projects
// @Accept json
// @Produce json
// @Param code path string true "Project code"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/by-code/{code} [get]
func (h *ProjectHandler) GetProjectByCode(c *gin.Context) {
	project, err := h.service.GetProjectByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /api/v1/projects
// @Summary List projects
// @Description Get projects with pagination, optionally filtered by lifecycle status
// @Tags projects
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (planning, active, completed, cancelled)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 400 {object} map[string]interface{} "Invalid status filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.service.ListProjects(c.Query("status"), limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProject handles PUT /api/v1/projects/:id
// @Summary Update a project
// @Description Update project details; code and status are immutable through this endpoint
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.service.UpdateProject(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProjectStatus handles PATCH /api/v1/projects/:id/status
// @Summary Update project status
// @Description Move a project through its lifecycle; cancellation is a status change, never a delete
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param status body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.ProjectResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid status or transition"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/status [patch]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatus), errors.Is(err, apperrors.ErrInvalidStatusTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project status", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}
