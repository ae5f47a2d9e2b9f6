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

// CrewHandler handles HTTP requests for crew sign-up and profiles
type CrewHandler struct {
	service service.CrewServiceInterface
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(service service.CrewServiceInterface) *CrewHandler {
	return &CrewHandler{service: service}
}

// SignUp handles POST /api/v1/crew/signup
// @Summary Sign up for a project
// @Description Register a crew member on a project by its sign-up code; profiles are matched by email
// @Tags crew
// @Accept json
// @Produce json
// @Param signup body service.SignUpRequest true "Sign-up form"
// @Success 201 {object} service.SignUpResponse "Successfully signed up"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/signup [post]
func (h *CrewHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SignUp(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCrewProfile handles GET /api/v1/crew/:id
// @Summary Get crew profile
// @Description Get a crew member's profile by UUID
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Crew ID (UUID)"
// @Success 200 {object} service.CrewProfileResponse "Successfully retrieved profile"
// @Failure 400 {object} map[string]interface{} "Invalid crew ID"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/{id} [get]
func (h *CrewHandler) GetCrewProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew ID: invalid UUID format"})
		return
	}

	profile, err := h.service.GetProfile(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCrewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get crew profile", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListCrew handles GET /api/v1/crew
// @Summary List crew directory
// @Description Get the crew directory with pagination
// @Tags crew
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.CrewListResponse "Successfully retrieved crew"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew [get]
func (h *CrewHandler) ListCrew(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.service.ListCrew(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list crew", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCrewProfile handles PUT /api/v1/crew/:id
// @Summary Update crew profile
// @Description Apply a partial profile update; missing-info flags are recomputed on every project link
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Crew ID (UUID)"
// @Param profile body service.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} service.CrewProfileResponse "Successfully updated profile"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/{id} [put]
func (h *CrewHandler) UpdateCrewProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew ID: invalid UUID format"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.service.UpdateProfile(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCrewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update crew profile", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetUnavailability handles PUT /api/v1/crew/:id/unavailability
// @Summary Set personal unavailable dates
// @Description Replace the crew member's personal unavailable dates wholesale
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Crew ID (UUID)"
// @Param dates body service.SetUnavailabilityRequest true "Unavailable dates"
// @Success 200 {object} service.CrewProfileResponse "Successfully updated unavailability"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/{id}/unavailability [put]
func (h *CrewHandler) SetUnavailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew ID: invalid UUID format"})
		return
	}

	var req service.SetUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.service.SetUnavailability(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCrewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unavailability", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProjectRoster handles GET /api/v1/projects/:id/crew
// @Summary Get project roster
// @Description List every crew member linked to a project with department and missing-info flags
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.RosterResponse "Successfully retrieved roster"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/crew [get]
func (h *CrewHandler) GetProjectRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID: invalid UUID format"})
		return
	}

	roster, err := h.service.Roster(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roster", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roster)
}
