package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// codeAlphabet excludes ambiguous characters (0/O, 1/I) so codes survive
// being read out loud on set.
const (
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength     = 6
	codeMaxRetries = 5
)

// ProjectService handles project lifecycle management
type ProjectService struct {
	projectRepo     repository.ProjectRepositoryInterface
	projectCrewRepo repository.ProjectCrewRepositoryInterface
	validator       *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repository.ProjectRepositoryInterface,
	projectCrewRepo repository.ProjectCrewRepositoryInterface,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		projectCrewRepo: projectCrewRepo,
		validator:       validator,
	}
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	Location  string  `json:"location,omitempty" validate:"omitempty,max=300"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,max=300"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// UpdateStatusRequest represents a project lifecycle transition
type UpdateStatusRequest struct {
	Status models.ProjectStatus `json:"status" validate:"required"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID        uuid.UUID            `json:"id"`
	Code      string               `json:"code"`
	Name      string               `json:"name"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Location  string               `json:"location,omitempty"`
	Latitude  float64              `json:"latitude,omitempty"`
	Longitude float64              `json:"longitude,omitempty"`
	Status    models.ProjectStatus `json:"status"`
	CrewCount int64                `json:"crew_count"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// ProjectListResponse represents a paginated project listing
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// CreateProject creates a project and mints its sign-up code. The code is
// generated server-side and retried on the rare collision with an existing
// project.
func (s *ProjectService) CreateProject(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startDate, err := time.Parse(models.DateOnly, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	endDate, err := time.Parse(models.DateOnly, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	code, err := s.mintCode()
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Code:      code,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    models.ProjectStatusPlanning,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toProjectResponse(project)
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(projectID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return s.toProjectResponse(project)
}

// GetProjectByCode retrieves a project by its sign-up code
func (s *ProjectService) GetProjectByCode(code string) (*ProjectResponse, error) {
	project, err := s.projectRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return s.toProjectResponse(project)
}

// ListProjects retrieves projects with pagination, optionally filtered by
// lifecycle status.
func (s *ProjectService) ListProjects(status string, limit, offset int) (*ProjectListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var (
		projects []models.Project
		total    int64
		err      error
	)
	if status != "" {
		parsed := models.ProjectStatus(status)
		if !parsed.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		projects, total, err = s.projectRepo.ListByStatus(parsed, limit, offset)
	} else {
		projects, total, err = s.projectRepo.List(limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		resp, err := s.toProjectResponse(&projects[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return &ProjectListResponse{Projects: responses, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateProject applies a partial update to a project's details. The code and
// status are immutable through this path; status moves through UpdateStatus.
func (s *ProjectService) UpdateProject(projectID uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(models.DateOnly, *req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(models.DateOnly, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
		}
		project.EndDate = endDate
	}
	if project.EndDate.Before(project.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Latitude != nil {
		project.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		project.Longitude = *req.Longitude
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return s.toProjectResponse(project)
}

// UpdateStatus moves a project through its lifecycle. Allowed transitions:
// planning to active or cancelled, active to completed or cancelled.
// Completed and cancelled are terminal.
func (s *ProjectService) UpdateStatus(projectID uuid.UUID, req *UpdateStatusRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if !statusTransitionAllowed(project.Status, req.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	project.Status = req.Status
	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}
	return s.toProjectResponse(project)
}

// statusTransitionAllowed encodes the project lifecycle state machine
func statusTransitionAllowed(from, to models.ProjectStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.ProjectStatusPlanning:
		return to == models.ProjectStatusActive || to == models.ProjectStatusCancelled
	case models.ProjectStatusActive:
		return to == models.ProjectStatusCompleted || to == models.ProjectStatusCancelled
	}
	return false
}

// mintCode generates a fresh sign-up code, retrying on collision
func (s *ProjectService) mintCode() (string, error) {
	for attempt := 0; attempt < codeMaxRetries; attempt++ {
		code, err := randomCode(codeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate project code: %w", err)
		}
		exists, err := s.projectRepo.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check project code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique project code after %d attempts", codeMaxRetries)
}

// randomCode produces n characters from the code alphabet
func randomCode(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// toProjectResponse converts a project model to a response with its crew count
func (s *ProjectService) toProjectResponse(project *models.Project) (*ProjectResponse, error) {
	crewCount, err := s.projectCrewRepo.CountByProject(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count project crew: %w", err)
	}
	return &ProjectResponse{
		ID:        project.ID,
		Code:      project.Code,
		Name:      project.Name,
		StartDate: project.StartDate.Format(models.DateOnly),
		EndDate:   project.EndDate.Format(models.DateOnly),
		Location:  project.Location,
		Latitude:  project.Latitude,
		Longitude: project.Longitude,
		Status:    project.Status,
		CrewCount: crewCount,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}, nil
}
