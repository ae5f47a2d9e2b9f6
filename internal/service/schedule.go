package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var callTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleService applies conflict results to assignment requests and
// persists outcomes with conflict metadata. It implements the asymmetric
// blocking rules the production office relies on: single assignments block on
// double-booking and personal unavailability unless overridden, missing info
// alone never blocks, and bulk department assignment always writes.
type ScheduleService struct {
	assignmentRepo  repository.ScheduleAssignmentRepositoryInterface
	projectCrewRepo repository.ProjectCrewRepositoryInterface
	crewRepo        repository.CrewProfileRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	conflicts       *ConflictService
	validator       *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface,
	projectCrewRepo repository.ProjectCrewRepositoryInterface,
	crewRepo repository.CrewProfileRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	conflicts *ConflictService,
	validator *validator.Validate,
) *ScheduleService {
	return &ScheduleService{
		assignmentRepo:  assignmentRepo,
		projectCrewRepo: projectCrewRepo,
		crewRepo:        crewRepo,
		projectRepo:     projectRepo,
		conflicts:       conflicts,
		validator:       validator,
	}
}

// AssignRequest represents a single-assignment request
type AssignRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	CrewID     uuid.UUID `json:"crew_id" validate:"required"`
	ShootDate  string    `json:"shoot_date" validate:"required"`
	CallTime   string    `json:"call_time" validate:"required"`
	Department string    `json:"department,omitempty"`
	Override   bool      `json:"override"`
}

// AssignDepartmentRequest represents a bulk department-assignment request
type AssignDepartmentRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	Department string    `json:"department" validate:"required"`
	ShootDate  string    `json:"shoot_date" validate:"required"`
	CallTime   string    `json:"call_time" validate:"required"`
}

// UnassignRequest represents a request to remove a crew member from a date
type UnassignRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	CrewID    uuid.UUID `json:"crew_id" validate:"required"`
	ShootDate string    `json:"shoot_date" validate:"required"`
}

// ConflictCheckRequest represents a read-only conflict check
type ConflictCheckRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	CrewID    uuid.UUID `json:"crew_id" validate:"required"`
	ShootDate string    `json:"shoot_date" validate:"required"`
}

// AssignmentResponse represents a stored schedule assignment
type AssignmentResponse struct {
	ID               uuid.UUID            `json:"id"`
	ProjectID        uuid.UUID            `json:"project_id"`
	CrewID           uuid.UUID            `json:"crew_id"`
	CrewName         string               `json:"crew_name,omitempty"`
	CrewEmail        string               `json:"crew_email,omitempty"`
	ShootDate        string               `json:"shoot_date"`
	CallTime         string               `json:"call_time"`
	Department       string               `json:"department"`
	ConflictWarning  bool                 `json:"conflict_warning"`
	ConflictType     *models.ConflictType `json:"conflict_type,omitempty"`
	ConflictResolved bool                 `json:"conflict_resolved"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
}

// AssignmentStatus tags the outcome of a single-assignment attempt
type AssignmentStatus string

const (
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentRejected AssignmentStatus = "rejected"
)

// AssignOutcome is the tagged result of a single assignment. A rejection is a
// soft outcome, not an error: it carries the full conflict diagnostics so the
// caller can decide to retry with override.
type AssignOutcome struct {
	Status     AssignmentStatus    `json:"status"`
	Assignment *AssignmentResponse `json:"assignment,omitempty"`
	Conflicts  *ConflictResult     `json:"conflicts,omitempty"`
	Warning    string              `json:"warning,omitempty"`
}

// DepartmentAssignResult summarizes a bulk department assignment
type DepartmentAssignResult struct {
	ProjectID    uuid.UUID `json:"project_id"`
	Department   string    `json:"department"`
	ShootDate    string    `json:"shoot_date"`
	TotalCrew    int       `json:"total_crew"`
	Assigned     int       `json:"assigned"`
	Conflicts    int       `json:"conflicts"`
	HasConflicts bool      `json:"has_conflicts"`
}

// DayScheduleResponse lists one day's assignments for a project
type DayScheduleResponse struct {
	ProjectID   uuid.UUID            `json:"project_id"`
	ShootDate   string               `json:"shoot_date"`
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

// Assign runs the conflict detector and persists a single assignment.
//
// A blocking conflict (double-booked or personally unavailable) without
// override rejects the request and persists nothing. Missing info alone never
// blocks: the assignment is written clean and the gap surfaces through the
// conflict report instead. With override the assignment is written with the
// conflict metadata recorded and conflict_resolved set.
//
// When the request omits the department, the assignment takes the member's
// per-project department from the roster link, falling back to the home
// department for crew not on the roster.
func (s *ScheduleService) Assign(req *AssignRequest) (*AssignOutcome, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	shootDate, err := parseShootDate(req.ShootDate)
	if err != nil {
		return nil, err
	}
	if !callTimeRe.MatchString(req.CallTime) {
		return nil, apperrors.ErrInvalidCallTime
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	crew, err := s.crewRepo.GetByID(req.CrewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to load crew profile: %w", err)
	}

	result, err := s.conflicts.evaluate(req.ProjectID, crew, shootDate)
	if err != nil {
		return nil, err
	}

	if result.Blocking() && !req.Override {
		return &AssignOutcome{
			Status:    AssignmentRejected,
			Conflicts: result,
			Warning:   result.Warning(),
		}, nil
	}

	department := req.Department
	if department == "" {
		link, err := s.projectCrewRepo.GetByPair(req.ProjectID, req.CrewID)
		switch {
		case err == nil:
			department = link.Department
		case errors.Is(err, gorm.ErrRecordNotFound):
			department = crew.Department
		default:
			return nil, fmt.Errorf("failed to resolve department: %w", err)
		}
	}

	assignment := &models.ScheduleAssignment{
		ProjectID:        req.ProjectID,
		CrewID:           req.CrewID,
		ShootDate:        shootDate,
		CallTime:         req.CallTime,
		Department:       department,
		ConflictWarning:  result.Blocking(),
		ConflictType:     result.StoredType(),
		ConflictResolved: req.Override,
	}
	if err := s.assignmentRepo.Upsert(assignment); err != nil {
		return nil, fmt.Errorf("failed to store assignment: %w", err)
	}

	resp := toAssignmentResponse(assignment)
	resp.CrewName = crew.FullName
	resp.CrewEmail = crew.Email

	warning := ""
	if result.Blocking() {
		warning = result.Warning()
	}
	return &AssignOutcome{
		Status:     AssignmentAccepted,
		Assignment: resp,
		Conflicts:  result,
		Warning:    warning,
	}, nil
}

// AssignDepartment assigns every crew member of a department to a shoot date
// in one sweep. Bulk mode always writes: the override concept does not apply
// at department granularity, so conflicts are recorded as metadata instead of
// blocking. Rows that already exist for the triple are left untouched, so a
// duplicate bulk call never overwrites earlier conflict metadata.
//
// The loop is intentionally not transactional across the department: a store
// failure midway leaves earlier rows committed and is reported as-is.
func (s *ScheduleService) AssignDepartment(req *AssignDepartmentRequest) (*DepartmentAssignResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	shootDate, err := parseShootDate(req.ShootDate)
	if err != nil {
		return nil, err
	}
	if !callTimeRe.MatchString(req.CallTime) {
		return nil, apperrors.ErrInvalidCallTime
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	links, err := s.projectCrewRepo.GetByProjectAndDepartment(req.ProjectID, req.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve department crew: %w", err)
	}
	if len(links) == 0 {
		return nil, apperrors.ErrNoCrewInDepartment
	}

	summary := &DepartmentAssignResult{
		ProjectID:  req.ProjectID,
		Department: req.Department,
		ShootDate:  shootDate.Format(models.DateOnly),
		TotalCrew:  len(links),
	}

	for i := range links {
		crew := &links[i].Crew

		result, err := s.conflicts.evaluate(req.ProjectID, crew, shootDate)
		if err != nil {
			return nil, fmt.Errorf("failed to check conflicts for %s: %w", crew.Email, err)
		}
		if result.Blocking() {
			summary.Conflicts++
		}

		assignment := &models.ScheduleAssignment{
			ProjectID:       req.ProjectID,
			CrewID:          crew.ID,
			ShootDate:       shootDate,
			CallTime:        req.CallTime,
			Department:      req.Department,
			ConflictWarning: result.Blocking(),
			ConflictType:    result.StoredType(),
		}
		inserted, err := s.assignmentRepo.CreateIfAbsent(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to store assignment for %s: %w", crew.Email, err)
		}
		if inserted {
			summary.Assigned++
		}
	}

	summary.HasConflicts = summary.Conflicts > 0
	return summary, nil
}

// Unassign removes a crew member from a shoot date. Idempotent: removing an
// absent assignment succeeds without error.
func (s *ScheduleService) Unassign(req *UnassignRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	shootDate, err := parseShootDate(req.ShootDate)
	if err != nil {
		return err
	}
	if err := s.assignmentRepo.DeleteByTriple(req.ProjectID, req.CrewID, shootDate); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// Check runs the conflict detector without writing anything.
func (s *ScheduleService) Check(req *ConflictCheckRequest) (*ConflictResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	shootDate, err := parseShootDate(req.ShootDate)
	if err != nil {
		return nil, err
	}
	return s.conflicts.CheckConflicts(req.ProjectID, req.CrewID, shootDate)
}

// DaySchedule lists the assignments of a project for one shoot date.
func (s *ScheduleService) DaySchedule(projectID uuid.UUID, shootDate string) (*DayScheduleResponse, error) {
	date, err := parseShootDate(shootDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByProjectAndDate(projectID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day schedule: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		resp := toAssignmentResponse(&assignments[i])
		resp.CrewName = assignments[i].Crew.FullName
		resp.CrewEmail = assignments[i].Crew.Email
		responses[i] = *resp
	}

	return &DayScheduleResponse{
		ProjectID:   projectID,
		ShootDate:   date.Format(models.DateOnly),
		Assignments: responses,
		Total:       len(responses),
	}, nil
}

// toAssignmentResponse converts an assignment model to a response
func toAssignmentResponse(a *models.ScheduleAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               a.ID,
		ProjectID:        a.ProjectID,
		CrewID:           a.CrewID,
		ShootDate:        a.ShootDate.Format(models.DateOnly),
		CallTime:         a.CallTime,
		Department:       a.Department,
		ConflictWarning:  a.ConflictWarning,
		ConflictType:     a.ConflictType,
		ConflictResolved: a.ConflictResolved,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
}

// parseShootDate parses a calendar date in YYYY-MM-DD form
func parseShootDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("shoot_date", "must be a date in YYYY-MM-DD format")
	}
	return date, nil
}
