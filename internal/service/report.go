package service

import (
	"errors"
	"fmt"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportService builds the production-office reports. The completion report
// reads the persisted link flags; the conflict report re-runs the conflict
// detector against current data, so conflicts introduced after an assignment
// was written still show up.
type ReportService struct {
	projectRepo     repository.ProjectRepositoryInterface
	projectCrewRepo repository.ProjectCrewRepositoryInterface
	assignmentRepo  repository.ScheduleAssignmentRepositoryInterface
	conflicts       *ConflictService
}

// NewReportService creates a new report service
func NewReportService(
	projectRepo repository.ProjectRepositoryInterface,
	projectCrewRepo repository.ProjectCrewRepositoryInterface,
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface,
	conflicts *ConflictService,
) *ReportService {
	return &ReportService{
		projectRepo:     projectRepo,
		projectCrewRepo: projectCrewRepo,
		assignmentRepo:  assignmentRepo,
		conflicts:       conflicts,
	}
}

// CompletionEntry represents one crew member in a completion report
type CompletionEntry struct {
	CrewID        uuid.UUID               `json:"crew_id"`
	FullName      string                  `json:"full_name"`
	Email         string                  `json:"email"`
	Department    string                  `json:"department"`
	FormCompleted bool                    `json:"form_completed"`
	MissingInfo   models.MissingInfoFlags `json:"missing_info"`
	Complete      bool                    `json:"complete"`
}

// CompletionReport summarizes sign-up form and info completeness per project
type CompletionReport struct {
	ProjectID        uuid.UUID         `json:"project_id"`
	ProjectName      string            `json:"project_name"`
	TotalCrew        int               `json:"total_crew"`
	FormsCompleted   int               `json:"forms_completed"`
	FullyComplete    int               `json:"fully_complete"`
	MissingEmergency int               `json:"missing_emergency"`
	MissingDietary   int               `json:"missing_dietary"`
	MissingInsurance int               `json:"missing_insurance"`
	Entries          []CompletionEntry `json:"entries"`
}

// ConflictEntry represents one conflicted assignment in a conflict report
type ConflictEntry struct {
	AssignmentID     uuid.UUID            `json:"assignment_id"`
	CrewID           uuid.UUID            `json:"crew_id"`
	FullName         string               `json:"full_name"`
	Email            string               `json:"email"`
	Department       string               `json:"department"`
	ShootDate        string               `json:"shoot_date"`
	CallTime         string               `json:"call_time"`
	Conflicts        ConflictResult       `json:"conflicts"`
	ConflictType     *models.ConflictType `json:"conflict_type,omitempty"`
	ConflictResolved bool                 `json:"conflict_resolved"`
	Warning          string               `json:"warning"`
}

// ConflictReport lists every currently conflicted assignment of a project
type ConflictReport struct {
	ProjectID        uuid.UUID       `json:"project_id"`
	ProjectName      string          `json:"project_name"`
	TotalAssignments int             `json:"total_assignments"`
	TotalConflicts   int             `json:"total_conflicts"`
	DoubleBooked     int             `json:"double_booked"`
	Unavailable      int             `json:"unavailable"`
	MissingInfo      int             `json:"missing_info"`
	Entries          []ConflictEntry `json:"entries"`
}

// Completion builds the form-completion report for a project from the
// persisted link flags.
func (s *ReportService) Completion(projectID uuid.UUID) (*CompletionReport, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	links, err := s.projectCrewRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project crew: %w", err)
	}

	report := &CompletionReport{
		ProjectID:   projectID,
		ProjectName: project.Name,
		TotalCrew:   len(links),
		Entries:     make([]CompletionEntry, len(links)),
	}

	for i := range links {
		flags := models.MissingInfoFlags{
			MissingEmergency: links[i].MissingEmergency,
			MissingDietary:   links[i].MissingDietary,
			MissingInsurance: links[i].MissingInsurance,
		}
		complete := links[i].FormCompleted && !flags.Any()

		if links[i].FormCompleted {
			report.FormsCompleted++
		}
		if complete {
			report.FullyComplete++
		}
		if flags.MissingEmergency {
			report.MissingEmergency++
		}
		if flags.MissingDietary {
			report.MissingDietary++
		}
		if flags.MissingInsurance {
			report.MissingInsurance++
		}

		report.Entries[i] = CompletionEntry{
			CrewID:        links[i].CrewID,
			FullName:      links[i].Crew.FullName,
			Email:         links[i].Crew.Email,
			Department:    links[i].Department,
			FormCompleted: links[i].FormCompleted,
			MissingInfo:   flags,
			Complete:      complete,
		}
	}

	return report, nil
}

// Conflicts builds the conflict report for a project. Every assignment is
// re-evaluated against current data rather than read from the stored
// conflict metadata: a crew member who marked a date unavailable after being
// assigned, or whose insurance lapsed, appears here even though the stored
// row says clean. Only assignments with at least one live conflict are listed.
func (s *ReportService) Conflicts(projectID uuid.UUID) (*ConflictReport, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	report := &ConflictReport{
		ProjectID:        projectID,
		ProjectName:      project.Name,
		TotalAssignments: len(assignments),
		Entries:          []ConflictEntry{},
	}

	for i := range assignments {
		a := &assignments[i]
		result, err := s.conflicts.evaluate(projectID, &a.Crew, a.ShootDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate conflicts for %s: %w", a.Crew.Email, err)
		}
		if !result.HasAny() {
			continue
		}

		report.TotalConflicts++
		if result.DoubleBooked {
			report.DoubleBooked++
		}
		if result.PersonalUnavailable {
			report.Unavailable++
		}
		if result.MissingInfo {
			report.MissingInfo++
		}

		report.Entries = append(report.Entries, ConflictEntry{
			AssignmentID:     a.ID,
			CrewID:           a.CrewID,
			FullName:         a.Crew.FullName,
			Email:            a.Crew.Email,
			Department:       a.Department,
			ShootDate:        a.ShootDate.Format(models.DateOnly),
			CallTime:         a.CallTime,
			Conflicts:        *result,
			ConflictType:     a.ConflictType,
			ConflictResolved: a.ConflictResolved,
			Warning:          result.Warning(),
		})
	}

	return report, nil
}
