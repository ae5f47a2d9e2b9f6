package repository

import (
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByCode(code string) (*models.Project, error)
	CodeExists(code string) (bool, error)
	Update(project *models.Project) error
	List(limit, offset int) ([]models.Project, int64, error)
	ListByStatus(status models.ProjectStatus, limit, offset int) ([]models.Project, int64, error)
}

// CrewProfileRepositoryInterface defines the interface for crew profile repository operations
type CrewProfileRepositoryInterface interface {
	Create(profile *models.CrewProfile) error
	GetByID(id uuid.UUID) (*models.CrewProfile, error)
	GetByEmail(email string) (*models.CrewProfile, error)
	Update(profile *models.CrewProfile) error
	GetByIDs(ids []uuid.UUID) ([]models.CrewProfile, error)
	List(limit, offset int) ([]models.CrewProfile, int64, error)
}

// ProjectCrewRepositoryInterface defines the interface for project crew link repository operations
type ProjectCrewRepositoryInterface interface {
	Upsert(link *models.ProjectCrew) error
	GetByPair(projectID, crewID uuid.UUID) (*models.ProjectCrew, error)
	GetByProjectID(projectID uuid.UUID) ([]models.ProjectCrew, error)
	GetByProjectAndDepartment(projectID uuid.UUID, department string) ([]models.ProjectCrew, error)
	GetByCrewID(crewID uuid.UUID) ([]models.ProjectCrew, error)
	UpdateMissingInfo(crewID uuid.UUID, flags models.MissingInfoFlags) error
	SetFormCompleted(projectID, crewID uuid.UUID, completed bool) error
	CountByProject(projectID uuid.UUID) (int64, error)
}

// ScheduleAssignmentRepositoryInterface defines the interface for schedule assignment repository operations
type ScheduleAssignmentRepositoryInterface interface {
	Upsert(assignment *models.ScheduleAssignment) error
	CreateIfAbsent(assignment *models.ScheduleAssignment) (bool, error)
	GetByTriple(projectID, crewID uuid.UUID, shootDate time.Time) (*models.ScheduleAssignment, error)
	DeleteByTriple(projectID, crewID uuid.UUID, shootDate time.Time) error
	ExistsForCrewOnDate(crewID uuid.UUID, shootDate time.Time, excludeProjectID uuid.UUID) (bool, error)
	ListByProjectAndDate(projectID uuid.UUID, shootDate time.Time) ([]models.ScheduleAssignment, error)
	ListByProject(projectID uuid.UUID) ([]models.ScheduleAssignment, error)
	ListByCrewOnDate(crewID uuid.UUID, shootDate time.Time) ([]models.ScheduleAssignment, error)
	CountByProjectAndDate(projectID uuid.UUID, shootDate time.Time) (int64, error)
}

// CallSheetRepositoryInterface defines the interface for call sheet record repository operations
type CallSheetRepositoryInterface interface {
	Upsert(record *models.CallSheetRecord) error
	GetByProjectAndDate(projectID uuid.UUID, shootDate time.Time) (*models.CallSheetRecord, error)
	ListByProject(projectID uuid.UUID) ([]models.CallSheetRecord, error)
}
