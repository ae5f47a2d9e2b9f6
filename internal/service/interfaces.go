package service

import (
	"github.com/google/uuid"
)

// Service interfaces for dependency injection and testing.
// These interfaces allow for easy mocking in unit tests.

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(req *CreateProjectRequest) (*ProjectResponse, error)
	GetProject(projectID uuid.UUID) (*ProjectResponse, error)
	GetProjectByCode(code string) (*ProjectResponse, error)
	ListProjects(status string, limit, offset int) (*ProjectListResponse, error)
	UpdateProject(projectID uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	UpdateStatus(projectID uuid.UUID, req *UpdateStatusRequest) (*ProjectResponse, error)
}

// CrewServiceInterface defines the interface for crew service
type CrewServiceInterface interface {
	SignUp(req *SignUpRequest) (*SignUpResponse, error)
	GetProfile(crewID uuid.UUID) (*CrewProfileResponse, error)
	ListCrew(limit, offset int) (*CrewListResponse, error)
	UpdateProfile(crewID uuid.UUID, req *UpdateProfileRequest) (*CrewProfileResponse, error)
	SetUnavailability(crewID uuid.UUID, req *SetUnavailabilityRequest) (*CrewProfileResponse, error)
	Roster(projectID uuid.UUID) (*RosterResponse, error)
}

// ScheduleServiceInterface defines the interface for schedule service
type ScheduleServiceInterface interface {
	Assign(req *AssignRequest) (*AssignOutcome, error)
	AssignDepartment(req *AssignDepartmentRequest) (*DepartmentAssignResult, error)
	Unassign(req *UnassignRequest) error
	Check(req *ConflictCheckRequest) (*ConflictResult, error)
	DaySchedule(projectID uuid.UUID, shootDate string) (*DayScheduleResponse, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	Completion(projectID uuid.UUID) (*CompletionReport, error)
	Conflicts(projectID uuid.UUID) (*ConflictReport, error)
}

// CallSheetServiceInterface defines the interface for call sheet service
type CallSheetServiceInterface interface {
	Send(req *SendCallSheetRequest) (*SendResult, error)
	History(projectID uuid.UUID) ([]CallSheetResponse, error)
}

// Interface compliance checks
var (
	_ ProjectServiceInterface   = (*ProjectService)(nil)
	_ CrewServiceInterface      = (*CrewService)(nil)
	_ ScheduleServiceInterface  = (*ScheduleService)(nil)
	_ ReportServiceInterface    = (*ReportService)(nil)
	_ CallSheetServiceInterface = (*CallSheetService)(nil)
)
