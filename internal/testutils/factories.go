package testutils

import (
	"fmt"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	// Derive a unique code from the UUID to avoid collisions between tests
	code := "T" + id.String()[:5]

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:      code,
		Name:      "Test Production",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Location:  "Studio Lot A",
		Latitude:  34.0522,
		Longitude: -118.2437,
		Status:    models.ProjectStatusActive,
	}
}

// WithCode sets a custom sign-up code for the project
func (f *ProjectFactory) WithCode(code string) *models.Project {
	project := f.Create()
	project.Code = code
	return project
}

// WithDates sets the shooting date range for the project
func (f *ProjectFactory) WithDates(start, end time.Time) *models.Project {
	project := f.Create()
	project.StartDate = start
	project.EndDate = end
	return project
}

// WithStatus sets a custom lifecycle status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// CrewProfileFactory provides methods to create test CrewProfile data
type CrewProfileFactory struct{}

// NewCrewProfileFactory creates a new CrewProfileFactory
func NewCrewProfileFactory() *CrewProfileFactory {
	return &CrewProfileFactory{}
}

// Create creates a complete test CrewProfile with no missing info
func (f *CrewProfileFactory) Create() *models.CrewProfile {
	id := uuid.New()
	expiry := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)

	return &models.CrewProfile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:              "Jordan Reyes",
		Email:                 fmt.Sprintf("jordan.reyes+%s@test.com", id.String()[:8]),
		Phone:                 "+1-555-0147",
		Department:            "Camera",
		EmergencyContactName:  "Sam Reyes",
		EmergencyContactPhone: "+1-555-0148",
		DietaryRestrictions:   models.StringList([]string{"vegetarian"}),
		Address:               "42 Backlot Way",
		HasInsurance:          true,
		InsuranceExpiry:       &expiry,
		UnavailableDates:      models.StringList(nil),
		Certifications:        models.StringList([]string{"drone-pilot"}),
	}
}

// WithEmail sets a custom email for the crew profile
func (f *CrewProfileFactory) WithEmail(email string) *models.CrewProfile {
	crew := f.Create()
	crew.Email = email
	return crew
}

// WithDepartment sets a custom home department for the crew profile
func (f *CrewProfileFactory) WithDepartment(department string) *models.CrewProfile {
	crew := f.Create()
	crew.Department = department
	return crew
}

// WithMissingEmergency clears the emergency contact fields
func (f *CrewProfileFactory) WithMissingEmergency() *models.CrewProfile {
	crew := f.Create()
	crew.EmergencyContactName = ""
	crew.EmergencyContactPhone = ""
	return crew
}

// WithoutDietary clears the dietary restrictions list
func (f *CrewProfileFactory) WithoutDietary() *models.CrewProfile {
	crew := f.Create()
	crew.DietaryRestrictions = models.StringList(nil)
	return crew
}

// WithoutInsurance marks the crew member as uninsured
func (f *CrewProfileFactory) WithoutInsurance() *models.CrewProfile {
	crew := f.Create()
	crew.HasInsurance = false
	crew.InsuranceExpiry = nil
	return crew
}

// WithInsuranceExpiry sets a specific insurance expiry date
func (f *CrewProfileFactory) WithInsuranceExpiry(expiry time.Time) *models.CrewProfile {
	crew := f.Create()
	crew.HasInsurance = true
	crew.InsuranceExpiry = &expiry
	return crew
}

// WithUnavailableDates sets the personal unavailable dates
func (f *CrewProfileFactory) WithUnavailableDates(dates ...string) *models.CrewProfile {
	crew := f.Create()
	crew.UnavailableDates = models.StringList(dates)
	return crew
}

// ProjectCrewFactory provides methods to create test ProjectCrew links
type ProjectCrewFactory struct{}

// NewProjectCrewFactory creates a new ProjectCrewFactory
func NewProjectCrewFactory() *ProjectCrewFactory {
	return &ProjectCrewFactory{}
}

// Create creates a test ProjectCrew link with default values
func (f *ProjectCrewFactory) Create(projectID, crewID uuid.UUID) *models.ProjectCrew {
	return &models.ProjectCrew{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:     projectID,
		CrewID:        crewID,
		Department:    "Camera",
		FormCompleted: true,
	}
}

// WithDepartment sets the project-specific department on the link
func (f *ProjectCrewFactory) WithDepartment(projectID, crewID uuid.UUID, department string) *models.ProjectCrew {
	link := f.Create(projectID, crewID)
	link.Department = department
	return link
}

// WithMissingInfo applies missing-info flags to the link
func (f *ProjectCrewFactory) WithMissingInfo(projectID, crewID uuid.UUID, flags models.MissingInfoFlags) *models.ProjectCrew {
	link := f.Create(projectID, crewID)
	link.ApplyMissingInfo(flags)
	return link
}

// ScheduleAssignmentFactory provides methods to create test ScheduleAssignment data
type ScheduleAssignmentFactory struct{}

// NewScheduleAssignmentFactory creates a new ScheduleAssignmentFactory
func NewScheduleAssignmentFactory() *ScheduleAssignmentFactory {
	return &ScheduleAssignmentFactory{}
}

// Create creates a test ScheduleAssignment with default values
func (f *ScheduleAssignmentFactory) Create(projectID, crewID uuid.UUID, shootDate time.Time) *models.ScheduleAssignment {
	return &models.ScheduleAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:  projectID,
		CrewID:     crewID,
		ShootDate:  shootDate,
		CallTime:   "07:00",
		Department: "Camera",
	}
}

// WithCallTime sets a custom call time on the assignment
func (f *ScheduleAssignmentFactory) WithCallTime(projectID, crewID uuid.UUID, shootDate time.Time, callTime string) *models.ScheduleAssignment {
	assignment := f.Create(projectID, crewID, shootDate)
	assignment.CallTime = callTime
	return assignment
}

// WithConflict marks the assignment with stored conflict metadata
func (f *ScheduleAssignmentFactory) WithConflict(projectID, crewID uuid.UUID, shootDate time.Time, conflictType models.ConflictType, resolved bool) *models.ScheduleAssignment {
	assignment := f.Create(projectID, crewID, shootDate)
	assignment.ConflictWarning = true
	assignment.ConflictType = &conflictType
	assignment.ConflictResolved = resolved
	return assignment
}

// CallSheetRecordFactory provides methods to create test CallSheetRecord data
type CallSheetRecordFactory struct{}

// NewCallSheetRecordFactory creates a new CallSheetRecordFactory
func NewCallSheetRecordFactory() *CallSheetRecordFactory {
	return &CallSheetRecordFactory{}
}

// Create creates a test CallSheetRecord with default values
func (f *CallSheetRecordFactory) Create(projectID uuid.UUID, shootDate time.Time) *models.CallSheetRecord {
	return &models.CallSheetRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:       projectID,
		ShootDate:       shootDate,
		GeneralCallTime: "06:30",
		LocationName:    "Studio Lot A",
		WeatherSummary:  "Clear",
		TemperatureC:    22,
		Sunrise:         "06:12",
		Sunset:          "19:48",
		RecipientCount:  5,
		SentAt:          time.Now().UTC(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project            *ProjectFactory
	CrewProfile        *CrewProfileFactory
	ProjectCrew        *ProjectCrewFactory
	ScheduleAssignment *ScheduleAssignmentFactory
	CallSheetRecord    *CallSheetRecordFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:            NewProjectFactory(),
		CrewProfile:        NewCrewProfileFactory(),
		ProjectCrew:        NewProjectCrewFactory(),
		ScheduleAssignment: NewScheduleAssignmentFactory(),
		CallSheetRecord:    NewCallSheetRecordFactory(),
	}
}
