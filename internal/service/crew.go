package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/logger"
	"github.com/arafatanam/FilmFlow/internal/mailer"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewService handles crew sign-up and profile management. Crew identity is
// keyed by email: the first sign-up creates the profile, later sign-ups to
// other projects reuse and refresh it.
type CrewService struct {
	crewRepo        repository.CrewProfileRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	projectCrewRepo repository.ProjectCrewRepositoryInterface
	mail            *mailer.Mailer
	validator       *validator.Validate
}

// NewCrewService creates a new crew service
func NewCrewService(
	crewRepo repository.CrewProfileRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	projectCrewRepo repository.ProjectCrewRepositoryInterface,
	mail *mailer.Mailer,
	validator *validator.Validate,
) *CrewService {
	return &CrewService{
		crewRepo:        crewRepo,
		projectRepo:     projectRepo,
		projectCrewRepo: projectCrewRepo,
		mail:            mail,
		validator:       validator,
	}
}

// SignUpRequest represents the crew sign-up form for a project
type SignUpRequest struct {
	ProjectCode           string   `json:"project_code" validate:"required"`
	FullName              string   `json:"full_name" validate:"required,max=200"`
	Email                 string   `json:"email" validate:"required,email,max=255"`
	Phone                 string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Department            string   `json:"department" validate:"required,max=100"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=30"`
	DietaryRestrictions   []string `json:"dietary_restrictions,omitempty"`
	Address               string   `json:"address,omitempty" validate:"omitempty,max=300"`
	HasInsurance          bool     `json:"has_insurance"`
	InsuranceExpiry       *string  `json:"insurance_expiry,omitempty"`
	Certifications        []string `json:"certifications,omitempty"`
}

// UpdateProfileRequest represents a partial crew profile update
type UpdateProfileRequest struct {
	FullName              *string   `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Phone                 *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	Department            *string   `json:"department,omitempty" validate:"omitempty,max=100"`
	EmergencyContactName  *string   `json:"emergency_contact_name,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=30"`
	DietaryRestrictions   *[]string `json:"dietary_restrictions,omitempty"`
	Address               *string   `json:"address,omitempty" validate:"omitempty,max=300"`
	HasInsurance          *bool     `json:"has_insurance,omitempty"`
	InsuranceExpiry       *string   `json:"insurance_expiry,omitempty"`
	Certifications        *[]string `json:"certifications,omitempty"`
}

// SetUnavailabilityRequest replaces a crew member's personal unavailable dates
type SetUnavailabilityRequest struct {
	Dates []string `json:"dates" validate:"required"`
}

// CrewProfileResponse represents a crew profile in API responses
type CrewProfileResponse struct {
	ID                    uuid.UUID `json:"id"`
	FullName              string    `json:"full_name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone,omitempty"`
	Department            string    `json:"department,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	DietaryRestrictions   []string  `json:"dietary_restrictions"`
	Address               string    `json:"address,omitempty"`
	HasInsurance          bool      `json:"has_insurance"`
	InsuranceExpiry       *string   `json:"insurance_expiry,omitempty"`
	UnavailableDates      []string  `json:"unavailable_dates"`
	Certifications        []string  `json:"certifications"`
	CreatedAt             string    `json:"created_at"`
	UpdatedAt             string    `json:"updated_at"`
}

// SignUpResponse represents the result of a project sign-up
type SignUpResponse struct {
	Crew          CrewProfileResponse     `json:"crew"`
	ProjectID     uuid.UUID               `json:"project_id"`
	ProjectCode   string                  `json:"project_code"`
	Department    string                  `json:"department"`
	FormCompleted bool                    `json:"form_completed"`
	MissingInfo   models.MissingInfoFlags `json:"missing_info"`
}

// RosterMember represents one crew member on a project roster
type RosterMember struct {
	CrewID         uuid.UUID               `json:"crew_id"`
	FullName       string                  `json:"full_name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone,omitempty"`
	Department     string                  `json:"department"`
	FormCompleted  bool                    `json:"form_completed"`
	MissingInfo    models.MissingInfoFlags `json:"missing_info"`
	Certifications []string                `json:"certifications,omitempty"`
}

// RosterResponse represents the full crew roster of a project
type RosterResponse struct {
	ProjectID uuid.UUID      `json:"project_id"`
	Members   []RosterMember `json:"members"`
	Total     int            `json:"total"`
}

// CrewListResponse represents a paginated crew directory listing
type CrewListResponse struct {
	Crew   []CrewProfileResponse `json:"crew"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// SignUp registers a crew member on a project identified by its join code.
//
// The profile is matched by email. A first-time sign-up creates it; a repeat
// sign-up refreshes the profile fields from the form and links the member to
// the new project. The project link carries the department chosen for this
// project, which may differ from the member's home department. Missing-info
// flags are recomputed and pushed to every project link of the member.
func (s *CrewService) SignUp(req *SignUpRequest) (*SignUpResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	expiry, err := parseOptionalDate(req.InsuranceExpiry, "insurance_expiry")
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByCode(req.ProjectCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}

	crew, err := s.crewRepo.GetByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up crew profile: %w", err)
		}
		crew = &models.CrewProfile{Email: req.Email}
	}

	crew.FullName = req.FullName
	crew.Phone = req.Phone
	crew.Department = req.Department
	crew.EmergencyContactName = req.EmergencyContactName
	crew.EmergencyContactPhone = req.EmergencyContactPhone
	crew.DietaryRestrictions = models.StringList(req.DietaryRestrictions)
	crew.Address = req.Address
	crew.HasInsurance = req.HasInsurance
	crew.InsuranceExpiry = expiry
	crew.Certifications = models.StringList(req.Certifications)

	if crew.ID == uuid.Nil {
		if err := s.crewRepo.Create(crew); err != nil {
			return nil, fmt.Errorf("failed to create crew profile: %w", err)
		}
	} else {
		if err := s.crewRepo.Update(crew); err != nil {
			return nil, fmt.Errorf("failed to update crew profile: %w", err)
		}
	}

	flags := crew.ComputeMissingInfo(time.Now())

	link := &models.ProjectCrew{
		ProjectID:     project.ID,
		CrewID:        crew.ID,
		Department:    req.Department,
		FormCompleted: true,
	}
	link.ApplyMissingInfo(flags)
	if err := s.projectCrewRepo.Upsert(link); err != nil {
		return nil, fmt.Errorf("failed to link crew to project: %w", err)
	}
	if err := s.projectCrewRepo.UpdateMissingInfo(crew.ID, flags); err != nil {
		return nil, fmt.Errorf("failed to refresh missing-info flags: %w", err)
	}

	s.sendWelcomeEmail(crew, project, req.Department)

	return &SignUpResponse{
		Crew:          *toCrewProfileResponse(crew),
		ProjectID:     project.ID,
		ProjectCode:   project.Code,
		Department:    req.Department,
		FormCompleted: true,
		MissingInfo:   flags,
	}, nil
}

// sendWelcomeEmail is fire-and-forget: a delivery failure is logged and never
// fails the sign-up.
func (s *CrewService) sendWelcomeEmail(crew *models.CrewProfile, project *models.Project, department string) {
	if s.mail == nil || !s.mail.Enabled() {
		return
	}
	email := mailer.BuildWelcomeEmail(mailer.WelcomeEmailData{
		FullName:    crew.FullName,
		ProjectName: project.Name,
		ProjectCode: project.Code,
		Department:  department,
		StartDate:   project.StartDate.Format(models.DateOnly),
		EndDate:     project.EndDate.Format(models.DateOnly),
	})
	email.To = crew.Email
	if err := s.mail.Send(email); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"email":   crew.Email,
			"project": project.Code,
			"error":   err.Error(),
		}).Warn("Failed to send welcome email")
	}
}

// GetProfile retrieves a crew profile by ID
func (s *CrewService) GetProfile(crewID uuid.UUID) (*CrewProfileResponse, error) {
	crew, err := s.crewRepo.GetByID(crewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to load crew profile: %w", err)
	}
	return toCrewProfileResponse(crew), nil
}

// ListCrew retrieves the crew directory with pagination
func (s *CrewService) ListCrew(limit, offset int) (*CrewListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	profiles, total, err := s.crewRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}

	responses := make([]CrewProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *toCrewProfileResponse(&profiles[i])
	}
	return &CrewListResponse{Crew: responses, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateProfile applies a partial update to a crew profile and recomputes the
// missing-info flags on every project link of the member.
func (s *CrewService) UpdateProfile(crewID uuid.UUID, req *UpdateProfileRequest) (*CrewProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	crew, err := s.crewRepo.GetByID(crewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to load crew profile: %w", err)
	}

	if req.FullName != nil {
		crew.FullName = *req.FullName
	}
	if req.Phone != nil {
		crew.Phone = *req.Phone
	}
	if req.Department != nil {
		crew.Department = *req.Department
	}
	if req.EmergencyContactName != nil {
		crew.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		crew.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.DietaryRestrictions != nil {
		crew.DietaryRestrictions = models.StringList(*req.DietaryRestrictions)
	}
	if req.Address != nil {
		crew.Address = *req.Address
	}
	if req.HasInsurance != nil {
		crew.HasInsurance = *req.HasInsurance
	}
	if req.InsuranceExpiry != nil {
		if *req.InsuranceExpiry == "" {
			crew.InsuranceExpiry = nil
		} else {
			expiry, err := parseOptionalDate(req.InsuranceExpiry, "insurance_expiry")
			if err != nil {
				return nil, err
			}
			crew.InsuranceExpiry = expiry
		}
	}
	if req.Certifications != nil {
		crew.Certifications = models.StringList(*req.Certifications)
	}

	if err := s.crewRepo.Update(crew); err != nil {
		return nil, fmt.Errorf("failed to update crew profile: %w", err)
	}

	flags := crew.ComputeMissingInfo(time.Now())
	if err := s.projectCrewRepo.UpdateMissingInfo(crew.ID, flags); err != nil {
		return nil, fmt.Errorf("failed to refresh missing-info flags: %w", err)
	}

	return toCrewProfileResponse(crew), nil
}

// SetUnavailability replaces the member's personal unavailable dates. The
// list is replaced wholesale, not merged; sending an empty list clears it.
// Existing assignments on newly blocked dates are left alone and surface
// through the conflict report.
func (s *CrewService) SetUnavailability(crewID uuid.UUID, req *SetUnavailabilityRequest) (*CrewProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for _, d := range req.Dates {
		if _, err := time.Parse(models.DateOnly, d); err != nil {
			return nil, apperrors.NewValidationError("dates", fmt.Sprintf("%q is not a date in YYYY-MM-DD format", d))
		}
	}

	crew, err := s.crewRepo.GetByID(crewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to load crew profile: %w", err)
	}

	crew.UnavailableDates = models.StringList(req.Dates)
	if err := s.crewRepo.Update(crew); err != nil {
		return nil, fmt.Errorf("failed to update unavailability: %w", err)
	}

	return toCrewProfileResponse(crew), nil
}

// Roster lists every crew member linked to a project with their per-project
// department and current missing-info flags.
func (s *CrewService) Roster(projectID uuid.UUID) (*RosterResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	links, err := s.projectCrewRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	members := make([]RosterMember, len(links))
	for i := range links {
		members[i] = RosterMember{
			CrewID:        links[i].CrewID,
			FullName:      links[i].Crew.FullName,
			Email:         links[i].Crew.Email,
			Phone:         links[i].Crew.Phone,
			Department:    links[i].Department,
			FormCompleted: links[i].FormCompleted,
			MissingInfo: models.MissingInfoFlags{
				MissingEmergency: links[i].MissingEmergency,
				MissingDietary:   links[i].MissingDietary,
				MissingInsurance: links[i].MissingInsurance,
			},
			Certifications: links[i].Crew.CertificationList(),
		}
	}

	return &RosterResponse{ProjectID: projectID, Members: members, Total: len(members)}, nil
}

// toCrewProfileResponse converts a crew profile model to a response
func toCrewProfileResponse(c *models.CrewProfile) *CrewProfileResponse {
	resp := &CrewProfileResponse{
		ID:                    c.ID,
		FullName:              c.FullName,
		Email:                 c.Email,
		Phone:                 c.Phone,
		Department:            c.Department,
		EmergencyContactName:  c.EmergencyContactName,
		EmergencyContactPhone: c.EmergencyContactPhone,
		DietaryRestrictions:   c.DietaryRestrictionList(),
		Address:               c.Address,
		HasInsurance:          c.HasInsurance,
		UnavailableDates:      c.UnavailableDateList(),
		Certifications:        c.CertificationList(),
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.Format(time.RFC3339),
	}
	if c.InsuranceExpiry != nil {
		formatted := c.InsuranceExpiry.Format(models.DateOnly)
		resp.InsuranceExpiry = &formatted
	}
	return resp
}

// parseOptionalDate parses an optional YYYY-MM-DD value from a request
func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse(models.DateOnly, *value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &date, nil
}
