package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/arafatanam/FilmFlow/internal/callsheet"
	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/logger"
	"github.com/arafatanam/FilmFlow/internal/mailer"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallSheetService renders daily call sheets, distributes them by email and
// records each distribution.
type CallSheetService struct {
	projectRepo    repository.ProjectRepositoryInterface
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface
	callSheetRepo  repository.CallSheetRepositoryInterface
	mail           *mailer.Mailer
	validator      *validator.Validate
}

// NewCallSheetService creates a new call sheet service
func NewCallSheetService(
	projectRepo repository.ProjectRepositoryInterface,
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface,
	callSheetRepo repository.CallSheetRepositoryInterface,
	mail *mailer.Mailer,
	validator *validator.Validate,
) *CallSheetService {
	return &CallSheetService{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		callSheetRepo:  callSheetRepo,
		mail:           mail,
		validator:      validator,
	}
}

// SendCallSheetRequest represents a call-sheet distribution request
type SendCallSheetRequest struct {
	ProjectID       uuid.UUID `json:"project_id" validate:"required"`
	ShootDate       string    `json:"shoot_date" validate:"required"`
	GeneralCallTime string    `json:"general_call_time" validate:"required"`
	WeatherSummary  string    `json:"weather_summary,omitempty" validate:"omitempty,max=200"`
	TemperatureC    float64   `json:"temperature_c,omitempty"`
	Sunrise         string    `json:"sunrise,omitempty"`
	Sunset          string    `json:"sunset,omitempty"`
	ADNotes         string    `json:"ad_notes,omitempty"`
	IncludeADNotes  bool      `json:"include_ad_notes"`
}

// CallSheetResponse represents a recorded call-sheet distribution
type CallSheetResponse struct {
	ID              uuid.UUID `json:"id"`
	ProjectID       uuid.UUID `json:"project_id"`
	ShootDate       string    `json:"shoot_date"`
	GeneralCallTime string    `json:"general_call_time"`
	LocationName    string    `json:"location_name,omitempty"`
	WeatherSummary  string    `json:"weather_summary,omitempty"`
	TemperatureC    float64   `json:"temperature_c,omitempty"`
	Sunrise         string    `json:"sunrise,omitempty"`
	Sunset          string    `json:"sunset,omitempty"`
	IncludeADNotes  bool      `json:"include_ad_notes"`
	RecipientCount  int       `json:"recipient_count"`
	SentAt          string    `json:"sent_at"`
}

// SendResult summarizes one distribution run
type SendResult struct {
	CallSheet  CallSheetResponse `json:"call_sheet"`
	Recipients int               `json:"recipients"`
	Delivered  int               `json:"delivered"`
	Failed     int               `json:"failed"`
}

// Send renders the call sheet for a shoot date, emails it to every assigned
// crew member and upserts the distribution record.
//
// Delivery is best-effort per recipient: a failed send is logged and counted
// but never rolls back the record or the other deliveries. Mailer not
// configured fails the whole request since nothing can be distributed.
func (s *CallSheetService) Send(req *SendCallSheetRequest) (*SendResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	shootDate, err := parseShootDate(req.ShootDate)
	if err != nil {
		return nil, err
	}
	if !callTimeRe.MatchString(req.GeneralCallTime) {
		return nil, apperrors.ErrInvalidCallTime
	}
	if s.mail == nil || !s.mail.Enabled() {
		return nil, apperrors.ErrMailerNotConfigured
	}

	project, err := s.projectRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	assignments, err := s.assignmentRepo.ListByProjectAndDate(req.ProjectID, shootDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load day schedule: %w", err)
	}
	if len(assignments) == 0 {
		return nil, apperrors.ErrNoAssignmentsForDate
	}

	pdfBytes, err := s.renderPDF(project, shootDate, assignments, req)
	if err != nil {
		return nil, err
	}

	dateStr := shootDate.Format(models.DateOnly)
	filename := fmt.Sprintf("callsheet-%s-%s.pdf", project.Code, dateStr)

	delivered, failed := 0, 0
	for i := range assignments {
		a := &assignments[i]
		email := mailer.BuildCallSheetEmail(mailer.CallSheetEmailData{
			ProjectName:  project.Name,
			ShootDate:    dateStr,
			CallTime:     a.CallTime,
			GeneralCall:  req.GeneralCallTime,
			LocationName: project.Location,
			Department:   a.Department,
			FullName:     a.Crew.FullName,
		})
		email.To = a.Crew.Email
		email.Attachments = []mailer.Attachment{{Filename: filename, Content: pdfBytes}}

		if err := s.mail.Send(email); err != nil {
			failed++
			logger.New().WithFields(map[string]interface{}{
				"email":      a.Crew.Email,
				"project":    project.Code,
				"shoot_date": dateStr,
				"error":      err.Error(),
			}).Warn("Failed to deliver call sheet")
			continue
		}
		delivered++
	}

	record := &models.CallSheetRecord{
		ProjectID:       project.ID,
		ShootDate:       shootDate,
		GeneralCallTime: req.GeneralCallTime,
		LocationName:    project.Location,
		WeatherSummary:  req.WeatherSummary,
		TemperatureC:    req.TemperatureC,
		Sunrise:         req.Sunrise,
		Sunset:          req.Sunset,
		ADNotes:         req.ADNotes,
		IncludeADNotes:  req.IncludeADNotes,
		RecipientCount:  delivered,
		SentAt:          time.Now().UTC(),
	}
	if err := s.callSheetRepo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to record call sheet distribution: %w", err)
	}

	return &SendResult{
		CallSheet:  *toCallSheetResponse(record),
		Recipients: len(assignments),
		Delivered:  delivered,
		Failed:     failed,
	}, nil
}

// History lists the distribution records of a project, newest first.
func (s *CallSheetService) History(projectID uuid.UUID) ([]CallSheetResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	records, err := s.callSheetRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load call sheet history: %w", err)
	}

	responses := make([]CallSheetResponse, len(records))
	for i := range records {
		responses[i] = *toCallSheetResponse(&records[i])
	}
	return responses, nil
}

// renderPDF assembles the renderer input from the day schedule
func (s *CallSheetService) renderPDF(project *models.Project, shootDate time.Time, assignments []models.ScheduleAssignment, req *SendCallSheetRequest) ([]byte, error) {
	rows := make([]callsheet.ScheduleRow, len(assignments))
	dietary := make(map[string]int)
	for i := range assignments {
		rows[i] = callsheet.ScheduleRow{
			CallTime:   assignments[i].CallTime,
			FullName:   assignments[i].Crew.FullName,
			Department: assignments[i].Department,
			Phone:      assignments[i].Crew.Phone,
		}
		for _, restriction := range assignments[i].Crew.DietaryRestrictionList() {
			dietary[restriction]++
		}
	}

	var weather *callsheet.Weather
	if req.WeatherSummary != "" || req.Sunrise != "" || req.Sunset != "" {
		weather = &callsheet.Weather{
			Summary:      req.WeatherSummary,
			TemperatureC: req.TemperatureC,
			Sunrise:      req.Sunrise,
			Sunset:       req.Sunset,
		}
	}

	pdfBytes, err := callsheet.Render(callsheet.Data{
		ProjectName:     project.Name,
		ProjectCode:     project.Code,
		ShootDate:       shootDate.Format(models.DateOnly),
		GeneralCallTime: req.GeneralCallTime,
		LocationName:    project.Location,
		Weather:         weather,
		Schedule:        rows,
		DietaryCounts:   dietary,
		ADNotes:         req.ADNotes,
		IncludeADNotes:  req.IncludeADNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render call sheet: %w", err)
	}
	return pdfBytes, nil
}

// toCallSheetResponse converts a call sheet record to a response
func toCallSheetResponse(r *models.CallSheetRecord) *CallSheetResponse {
	return &CallSheetResponse{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		ShootDate:       r.ShootDate.Format(models.DateOnly),
		GeneralCallTime: r.GeneralCallTime,
		LocationName:    r.LocationName,
		WeatherSummary:  r.WeatherSummary,
		TemperatureC:    r.TemperatureC,
		Sunrise:         r.Sunrise,
		Sunset:          r.Sunset,
		IncludeADNotes:  r.IncludeADNotes,
		RecipientCount:  r.RecipientCount,
		SentAt:          r.SentAt.Format(time.RFC3339),
	}
}
