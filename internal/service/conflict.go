package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"
	apperrors "github.com/arafatanam/FilmFlow/internal/errors"
	"github.com/arafatanam/FilmFlow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictResult carries the three independent conflict predicates for a
// (project, crew, date) triple. All three are always evaluated; none
// short-circuits another, because callers need every flag simultaneously to
// classify the conflict type for storage.
type ConflictResult struct {
	DoubleBooked        bool `json:"double_booked"`
	PersonalUnavailable bool `json:"personal_unavailable"`
	MissingInfo         bool `json:"missing_info"`
}

// HasAny reports whether any predicate fired.
func (r ConflictResult) HasAny() bool {
	return r.DoubleBooked || r.PersonalUnavailable || r.MissingInfo
}

// Blocking reports whether the result blocks a single assignment without an
// explicit override. Missing info alone never blocks; only double-booking and
// personal unavailability do. The bulk department path ignores this entirely
// and always writes.
func (r ConflictResult) Blocking() bool {
	return r.DoubleBooked || r.PersonalUnavailable
}

// Type classifies the result for storage on an assignment row. Double-booking
// takes precedence over unavailability, which takes precedence over missing
// info. Returns nil when no predicate fired.
func (r ConflictResult) Type() *models.ConflictType {
	switch {
	case r.DoubleBooked:
		t := models.ConflictTypeDoubleBooked
		return &t
	case r.PersonalUnavailable:
		t := models.ConflictTypeUnavailable
		return &t
	case r.MissingInfo:
		t := models.ConflictTypeMissingInfo
		return &t
	}
	return nil
}

// StoredType classifies the result the way the scheduling engine persists it:
// only double-booking and unavailability are recorded as conflict types on
// assignment rows; missing info is surfaced by the conflict report instead.
func (r ConflictResult) StoredType() *models.ConflictType {
	switch {
	case r.DoubleBooked:
		t := models.ConflictTypeDoubleBooked
		return &t
	case r.PersonalUnavailable:
		t := models.ConflictTypeUnavailable
		return &t
	}
	return nil
}

// Warning renders a human-readable summary of the fired predicates, or ""
// when the result is clean.
func (r ConflictResult) Warning() string {
	switch {
	case r.DoubleBooked && r.PersonalUnavailable:
		return "crew member is double-booked on another project and has marked this date unavailable"
	case r.DoubleBooked:
		return "crew member is already assigned to another project on this date"
	case r.PersonalUnavailable:
		return "crew member has marked this date as unavailable"
	case r.MissingInfo:
		return "crew member is missing emergency contact, dietary or insurance info"
	}
	return ""
}

// ConflictService evaluates scheduling conflicts. It is a pure read over the
// store: checking never writes anything.
type ConflictService struct {
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface
	crewRepo       repository.CrewProfileRepositoryInterface
	projectRepo    repository.ProjectRepositoryInterface
}

// NewConflictService creates a new conflict service
func NewConflictService(
	assignmentRepo repository.ScheduleAssignmentRepositoryInterface,
	crewRepo repository.CrewProfileRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
) *ConflictService {
	return &ConflictService{
		assignmentRepo: assignmentRepo,
		crewRepo:       crewRepo,
		projectRepo:    projectRepo,
	}
}

// CheckConflicts evaluates all three conflict predicates for assigning the
// crew member to the shoot date under the given project:
//
//   - DoubleBooked: an assignment exists for this crew member on this exact
//     date under any other project. Cross-project collisions only; within the
//     same project the triple uniqueness constraint already forbids a second
//     row.
//   - PersonalUnavailable: the date is in the crew member's personal
//     unavailable-dates set.
//   - MissingInfo: emergency contact incomplete, no dietary entries recorded,
//     or insurance absent/expired relative to the shoot date.
func (s *ConflictService) CheckConflicts(projectID, crewID uuid.UUID, shootDate time.Time) (*ConflictResult, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	crew, err := s.crewRepo.GetByID(crewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewNotFound
		}
		return nil, fmt.Errorf("failed to load crew profile: %w", err)
	}

	return s.evaluate(projectID, crew, shootDate)
}

// evaluate runs the predicates against an already-loaded profile. Split out
// so bulk assignment can reuse the loaded ProjectCrew preloads without a
// second profile fetch per crew member.
func (s *ConflictService) evaluate(projectID uuid.UUID, crew *models.CrewProfile, shootDate time.Time) (*ConflictResult, error) {
	doubleBooked, err := s.assignmentRepo.ExistsForCrewOnDate(crew.ID, shootDate, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check double booking: %w", err)
	}

	flags := crew.ComputeMissingInfo(shootDate)

	return &ConflictResult{
		DoubleBooked:        doubleBooked,
		PersonalUnavailable: crew.IsUnavailableOn(shootDate),
		MissingInfo:         flags.Any(),
	}, nil
}
