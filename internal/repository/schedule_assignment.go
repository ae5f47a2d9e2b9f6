package repository

import (
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleAssignmentRepository handles database operations for schedule
// assignments. The unique (project_id, crew_id, shoot_date) index is the
// sole concurrency-correctness mechanism: concurrent writers for the same
// triple resolve through upsert semantics, never duplicate rows.
type ScheduleAssignmentRepository struct {
	db *gorm.DB
}

// Ensure ScheduleAssignmentRepository implements ScheduleAssignmentRepositoryInterface
var _ ScheduleAssignmentRepositoryInterface = (*ScheduleAssignmentRepository)(nil)

// NewScheduleAssignmentRepository creates a new schedule assignment repository
func NewScheduleAssignmentRepository(db *gorm.DB) *ScheduleAssignmentRepository {
	return &ScheduleAssignmentRepository{db: db}
}

// Upsert inserts the assignment or, if the (project, crew, date) triple
// already exists, updates call time, department and conflict metadata in
// place. Used by the single-assign path.
func (r *ScheduleAssignmentRepository) Upsert(assignment *models.ScheduleAssignment) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "crew_id"}, {Name: "shoot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"call_time", "department",
			"conflict_warning", "conflict_type", "conflict_resolved",
			"updated_at",
		}),
	}).Create(assignment).Error
}

// CreateIfAbsent inserts the assignment only when no row exists for the
// triple. Existing rows are left untouched, so duplicate bulk calls never
// overwrite previously recorded conflict metadata. Returns whether a row was
// actually inserted.
func (r *ScheduleAssignmentRepository) CreateIfAbsent(assignment *models.ScheduleAssignment) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "crew_id"}, {Name: "shoot_date"}},
		DoNothing: true,
	}).Create(assignment)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// GetByTriple retrieves the assignment for a (project, crew, date) triple
func (r *ScheduleAssignmentRepository) GetByTriple(projectID, crewID uuid.UUID, shootDate time.Time) (*models.ScheduleAssignment, error) {
	var assignment models.ScheduleAssignment
	err := r.db.First(&assignment,
		"project_id = ? AND crew_id = ? AND shoot_date = ?",
		projectID, crewID, shootDate).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// DeleteByTriple removes the assignment for a triple. Idempotent: deleting an
// absent row is not an error.
func (r *ScheduleAssignmentRepository) DeleteByTriple(projectID, crewID uuid.UUID, shootDate time.Time) error {
	return r.db.Delete(&models.ScheduleAssignment{},
		"project_id = ? AND crew_id = ? AND shoot_date = ?",
		projectID, crewID, shootDate).Error
}

// ExistsForCrewOnDate reports whether the crew member already holds an
// assignment on the date under any project other than excludeProjectID.
// Cross-project collisions only: within a project the triple uniqueness
// already prevents a second row.
func (r *ScheduleAssignmentRepository) ExistsForCrewOnDate(crewID uuid.UUID, shootDate time.Time, excludeProjectID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ScheduleAssignment{}).
		Where("crew_id = ? AND shoot_date = ? AND project_id != ?", crewID, shootDate, excludeProjectID).
		Count(&count).Error
	return count > 0, err
}

// ListByProjectAndDate retrieves a day's schedule with crew profiles
// preloaded, ordered by call time
func (r *ScheduleAssignmentRepository) ListByProjectAndDate(projectID uuid.UUID, shootDate time.Time) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Preload("Crew").
		Where("project_id = ? AND shoot_date = ?", projectID, shootDate).
		Order("call_time ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListByProject retrieves all assignments of a project with crew profiles
// preloaded, ordered by date then call time
func (r *ScheduleAssignmentRepository) ListByProject(projectID uuid.UUID) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Preload("Crew").
		Where("project_id = ?", projectID).
		Order("shoot_date ASC, call_time ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListByCrewOnDate retrieves every assignment the crew member holds on a
// date across all projects
func (r *ScheduleAssignmentRepository) ListByCrewOnDate(crewID uuid.UUID, shootDate time.Time) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Where("crew_id = ? AND shoot_date = ?", crewID, shootDate).Find(&assignments).Error
	return assignments, err
}

// CountByProjectAndDate returns the number of assignments for a (project, date)
func (r *ScheduleAssignmentRepository) CountByProjectAndDate(projectID uuid.UUID, shootDate time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ScheduleAssignment{}).
		Where("project_id = ? AND shoot_date = ?", projectID, shootDate).
		Count(&count).Error
	return count, err
}
