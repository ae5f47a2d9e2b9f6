package repository

import (
	"time"

	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CallSheetRepository handles database operations for call sheet records
type CallSheetRepository struct {
	db *gorm.DB
}

// Ensure CallSheetRepository implements CallSheetRepositoryInterface
var _ CallSheetRepositoryInterface = (*CallSheetRepository)(nil)

// NewCallSheetRepository creates a new call sheet repository
func NewCallSheetRepository(db *gorm.DB) *CallSheetRepository {
	return &CallSheetRepository{db: db}
}

// Upsert inserts the distribution record or, if one already exists for the
// (project, date) pair, updates it in place so re-sends never duplicate rows.
func (r *CallSheetRepository) Upsert(record *models.CallSheetRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "shoot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"general_call_time", "location_name",
			"weather_summary", "temperature_c", "sunrise", "sunset",
			"ad_notes", "include_ad_notes",
			"recipient_count", "sent_at", "updated_at",
		}),
	}).Create(record).Error
}

// GetByProjectAndDate retrieves the record for a (project, date) pair
func (r *CallSheetRepository) GetByProjectAndDate(projectID uuid.UUID, shootDate time.Time) (*models.CallSheetRecord, error) {
	var record models.CallSheetRecord
	err := r.db.First(&record, "project_id = ? AND shoot_date = ?", projectID, shootDate).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByProject retrieves the distribution history of a project, newest first
func (r *CallSheetRepository) ListByProject(projectID uuid.UUID) ([]models.CallSheetRecord, error) {
	var records []models.CallSheetRecord
	err := r.db.Where("project_id = ?", projectID).Order("shoot_date DESC").Find(&records).Error
	return records, err
}
