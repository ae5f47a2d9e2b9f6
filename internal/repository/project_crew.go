package repository

import (
	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectCrewRepository handles database operations for project-crew links
type ProjectCrewRepository struct {
	db *gorm.DB
}

// Ensure ProjectCrewRepository implements ProjectCrewRepositoryInterface
var _ ProjectCrewRepositoryInterface = (*ProjectCrewRepository)(nil)

// NewProjectCrewRepository creates a new project crew repository
func NewProjectCrewRepository(db *gorm.DB) *ProjectCrewRepository {
	return &ProjectCrewRepository{db: db}
}

// Upsert inserts the link or, if the (project, crew) pair already exists,
// updates the department, form and missing-info fields in place. The unique
// pair constraint is the sole guard against duplicate links under concurrent
// sign-ups.
func (r *ProjectCrewRepository) Upsert(link *models.ProjectCrew) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "crew_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"department", "form_completed",
			"missing_emergency", "missing_dietary", "missing_insurance",
			"updated_at",
		}),
	}).Create(link).Error
}

// GetByPair retrieves the link for a (project, crew) pair
func (r *ProjectCrewRepository) GetByPair(projectID, crewID uuid.UUID) (*models.ProjectCrew, error) {
	var link models.ProjectCrew
	err := r.db.First(&link, "project_id = ? AND crew_id = ?", projectID, crewID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByProjectID retrieves all crew links for a project with profiles preloaded
func (r *ProjectCrewRepository) GetByProjectID(projectID uuid.UUID) ([]models.ProjectCrew, error) {
	var links []models.ProjectCrew
	err := r.db.Preload("Crew").Where("project_id = ?", projectID).Find(&links).Error
	return links, err
}

// GetByProjectAndDepartment retrieves crew links for a project filtered by the
// project-specific department
func (r *ProjectCrewRepository) GetByProjectAndDepartment(projectID uuid.UUID, department string) ([]models.ProjectCrew, error) {
	var links []models.ProjectCrew
	err := r.db.Preload("Crew").
		Where("project_id = ? AND department = ?", projectID, department).
		Find(&links).Error
	return links, err
}

// GetByCrewID retrieves all project links for a crew member
func (r *ProjectCrewRepository) GetByCrewID(crewID uuid.UUID) ([]models.ProjectCrew, error) {
	var links []models.ProjectCrew
	err := r.db.Where("crew_id = ?", crewID).Find(&links).Error
	return links, err
}

// UpdateMissingInfo recomputes the derived missing-info flags on every link
// row of a crew member. Called whenever the underlying CrewProfile is written
// so the persisted flags always reflect current profile state.
func (r *ProjectCrewRepository) UpdateMissingInfo(crewID uuid.UUID, flags models.MissingInfoFlags) error {
	return r.db.Model(&models.ProjectCrew{}).
		Where("crew_id = ?", crewID).
		Updates(map[string]interface{}{
			"missing_emergency": flags.MissingEmergency,
			"missing_dietary":   flags.MissingDietary,
			"missing_insurance": flags.MissingInsurance,
		}).Error
}

// SetFormCompleted marks the sign-up form state on a link row
func (r *ProjectCrewRepository) SetFormCompleted(projectID, crewID uuid.UUID, completed bool) error {
	return r.db.Model(&models.ProjectCrew{}).
		Where("project_id = ? AND crew_id = ?", projectID, crewID).
		Update("form_completed", completed).Error
}

// CountByProject returns the total number of crew on a project
func (r *ProjectCrewRepository) CountByProject(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectCrew{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
