package repository

import (
	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByCode retrieves a project by its human-shareable code
func (r *ProjectRepository) GetByCode(code string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CodeExists reports whether a project code is already taken
func (r *ProjectRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Update persists all fields of an existing project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// List retrieves projects with pagination, newest first
func (r *ProjectRepository) List(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_date DESC").Limit(limit).Offset(offset).Find(&projects).Error
	return projects, total, err
}

// ListByStatus retrieves projects in a given lifecycle status
func (r *ProjectRepository) ListByStatus(status models.ProjectStatus, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).Order("start_date DESC").Limit(limit).Offset(offset).Find(&projects).Error
	return projects, total, err
}
