package repository

import (
	"github.com/arafatanam/FilmFlow/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewProfileRepository handles database operations for crew profiles
type CrewProfileRepository struct {
	db *gorm.DB
}

// Ensure CrewProfileRepository implements CrewProfileRepositoryInterface
var _ CrewProfileRepositoryInterface = (*CrewProfileRepository)(nil)

// NewCrewProfileRepository creates a new crew profile repository
func NewCrewProfileRepository(db *gorm.DB) *CrewProfileRepository {
	return &CrewProfileRepository{db: db}
}

// Create creates a new crew profile
func (r *CrewProfileRepository) Create(profile *models.CrewProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a crew profile by ID
func (r *CrewProfileRepository) GetByID(id uuid.UUID) (*models.CrewProfile, error) {
	var profile models.CrewProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a crew profile by email, the durable identity key
func (r *CrewProfileRepository) GetByEmail(email string) (*models.CrewProfile, error) {
	var profile models.CrewProfile
	err := r.db.First(&profile, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update persists all fields of an existing crew profile
func (r *CrewProfileRepository) Update(profile *models.CrewProfile) error {
	return r.db.Save(profile).Error
}

// GetByIDs retrieves crew profiles for a set of IDs
func (r *CrewProfileRepository) GetByIDs(ids []uuid.UUID) ([]models.CrewProfile, error) {
	var profiles []models.CrewProfile
	if len(ids) == 0 {
		return profiles, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

// List retrieves crew profiles with pagination, ordered by name
func (r *CrewProfileRepository) List(limit, offset int) ([]models.CrewProfile, int64, error) {
	var profiles []models.CrewProfile
	var total int64

	if err := r.db.Model(&models.CrewProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}
