package models

import (
	"github.com/google/uuid"
)

// ProjectCrew links a CrewProfile to a Project: "this person is on this
// production". At most one row exists per (project, crew) pair. The missing_*
// flags are derived from the linked CrewProfile and recomputed whenever the
// profile is created or updated.
type ProjectCrew struct {
	BaseModel
	ProjectID        uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_crew_pair;index" validate:"required"`
	CrewID           uuid.UUID `json:"crew_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_crew_pair;index" validate:"required"`
	Department       string    `json:"department" gorm:"size:100"`
	FormCompleted    bool      `json:"form_completed" gorm:"default:false"`
	MissingEmergency bool      `json:"missing_emergency" gorm:"default:false"`
	MissingDietary   bool      `json:"missing_dietary" gorm:"default:false"`
	MissingInsurance bool      `json:"missing_insurance" gorm:"default:false"`

	// Relationships
	Project Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Crew    CrewProfile `json:"crew,omitempty" gorm:"foreignKey:CrewID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectCrew
func (ProjectCrew) TableName() string {
	return "project_crew"
}

// ApplyMissingInfo copies derived compliance flags onto the link row.
func (pc *ProjectCrew) ApplyMissingInfo(flags MissingInfoFlags) {
	pc.MissingEmergency = flags.MissingEmergency
	pc.MissingDietary = flags.MissingDietary
	pc.MissingInsurance = flags.MissingInsurance
}
