package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAssignment assigns one crew member to one shoot date within one
// project. At most one row exists per (project, crew, date) triple; repeated
// assignments upsert call time, department and conflict metadata instead of
// duplicating rows.
type ScheduleAssignment struct {
	BaseModel
	ProjectID        uuid.UUID     `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_triple;index" validate:"required"`
	CrewID           uuid.UUID     `json:"crew_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignment_triple;index" validate:"required"`
	ShootDate        time.Time     `json:"shoot_date" gorm:"type:date;not null;uniqueIndex:idx_assignment_triple;index" validate:"required"`
	CallTime         string        `json:"call_time" gorm:"size:5;not null" validate:"required"`
	Department       string        `json:"department" gorm:"size:100"`
	ConflictWarning  bool          `json:"conflict_warning" gorm:"default:false"`
	ConflictType     *ConflictType `json:"conflict_type,omitempty" gorm:"type:varchar(20)"`
	ConflictResolved bool          `json:"conflict_resolved" gorm:"default:false"`

	// Relationships
	Project Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Crew    CrewProfile `json:"crew,omitempty" gorm:"foreignKey:CrewID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleAssignment
func (ScheduleAssignment) TableName() string {
	return "schedule_assignments"
}
