package models

import (
	"time"
)

// Project represents a production. It is identified by a unique
// human-shareable code that crew members use to sign up. Lifecycle is
// soft-only: cancellation is a status change, never a deletion.
type Project struct {
	BaseModel
	Code      string        `json:"code" gorm:"uniqueIndex;not null;size:12" validate:"required,max=12"`
	Name      string        `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	StartDate time.Time     `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   time.Time     `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Location  string        `json:"location" gorm:"size:300"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Status    ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'planning'"`

	// Relationships
	Crew        []ProjectCrew        `json:"crew,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assignments []ScheduleAssignment `json:"assignments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CallSheets  []CallSheetRecord    `json:"call_sheets,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ContainsDate reports whether the given calendar date falls inside the
// project's inclusive shooting range.
func (p *Project) ContainsDate(date time.Time) bool {
	d := dayOf(date)
	return !d.Before(dayOf(p.StartDate)) && !d.After(dayOf(p.EndDate))
}
