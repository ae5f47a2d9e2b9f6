package models

import (
	"time"

	"github.com/google/uuid"
)

// CallSheetRecord is a denormalized record of one call-sheet distribution
// event. At most one row exists per (project, date); re-sending a call sheet
// updates the existing record in place.
type CallSheetRecord struct {
	BaseModel
	ProjectID       uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_call_sheet_project_date;index" validate:"required"`
	ShootDate       time.Time `json:"shoot_date" gorm:"type:date;not null;uniqueIndex:idx_call_sheet_project_date" validate:"required"`
	GeneralCallTime string    `json:"general_call_time" gorm:"size:5"`
	LocationName    string    `json:"location_name" gorm:"size:300"`
	WeatherSummary  string    `json:"weather_summary" gorm:"size:200"`
	TemperatureC    float64   `json:"temperature_c"`
	Sunrise         string    `json:"sunrise" gorm:"size:5"`
	Sunset          string    `json:"sunset" gorm:"size:5"`
	ADNotes         string    `json:"ad_notes" gorm:"type:text"`
	IncludeADNotes  bool      `json:"include_ad_notes" gorm:"default:false"`
	RecipientCount  int       `json:"recipient_count" gorm:"default:0"`
	SentAt          time.Time `json:"sent_at"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CallSheetRecord
func (CallSheetRecord) TableName() string {
	return "call_sheet_records"
}
