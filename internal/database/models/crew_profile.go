package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// DateOnly is the wire and storage format for calendar dates without a time component.
const DateOnly = "2006-01-02"

// CrewProfile represents a crew member. Identity is keyed by email and is
// durable across projects: the profile is created on first sign-up and
// mutated on later sign-ups or profile updates, never deleted while any
// assignment references it.
type CrewProfile struct {
	BaseModel
	FullName              string         `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email                 string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone                 string         `json:"phone" gorm:"size:30"`
	Department            string         `json:"department" gorm:"size:100"`
	EmergencyContactName  string         `json:"emergency_contact_name" gorm:"size:200"`
	EmergencyContactPhone string         `json:"emergency_contact_phone" gorm:"size:30"`
	DietaryRestrictions   datatypes.JSON `json:"dietary_restrictions" gorm:"type:jsonb"`
	Address               string         `json:"address" gorm:"size:300"`
	HasInsurance          bool           `json:"has_insurance" gorm:"default:false"`
	InsuranceExpiry       *time.Time     `json:"insurance_expiry,omitempty" gorm:"type:date"`
	UnavailableDates      datatypes.JSON `json:"unavailable_dates" gorm:"type:jsonb"`
	Certifications        datatypes.JSON `json:"certifications" gorm:"type:jsonb"`

	// Relationships
	ProjectLinks []ProjectCrew        `json:"project_links,omitempty" gorm:"foreignKey:CrewID"`
	Assignments  []ScheduleAssignment `json:"assignments,omitempty" gorm:"foreignKey:CrewID"`
}

// TableName returns the table name for CrewProfile
func (CrewProfile) TableName() string {
	return "crew_profiles"
}

// DietaryRestrictionList decodes the stored dietary restrictions.
func (c *CrewProfile) DietaryRestrictionList() []string {
	return decodeStringList(c.DietaryRestrictions)
}

// UnavailableDateList decodes the stored personal unavailable dates.
func (c *CrewProfile) UnavailableDateList() []string {
	return decodeStringList(c.UnavailableDates)
}

// CertificationList decodes the stored certifications.
func (c *CrewProfile) CertificationList() []string {
	return decodeStringList(c.Certifications)
}

// IsUnavailableOn reports whether the given calendar date is in the crew
// member's personal unavailable-dates set.
func (c *CrewProfile) IsUnavailableOn(date time.Time) bool {
	day := date.Format(DateOnly)
	for _, d := range c.UnavailableDateList() {
		if d == day {
			return true
		}
	}
	return false
}

// HasValidInsurance reports whether the crew member carries insurance that is
// valid on the given shoot date. A nil expiry on an insured profile is treated
// as non-expiring coverage.
func (c *CrewProfile) HasValidInsurance(onDate time.Time) bool {
	if !c.HasInsurance {
		return false
	}
	if c.InsuranceExpiry == nil {
		return true
	}
	return !c.InsuranceExpiry.Before(dayOf(onDate))
}

// MissingInfoFlags holds the derived compliance flags of a crew profile.
// They are recomputed whenever the profile is written, so the persisted
// ProjectCrew flags always reflect current profile state.
type MissingInfoFlags struct {
	MissingEmergency bool `json:"missing_emergency"`
	MissingDietary   bool `json:"missing_dietary"`
	MissingInsurance bool `json:"missing_insurance"`
}

// Any reports whether any compliance info is missing.
func (f MissingInfoFlags) Any() bool {
	return f.MissingEmergency || f.MissingDietary || f.MissingInsurance
}

// ComputeMissingInfo derives the missing-info flags from the current profile
// state, evaluated against the given reference date for insurance expiry.
func (c *CrewProfile) ComputeMissingInfo(onDate time.Time) MissingInfoFlags {
	return MissingInfoFlags{
		MissingEmergency: c.EmergencyContactName == "" || c.EmergencyContactPhone == "",
		MissingDietary:   len(c.DietaryRestrictionList()) == 0,
		MissingInsurance: !c.HasValidInsurance(onDate),
	}
}

// StringList encodes a slice of strings as a jsonb column value.
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// dayOf truncates a timestamp to its calendar date in UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
