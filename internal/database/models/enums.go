package models

// ProjectStatus defines the lifecycle states of a production
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// ConflictType classifies a detected scheduling conflict
type ConflictType string

const (
	ConflictTypeDoubleBooked ConflictType = "double_booked"
	ConflictTypeUnavailable  ConflictType = "unavailable"
	ConflictTypeMissingInfo  ConflictType = "missing_info"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the ConflictType is valid
func (c ConflictType) IsValid() bool {
	switch c {
	case ConflictTypeDoubleBooked, ConflictTypeUnavailable, ConflictTypeMissingInfo:
		return true
	}
	return false
}
