// Package entity contains the core business objects of the project.
package entity

// TaskPriority enumerates the urgency levels of a task.
type TaskPriority string

const (
	// PriorityLow marks a task as low urgency.
	PriorityLow TaskPriority = "LOW"
	// PriorityMedium is the default priority for newly created tasks.
	PriorityMedium TaskPriority = "MEDIUM"
	// PriorityHigh marks a task as high urgency.
	PriorityHigh TaskPriority = "HIGH"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid checks if the TaskPriority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
