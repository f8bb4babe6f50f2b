// Package entity contains the core business objects of the project.
package entity

// TaskStatus enumerates the lifecycle states of a task. There are no
// transition restrictions: any value may move to any other via update.
type TaskStatus string

const (
	// StatusTodo is the default status for newly created tasks.
	StatusTodo TaskStatus = "TODO"
	// StatusInProgress marks a task as being worked on.
	StatusInProgress TaskStatus = "IN_PROGRESS"
	// StatusDone marks a task as finished.
	StatusDone TaskStatus = "DONE"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}
