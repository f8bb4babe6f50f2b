// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work owned by exactly one user. The owner is fixed at
// creation; a task is only ever visible to, modifiable by, or deletable by
// its owner.
type Task struct {
	ID          uuid.UUID    // Unique identifier, generated by the store.
	Title       string       // Required, non-empty.
	Description string       // Optional free text.
	Status      TaskStatus   // Defaults to StatusTodo when unset at creation.
	Priority    TaskPriority // Defaults to PriorityMedium when unset at creation.
	Category    string       // Optional label.
	DueDate     *time.Time   // Optional calendar date.
	OwnerID     uuid.UUID    // The owning user. Immutable after creation.
	CreatedAt   time.Time    // Set once by the store at persist time.
}
