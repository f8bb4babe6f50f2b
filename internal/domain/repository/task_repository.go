// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist for the given id and
// owner. Ownership mismatch and plain absence are deliberately
// indistinguishable at this level.
var ErrTaskNotFound = errors.New("task not found")

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest carries pagination parameters for list queries.
type PageRequest struct {
	Page int    // Zero-based page index.
	Size int    // Items per page.
	Sort string // SQL order clause, e.g. "created_at desc".
}

// Normalized returns a copy with defaults applied and the size clamped.
func (p PageRequest) Normalized() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.Sort == "" {
		p.Sort = "created_at desc"
	}

	return p
}

// Offset returns the row offset corresponding to the page index.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// TaskPage is a bounded slice of a query's results plus total-count metadata.
type TaskPage struct {
	Items      []*entity.Task
	Page       int
	Size       int
	TotalCount int64
}

// TaskRepository defines the standard operations for task persistence.
// Every list query is owner-scoped: results never cross user boundaries.
type TaskRepository interface {
	// Create persists a new task. The store assigns the id, the creation
	// timestamp, and the TODO/MEDIUM defaults for unset status/priority.
	Create(ctx context.Context, task *entity.Task) error

	// Update persists the full current state of an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// FindByIDAndOwner retrieves a task by id, scoped to the owner. Returns
	// ErrTaskNotFound when the task is absent or owned by someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, task *entity.Task) error

	// FindAllByOwner returns a page of all tasks belonging to the owner.
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID, page PageRequest) (*TaskPage, error)

	// FindAllByOwnerAndStatus returns a page of the owner's tasks with the given status.
	FindAllByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.TaskStatus, page PageRequest) (*TaskPage, error)

	// FindAllByOwnerAndPriority returns a page of the owner's tasks with the given priority.
	FindAllByOwnerAndPriority(ctx context.Context, ownerID uuid.UUID, priority entity.TaskPriority, page PageRequest) (*TaskPage, error)

	// FindAllByOwnerAndStatusAndPriority returns a page of the owner's tasks
	// matching both the status and the priority.
	FindAllByOwnerAndStatusAndPriority(ctx context.Context, ownerID uuid.UUID, status entity.TaskStatus, priority entity.TaskPriority, page PageRequest) (*TaskPage, error)
}
