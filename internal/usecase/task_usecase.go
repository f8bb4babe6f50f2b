// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// TaskInput carries the writable fields of a task for create and update.
//
// Status and Priority are pointers on purpose: on update a nil value means
// "keep the current one", while Title, Description, Category, and DueDate are
// always written through, even when empty or nil. On create a nil Status or
// Priority receives the TODO/MEDIUM default.
type TaskInput struct {
	Title       string
	Description string
	Status      *entity.TaskStatus
	Priority    *entity.TaskPriority
	Category    string
	DueDate     *time.Time
}

// TaskFilter narrows a task listing. Nil fields are absent filters.
type TaskFilter struct {
	Status   *entity.TaskStatus
	Priority *entity.TaskPriority
}

// --- Output DTOs ---

// TaskOutput is the response shape of a task.
type TaskOutput struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      entity.TaskStatus   `json:"status"`
	Priority    entity.TaskPriority `json:"priority"`
	Category    string              `json:"category,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	OwnerID     uuid.UUID           `json:"ownerId"`
}

// TaskPageOutput is a page of tasks plus pagination metadata.
type TaskPageOutput struct {
	Items      []*TaskOutput `json:"items"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalCount int64         `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
}

// TaskUsecase defines the interface for task operations. Every operation is
// scoped to the caller identified by email; tasks of other users are
// invisible throughout.
type TaskUsecase interface {
	// List returns a page of the caller's tasks matching the filter. Zero
	// matches yield an empty page, never an error.
	List(ctx context.Context, callerEmail string, filter TaskFilter, page repository.PageRequest) (*TaskPageOutput, error)

	// Create persists a new task owned by the caller, applying the
	// TODO/MEDIUM defaults when status or priority are unset.
	Create(ctx context.Context, callerEmail string, input *TaskInput) (*TaskOutput, error)

	// Update rewrites an existing task of the caller following the
	// partial-update rule documented on TaskInput.
	Update(ctx context.Context, callerEmail string, taskID uuid.UUID, input *TaskInput) (*TaskOutput, error)

	// Delete removes a task of the caller permanently.
	Delete(ctx context.Context, callerEmail string, taskID uuid.UUID) error

	// FindByID returns a single task of the caller.
	FindByID(ctx context.Context, callerEmail string, taskID uuid.UUID) (*TaskOutput, error)
}
