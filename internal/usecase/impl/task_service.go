// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface. It enforces that every
// operation is scoped to the caller's own tasks and centralizes the
// filter-to-query translation.
type taskService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		userRepo: params.UserRepo,
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

// resolveOwner looks up the caller by email. Every other operation in this
// service calls it first; the result is re-read on every call, never cached.
func (srv *taskService) resolveOwner(ctx context.Context, callerEmail string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to resolve task owner")
		}

		return nil, errors.Wrap(err, "failed to resolve task owner")
	}

	return user, nil
}

// List selects one of four owner-scoped store queries based on which filter
// fields are present. This is a fixed decision table, not a query builder.
func (srv *taskService) List(ctx context.Context, callerEmail string, filter usecase.TaskFilter, page repository.PageRequest) (*usecase.TaskPageOutput, error) {
	owner, err := srv.resolveOwner(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	page = page.Normalized()

	var result *repository.TaskPage
	switch {
	case filter.Status != nil && filter.Priority != nil:
		result, err = srv.taskRepo.FindAllByOwnerAndStatusAndPriority(ctx, owner.ID, *filter.Status, *filter.Priority, page)
	case filter.Status != nil:
		result, err = srv.taskRepo.FindAllByOwnerAndStatus(ctx, owner.ID, *filter.Status, page)
	case filter.Priority != nil:
		result, err = srv.taskRepo.FindAllByOwnerAndPriority(ctx, owner.ID, *filter.Priority, page)
	default:
		result, err = srv.taskRepo.FindAllByOwner(ctx, owner.ID, page)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return toTaskPageOutput(result), nil
}

// Create persists a new task bound to the resolved caller, applying the
// TODO/MEDIUM defaults when status or priority are unset. The creation
// timestamp is assigned by the store layer at persist time.
func (srv *taskService) Create(ctx context.Context, callerEmail string, input *usecase.TaskInput) (*usecase.TaskOutput, error) {
	owner, err := srv.resolveOwner(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.StatusTodo,
		Priority:    entity.PriorityMedium,
		Category:    input.Category,
		DueDate:     input.DueDate,
		OwnerID:     owner.ID,
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}
	srv.logger.Debug("Task created", "taskID", task.ID, "ownerID", owner.ID)

	return toTaskOutput(task), nil
}

// Update rewrites an existing task of the caller. Title, description,
// category, and due date are always overwritten with the provided values,
// even to empty/nil; status and priority keep their current value when the
// input carries nil. This asymmetry is deliberate.
func (srv *taskService) Update(ctx context.Context, callerEmail string, taskID uuid.UUID, input *usecase.TaskInput) (*usecase.TaskOutput, error) {
	owner, err := srv.resolveOwner(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	task, err := srv.findOwnedTask(ctx, taskID, owner.ID, domainerrors.ErrTaskNotFound)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Category = input.Category
	task.DueDate = input.DueDate
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}
	srv.logger.Debug("Task updated", "taskID", task.ID, "ownerID", owner.ID)

	return toTaskOutput(task), nil
}

// Delete removes a task of the caller permanently. No soft-delete, no
// cascading side effects.
func (srv *taskService) Delete(ctx context.Context, callerEmail string, taskID uuid.UUID) error {
	owner, err := srv.resolveOwner(ctx, callerEmail)
	if err != nil {
		return err
	}

	task, err := srv.findOwnedTask(ctx, taskID, owner.ID, domainerrors.ErrTaskNotFound)
	if err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, task); err != nil {
		return errors.Wrap(err, "failed to delete task")
	}
	srv.logger.Debug("Task deleted", "taskID", taskID, "ownerID", owner.ID)

	return nil
}

// FindByID returns a single task of the caller. The not-found kind on this
// path is distinct from the update/delete one, though it maps to the same
// HTTP outcome.
func (srv *taskService) FindByID(ctx context.Context, callerEmail string, taskID uuid.UUID) (*usecase.TaskOutput, error) {
	owner, err := srv.resolveOwner(ctx, callerEmail)
	if err != nil {
		return nil, err
	}

	task, err := srv.findOwnedTask(ctx, taskID, owner.ID, domainerrors.ErrTaskNotFoundForUser)
	if err != nil {
		return nil, err
	}

	return toTaskOutput(task), nil
}

// findOwnedTask performs the combined id+owner lookup shared by the update,
// delete, and find paths. Absence and foreign ownership are
// indistinguishable: both surface as the supplied not-found kind.
func (srv *taskService) findOwnedTask(ctx context.Context, taskID, ownerID uuid.UUID, notFound *domainerrors.BaseError) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, notFound.WrapMessage("task lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find task by id and owner")
	}

	return task, nil
}

// --- Mapper functions ---

func toTaskOutput(task *entity.Task) *usecase.TaskOutput {
	return &usecase.TaskOutput{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Category:    task.Category,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		OwnerID:     task.OwnerID,
	}
}

func toTaskPageOutput(page *repository.TaskPage) *usecase.TaskPageOutput {
	items := make([]*usecase.TaskOutput, 0, len(page.Items))
	for _, task := range page.Items {
		items = append(items, toTaskOutput(task))
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((page.TotalCount + int64(page.Size) - 1) / int64(page.Size))
	}

	return &usecase.TaskPageOutput{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: page.TotalCount,
		TotalPages: totalPages,
	}
}
