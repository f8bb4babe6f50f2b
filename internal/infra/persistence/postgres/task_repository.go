// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sortColumns whitelists the order clauses a caller may request. Anything
// else falls back to newest-first.
var sortColumns = map[string]string{
	"created_at asc":  "created_at asc",
	"created_at desc": "created_at desc",
	"due_date asc":    "due_date asc",
	"due_date desc":   "due_date desc",
	"title asc":       "title asc",
	"title desc":      "title desc",
	"priority asc":    "priority asc",
	"priority desc":   "priority desc",
}

// taskRepository implements the repository.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task. The id, the creation timestamp, and the
// status/priority defaults are assigned at persist time and copied back.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid task owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.Status = entity.TaskStatus(taskM.Status)
	task.Priority = entity.TaskPriority(taskM.Priority)
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// Update persists the full current state of an existing task. The owner and
// creation timestamp columns never change.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	columns := map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status.String(),
		"priority":    task.Priority.String(),
		"category":    task.Category,
		"due_date":    task.DueDate,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.OwnerID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// FindByIDAndOwner retrieves a task by id, scoped to the owner. Absence and
// foreign ownership both surface as ErrTaskNotFound.
func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id and owner")
	}

	return toTaskDomain(&taskM), nil
}

// Delete removes a task permanently.
func (repo *taskRepository) Delete(ctx context.Context, task *entity.Task) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", task.ID, task.OwnerID).
		Delete(&model.TaskModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete task")
	}

	return nil
}

// FindAllByOwner returns a page of all tasks belonging to the owner.
func (repo *taskRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID, page repository.PageRequest) (*repository.TaskPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.TaskModel{}).Where("user_id = ?", ownerID)

	return repo.paginate(query, page)
}

// FindAllByOwnerAndStatus returns a page of the owner's tasks with the given status.
func (repo *taskRepository) FindAllByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.TaskStatus, page repository.PageRequest) (*repository.TaskPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("user_id = ? AND status = ?", ownerID, status.String())

	return repo.paginate(query, page)
}

// FindAllByOwnerAndPriority returns a page of the owner's tasks with the given priority.
func (repo *taskRepository) FindAllByOwnerAndPriority(ctx context.Context, ownerID uuid.UUID, priority entity.TaskPriority, page repository.PageRequest) (*repository.TaskPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("user_id = ? AND priority = ?", ownerID, priority.String())

	return repo.paginate(query, page)
}

// FindAllByOwnerAndStatusAndPriority returns a page of the owner's tasks
// matching both the status and the priority.
func (repo *taskRepository) FindAllByOwnerAndStatusAndPriority(ctx context.Context, ownerID uuid.UUID, status entity.TaskStatus, priority entity.TaskPriority, page repository.PageRequest) (*repository.TaskPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("user_id = ? AND status = ? AND priority = ?", ownerID, status.String(), priority.String())

	return repo.paginate(query, page)
}

// paginate runs the shared count+fetch sequence for the list queries.
func (repo *taskRepository) paginate(query *gorm.DB, page repository.PageRequest) (*repository.TaskPage, error) {
	page = page.Normalized()

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count tasks")
	}

	var taskModels []*model.TaskModel
	if err := query.
		Order(orderClause(page.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return &repository.TaskPage{
		Items:      tasks,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: total,
	}, nil
}

func orderClause(sort string) string {
	if clause, ok := sortColumns[sort]; ok {
		return clause
	}

	return "created_at desc"
}

// --- Mapper functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		Category:    data.Category,
		DueDate:     data.DueDate,
		OwnerID:     data.UserID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status.String(),
		Priority:    data.Priority.String(),
		Category:    data.Category,
		DueDate:     data.DueDate,
		UserID:      data.OwnerID,
	}
}
