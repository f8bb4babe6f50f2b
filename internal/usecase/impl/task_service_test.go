package impl

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTaskServiceForTest(t *testing.T) (usecase.TaskUsecase, *mockRepo.MockUserRepository, *mockRepo.MockTaskRepository) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)

	service := NewTaskService(TaskServiceParams{
		UserRepo: mockUserRepo,
		TaskRepo: mockTaskRepo,
		Logger:   testLogger(),
	})

	return service, mockUserRepo, mockTaskRepo
}

func expectOwner(ctx context.Context, mockUserRepo *mockRepo.MockUserRepository, owner *entity.User) {
	mockUserRepo.EXPECT().
		FindByEmail(ctx, owner.Email).
		Return(owner, nil)
}

func testOwner() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  entity.RoleUser,
	}
}

func emptyPage(page repository.PageRequest) *repository.TaskPage {
	return &repository.TaskPage{
		Items:      []*entity.Task{},
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: 0,
	}
}

func TestTaskService_List_NoFilter(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	normalized := repository.PageRequest{}.Normalized()
	mockTaskRepo.EXPECT().
		FindAllByOwner(ctx, owner.ID, normalized).
		Return(emptyPage(normalized), nil)

	output, err := service.List(ctx, owner.Email, usecase.TaskFilter{}, repository.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, output.Items)
	assert.Equal(t, int64(0), output.TotalCount)
	assert.Equal(t, 0, output.TotalPages)
}

func TestTaskService_List_StatusOnly(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	status := entity.StatusInProgress
	normalized := repository.PageRequest{}.Normalized()
	mockTaskRepo.EXPECT().
		FindAllByOwnerAndStatus(ctx, owner.ID, status, normalized).
		Return(emptyPage(normalized), nil)

	_, err := service.List(ctx, owner.Email, usecase.TaskFilter{Status: &status}, repository.PageRequest{})
	require.NoError(t, err)
	mockTaskRepo.AssertNotCalled(t, "FindAllByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_List_PriorityOnly(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	priority := entity.PriorityHigh
	normalized := repository.PageRequest{}.Normalized()
	mockTaskRepo.EXPECT().
		FindAllByOwnerAndPriority(ctx, owner.ID, priority, normalized).
		Return(emptyPage(normalized), nil)

	_, err := service.List(ctx, owner.Email, usecase.TaskFilter{Priority: &priority}, repository.PageRequest{})
	require.NoError(t, err)
}

func TestTaskService_List_StatusAndPriority(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	status := entity.StatusDone
	priority := entity.PriorityLow
	normalized := repository.PageRequest{}.Normalized()
	mockTaskRepo.EXPECT().
		FindAllByOwnerAndStatusAndPriority(ctx, owner.ID, status, priority, normalized).
		Return(emptyPage(normalized), nil)

	_, err := service.List(ctx, owner.Email, usecase.TaskFilter{Status: &status, Priority: &priority}, repository.PageRequest{})
	require.NoError(t, err)
	mockTaskRepo.AssertNotCalled(t, "FindAllByOwnerAndStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockTaskRepo.AssertNotCalled(t, "FindAllByOwnerAndPriority", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_List_TotalPages(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	requested := repository.PageRequest{Page: 1, Size: 10}
	normalized := requested.Normalized()
	mockTaskRepo.EXPECT().
		FindAllByOwner(ctx, owner.ID, normalized).
		Return(&repository.TaskPage{
			Items:      []*entity.Task{{ID: uuid.New(), Title: "one", OwnerID: owner.ID}},
			Page:       1,
			Size:       10,
			TotalCount: 25,
		}, nil)

	output, err := service.List(ctx, owner.Email, usecase.TaskFilter{}, requested)
	require.NoError(t, err)
	assert.Equal(t, int64(25), output.TotalCount)
	assert.Equal(t, 3, output.TotalPages)
	assert.Len(t, output.Items, 1)
}

func TestTaskService_List_UnknownCaller(t *testing.T) {
	service, mockUserRepo, _ := newTaskServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.List(ctx, "ghost@example.com", usecase.TaskFilter{}, repository.PageRequest{})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestTaskService_Create_AppliesDefaults(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	mockTaskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, task *entity.Task) {
			assert.Equal(t, entity.StatusTodo, task.Status)
			assert.Equal(t, entity.PriorityMedium, task.Priority)
			assert.Equal(t, owner.ID, task.OwnerID)
			task.ID = uuid.New()
			task.CreatedAt = time.Now()
		}).
		Return(nil)

	output, err := service.Create(ctx, owner.Email, &usecase.TaskInput{
		Title: "write report",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusTodo, output.Status)
	assert.Equal(t, entity.PriorityMedium, output.Priority)
	assert.Equal(t, owner.ID, output.OwnerID)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestTaskService_Create_ExplicitStatusAndPriority(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	status := entity.StatusInProgress
	priority := entity.PriorityHigh
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mockTaskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, task *entity.Task) {
			assert.Equal(t, entity.StatusInProgress, task.Status)
			assert.Equal(t, entity.PriorityHigh, task.Priority)
			require.NotNil(t, task.DueDate)
			assert.Equal(t, dueDate, *task.DueDate)
		}).
		Return(nil)

	output, err := service.Create(ctx, owner.Email, &usecase.TaskInput{
		Title:    "review budget",
		Status:   &status,
		Priority: &priority,
		Category: "finance",
		DueDate:  &dueDate,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, output.Status)
	assert.Equal(t, "finance", output.Category)
}

func TestTaskService_Update_PartialUpdateAsymmetry(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()
	oldDue := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	existing := &entity.Task{
		ID:          taskID,
		Title:       "old title",
		Description: "old description",
		Status:      entity.StatusInProgress,
		Priority:    entity.PriorityHigh,
		Category:    "work",
		DueDate:     &oldDue,
		OwnerID:     owner.ID,
	}

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(existing, nil)

	mockTaskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, task *entity.Task) {
			// Text fields and due date are written through, even to empty.
			assert.Equal(t, "new title", task.Title)
			assert.Equal(t, "", task.Description)
			assert.Equal(t, "", task.Category)
			assert.Nil(t, task.DueDate)
			// Absent status and priority keep the stored values.
			assert.Equal(t, entity.StatusInProgress, task.Status)
			assert.Equal(t, entity.PriorityHigh, task.Priority)
		}).
		Return(nil)

	output, err := service.Update(ctx, owner.Email, taskID, &usecase.TaskInput{
		Title: "new title",
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", output.Title)
	assert.Equal(t, entity.StatusInProgress, output.Status)
	assert.Empty(t, output.Category)
	assert.Nil(t, output.DueDate)
}

func TestTaskService_Update_OverridesStatusAndPriority(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()
	existing := &entity.Task{
		ID:       taskID,
		Title:    "old title",
		Status:   entity.StatusTodo,
		Priority: entity.PriorityMedium,
		OwnerID:  owner.ID,
	}

	status := entity.StatusDone
	priority := entity.PriorityLow

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(existing, nil)

	mockTaskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(_ context.Context, task *entity.Task) {
			assert.Equal(t, entity.StatusDone, task.Status)
			assert.Equal(t, entity.PriorityLow, task.Priority)
		}).
		Return(nil)

	output, err := service.Update(ctx, owner.Email, taskID, &usecase.TaskInput{
		Title:    "old title",
		Status:   &status,
		Priority: &priority,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, output.Status)
}

func TestTaskService_Update_NotOwned(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()

	// A task owned by someone else is indistinguishable from a missing one.
	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(nil, repository.ErrTaskNotFound)

	output, err := service.Update(ctx, owner.Email, taskID, &usecase.TaskInput{Title: "irrelevant"})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
	mockTaskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_Delete_Success(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()
	existing := &entity.Task{ID: taskID, Title: "doomed", OwnerID: owner.ID}

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(existing, nil)

	mockTaskRepo.EXPECT().
		Delete(ctx, existing).
		Return(nil)

	err := service.Delete(ctx, owner.Email, taskID)
	require.NoError(t, err)
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(nil, repository.ErrTaskNotFound)

	err := service.Delete(ctx, owner.Email, taskID)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
	mockTaskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTaskService_FindByID_Success(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()
	existing := &entity.Task{
		ID:       taskID,
		Title:    "found",
		Status:   entity.StatusTodo,
		Priority: entity.PriorityMedium,
		OwnerID:  owner.ID,
	}

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(existing, nil)

	output, err := service.FindByID(ctx, owner.Email, taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, output.ID)
	assert.Equal(t, "found", output.Title)
}

func TestTaskService_FindByID_NotFoundKind(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	expectOwner(ctx, mockUserRepo, owner)

	taskID := uuid.New()

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(nil, repository.ErrTaskNotFound)

	output, err := service.FindByID(ctx, owner.Email, taskID)
	assert.Nil(t, output)
	// The lookup path raises its own kind, distinct from the update/delete one.
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFoundForUser))
	assert.False(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_DeleteThenFind(t *testing.T) {
	service, mockUserRepo, mockTaskRepo := newTaskServiceForTest(t)

	ctx := context.Background()
	owner := testOwner()
	taskID := uuid.New()
	existing := &entity.Task{ID: taskID, Title: "ephemeral", OwnerID: owner.ID}

	mockUserRepo.EXPECT().
		FindByEmail(ctx, owner.Email).
		Return(owner, nil).
		Times(2)

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(existing, nil).
		Once()

	mockTaskRepo.EXPECT().
		Delete(ctx, existing).
		Return(nil)

	require.NoError(t, service.Delete(ctx, owner.Email, taskID))

	mockTaskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, owner.ID).
		Return(nil, repository.ErrTaskNotFound).
		Once()

	output, err := service.FindByID(ctx, owner.Email, taskID)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFoundForUser))
}
