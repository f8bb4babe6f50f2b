package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCallerEmail = "alice@example.com"

func newTaskContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := newJSONContext(method, target, body)
	c.Set(middleware.ContextKeyUserEmail, testCallerEmail)

	return c, rec
}

func TestTaskHandler_Create_MinimalBody(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	taskID := uuid.New()
	mockTask.EXPECT().
		Create(mock.Anything, testCallerEmail, mock.MatchedBy(func(input *usecase.TaskInput) bool {
			return input.Title == "write report" &&
				input.Status == nil &&
				input.Priority == nil &&
				input.DueDate == nil
		})).
		Return(&usecase.TaskOutput{
			ID:       taskID,
			Title:    "write report",
			Status:   entity.StatusTodo,
			Priority: entity.PriorityMedium,
		}, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/tasks", `{"title":"write report"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), taskID.String())
	assert.Contains(t, rec.Body.String(), `"status":"TODO"`)
	assert.Contains(t, rec.Body.String(), `"priority":"MEDIUM"`)
}

func TestTaskHandler_Create_FullBody(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	mockTask.EXPECT().
		Create(mock.Anything, testCallerEmail, mock.MatchedBy(func(input *usecase.TaskInput) bool {
			return input.Status != nil && *input.Status == entity.StatusInProgress &&
				input.Priority != nil && *input.Priority == entity.PriorityHigh &&
				input.Category == "finance" &&
				input.DueDate != nil && input.DueDate.Equal(dueDate)
		})).
		Return(&usecase.TaskOutput{ID: uuid.New(), Title: "review budget"}, nil)

	c, rec := newTaskContext(t, http.MethodPost, "/api/tasks",
		`{"title":"review budget","status":"IN_PROGRESS","priority":"HIGH","category":"finance","dueDate":"2026-09-15"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	c, _ := newTaskContext(t, http.MethodPost, "/api/tasks", `{"description":"no title"}`)

	err := handler.Create(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockTask.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_Create_InvalidStatus(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	c, _ := newTaskContext(t, http.MethodPost, "/api/tasks", `{"title":"x","status":"STARTED"}`)

	err := handler.Create(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskHandler_List_ForwardsFilterAndPaging(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	status := entity.StatusTodo
	priority := entity.PriorityHigh
	mockTask.EXPECT().
		List(mock.Anything, testCallerEmail,
			usecase.TaskFilter{Status: &status, Priority: &priority},
			repository.PageRequest{Page: 1, Size: 5, Sort: "due_date asc"}).
		Return(&usecase.TaskPageOutput{Items: []*usecase.TaskOutput{}, Page: 1, Size: 5}, nil)

	c, rec := newTaskContext(t, http.MethodGet,
		"/api/tasks?status=TODO&priority=HIGH&page=1&size=5&sort=due_date+asc", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandler_List_RejectsUnknownStatus(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	c, _ := newTaskContext(t, http.MethodGet, "/api/tasks?status=BOGUS", "")

	err := handler.List(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockTask.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_Get_Success(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	taskID := uuid.New()
	mockTask.EXPECT().
		FindByID(mock.Anything, testCallerEmail, taskID).
		Return(&usecase.TaskOutput{ID: taskID, Title: "found"}, nil)

	c, rec := newTaskContext(t, http.MethodGet, "/api/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "found")
}

func TestTaskHandler_Get_InvalidID(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	c, _ := newTaskContext(t, http.MethodGet, "/api/tasks/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskHandler_Get_NotFoundKindPassesThrough(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	taskID := uuid.New()
	mockTask.EXPECT().
		FindByID(mock.Anything, testCallerEmail, taskID).
		Return(nil, domainerrors.ErrTaskNotFoundForUser.WrapMessage("task lookup failed"))

	c, _ := newTaskContext(t, http.MethodGet, "/api/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	err := handler.Get(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFoundForUser))
}

func TestTaskHandler_Update_Success(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	taskID := uuid.New()
	mockTask.EXPECT().
		Update(mock.Anything, testCallerEmail, taskID, mock.MatchedBy(func(input *usecase.TaskInput) bool {
			return input.Title == "new title" && input.Status == nil
		})).
		Return(&usecase.TaskOutput{ID: taskID, Title: "new title"}, nil)

	c, rec := newTaskContext(t, http.MethodPut, "/api/tasks/"+taskID.String(), `{"title":"new title"}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	taskID := uuid.New()
	mockTask.EXPECT().
		Delete(mock.Anything, testCallerEmail, taskID).
		Return(nil)

	c, rec := newTaskContext(t, http.MethodDelete, "/api/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTaskHandler_MissingCallerIdentity(t *testing.T) {
	mockTask := mockUC.NewMockTaskUsecase(t)
	handler := NewTaskHandler(mockTask, testLogger())

	// No caller email on the context, as if the auth middleware never ran.
	c, _ := newJSONContext(http.MethodGet, "/api/tasks", "")

	err := handler.List(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	mockTask.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
