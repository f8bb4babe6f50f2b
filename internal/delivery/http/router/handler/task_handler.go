package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dueDateLayout is the wire format for due dates. Tasks are day-granular.
const dueDateLayout = "2006-01-02"

// TaskRequest is the request body for creating and updating a task.
//
// On update, title, description, category, and dueDate are written through as
// given, while an absent status or priority keeps the stored value. On create,
// an absent status or priority falls back to TODO/MEDIUM.
type TaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Status      *string `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Category    string  `json:"category" validate:"max=100"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// TaskHandler holds dependencies for the task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the paginated task listing, optionally filtered by status
// and/or priority.
func (h *TaskHandler) List(c echo.Context) error {
	callerEmail, err := callerEmail(c)
	if err != nil {
		return err
	}

	filter, err := parseFilter(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.List(c.Request().Context(), callerEmail, filter, parsePageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Tasks retrieved successfully")
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	callerEmail, err := callerEmail(c)
	if err != nil {
		return err
	}

	input, err := h.bindTaskInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), callerEmail, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Task created successfully")
}

// Get handles the single-task lookup request.
func (h *TaskHandler) Get(c echo.Context) error {
	callerEmail, err := callerEmail(c)
	if err != nil {
		return err
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.FindByID(c.Request().Context(), callerEmail, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task retrieved successfully")
}

// Update handles the task update request.
func (h *TaskHandler) Update(c echo.Context) error {
	callerEmail, err := callerEmail(c)
	if err != nil {
		return err
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := h.bindTaskInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), callerEmail, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Task updated successfully")
}

// Delete handles the task deletion request.
func (h *TaskHandler) Delete(c echo.Context) error {
	callerEmail, err := callerEmail(c)
	if err != nil {
		return err
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), callerEmail, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TaskHandler) bindTaskInput(c echo.Context) (*usecase.TaskInput, error) {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	input := &usecase.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	if req.Priority != nil {
		priority := entity.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("dueDate: must be formatted as " + dueDateLayout)
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

// callerEmail reads the authenticated caller set by the auth middleware.
func callerEmail(c echo.Context) (string, error) {
	email, ok := c.Get(middleware.ContextKeyUserEmail).(string)
	if !ok || email == "" {
		return "", domainerrors.ErrUnauthorized.WrapMessage("missing caller identity")
	}

	return email, nil
}

func parseTaskID(c echo.Context) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id: must be a valid UUID")
	}

	return taskID, nil
}

func parseFilter(c echo.Context) (usecase.TaskFilter, error) {
	var filter usecase.TaskFilter

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.TaskStatus(raw)
		if !status.IsValid() {
			return filter, domainerrors.ErrValidationFailed.WithDetails("status: must be one of TODO, IN_PROGRESS, DONE")
		}
		filter.Status = &status
	}

	if raw := c.QueryParam("priority"); raw != "" {
		priority := entity.TaskPriority(raw)
		if !priority.IsValid() {
			return filter, domainerrors.ErrValidationFailed.WithDetails("priority: must be one of LOW, MEDIUM, HIGH")
		}
		filter.Priority = &priority
	}

	return filter, nil
}

func parsePageRequest(c echo.Context) repository.PageRequest {
	page := repository.PageRequest{Sort: c.QueryParam("sort")}

	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Page = parsed
		}
	}

	if raw := c.QueryParam("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Size = parsed
		}
	}

	return page
}
