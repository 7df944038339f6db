package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fwfps/internal/dto"
	apierrors "fwfps/internal/errors"
	"fwfps/internal/models"
	"fwfps/internal/services"
)

// WorkplanHandler coordinates workplan and workplan task HTTP handlers.
type WorkplanHandler struct {
	service *services.WorkplanService
}

// NewWorkplanHandler creates a new WorkplanHandler.
func NewWorkplanHandler(service *services.WorkplanService) *WorkplanHandler {
	return &WorkplanHandler{service: service}
}

// ListWorkplans returns all workplans, optionally filtered by status,
// priority and assigned_to substring.
func (h *WorkplanHandler) ListWorkplans(c *gin.Context) {
	workplans, err := h.service.ListWorkplans(services.ListWorkplansInput{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssignedTo: c.Query("assigned_to"),
	})
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"workplans": dto.ToWorkplanDTOs(workplans),
		"total":     len(workplans),
	})
}

// GetWorkplan returns a specific workplan by ID.
func (h *WorkplanHandler) GetWorkplan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}

	workplan, err := h.service.GetWorkplan(id)
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"workplan": dto.ToWorkplanDTO(*workplan),
	})
}

// CreateWorkplan creates a new workplan.
func (h *WorkplanHandler) CreateWorkplan(c *gin.Context) {
	type CreateWorkplanRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		AssignedTo  string `json:"assigned_to"`
		Progress    int    `json:"progress"`
	}

	var req CreateWorkplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	workplan, err := h.service.CreateWorkplan(services.CreateWorkplanInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.WorkplanStatus(req.Status),
		Priority:    models.Priority(req.Priority),
		StartDate:   startDate,
		EndDate:     endDate,
		AssignedTo:  req.AssignedTo,
		Progress:    req.Progress,
	})
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Workplan created successfully",
		"workplan": dto.ToWorkplanDTO(*workplan),
	})
}

// UpdateWorkplan applies a sparse patch to a workplan. Only keys present in
// the body are touched; dates sent as null are cleared.
func (h *WorkplanHandler) UpdateWorkplan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateWorkplanInput{
		Title:       patchString(raw, "title"),
		Description: patchString(raw, "description"),
		AssignedTo:  patchString(raw, "assigned_to"),
	}
	progress, err := patchInt(raw, "progress")
	if err != nil {
		apierrors.BadRequest(c, "Progress must be an integer")
		return
	}
	input.Progress = progress
	if s := patchString(raw, "status"); s != nil {
		status := models.WorkplanStatus(*s)
		input.Status = &status
	}
	if p := patchString(raw, "priority"); p != nil {
		priority := models.Priority(*p)
		input.Priority = &priority
	}

	input.StartDate, input.ClearStartDate, err = patchDate(raw, "start_date")
	if err != nil {
		apierrors.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	input.EndDate, input.ClearEndDate, err = patchDate(raw, "end_date")
	if err != nil {
		apierrors.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return
	}

	workplan, err := h.service.UpdateWorkplan(id, input)
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Workplan updated successfully",
		"workplan": dto.ToWorkplanDTO(*workplan),
	})
}

// DeleteWorkplan removes a workplan and cascades to its tasks.
func (h *WorkplanHandler) DeleteWorkplan(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}

	if err := h.service.DeleteWorkplan(id); err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workplan deleted successfully",
	})
}

// ListTasks returns the tasks of a workplan.
func (h *WorkplanHandler) ListTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}

	tasks, err := h.service.ListTasks(id)
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   dto.ToWorkplanTaskDTOs(tasks),
		"total":   len(tasks),
	})
}

// CreateTask creates a new task under a workplan.
func (h *WorkplanHandler) CreateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
		AssignedTo  string `json:"assigned_to"`
		Progress    int    `json:"progress"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	task, err := h.service.CreateTask(id, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.Priority(req.Priority),
		DueDate:     dueDate,
		AssignedTo:  req.AssignedTo,
		Progress:    req.Progress,
	})
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"task":    dto.ToWorkplanTaskDTO(*task),
	})
}

// UpdateTask applies a sparse patch to a workplan task.
func (h *WorkplanHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskInput{
		Title:       patchString(raw, "title"),
		Description: patchString(raw, "description"),
		AssignedTo:  patchString(raw, "assigned_to"),
	}
	progress, err := patchInt(raw, "progress")
	if err != nil {
		apierrors.BadRequest(c, "Progress must be an integer")
		return
	}
	input.Progress = progress
	if s := patchString(raw, "status"); s != nil {
		status := models.TaskStatus(*s)
		input.Status = &status
	}
	if p := patchString(raw, "priority"); p != nil {
		priority := models.Priority(*p)
		input.Priority = &priority
	}

	input.DueDate, input.ClearDueDate, err = patchDate(raw, "due_date")
	if err != nil {
		apierrors.BadRequest(c, "Invalid due_date, expected YYYY-MM-DD")
		return
	}

	task, err := h.service.UpdateTask(id, taskID, input)
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"task":    dto.ToWorkplanTaskDTO(*task),
	})
}

// DeleteTask removes a single task from a workplan.
func (h *WorkplanHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid workplan id")
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.service.DeleteTask(id, taskID); err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// Dashboard returns the workplan aggregation.
func (h *WorkplanHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard()
	if err != nil {
		respondWorkplanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"dashboard": dashboard,
	})
}

func respondWorkplanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkplanNotFound):
		apierrors.NotFound(c, "Workplan not found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrProgressOutOfRange):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
