package dto

import "fwfps/internal/models"

// WorkplanTaskDTO represents a workplan task in API responses
type WorkplanTaskDTO struct {
	ID          uint64            `json:"id"`
	WorkplanID  uint64            `json:"workplan_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Priority    models.Priority   `json:"priority"`
	DueDate     *string           `json:"due_date"`
	AssignedTo  string            `json:"assigned_to"`
	Progress    int               `json:"progress"`
	CreatedAt   string            `json:"created_at"`
	CompletedAt *string           `json:"completed_at"`
}

// WorkplanDTO represents a workplan in API responses. task_count is derived
// from the loaded tasks, never stored.
type WorkplanDTO struct {
	ID          uint64                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Status      models.WorkplanStatus `json:"status"`
	Priority    models.Priority       `json:"priority"`
	StartDate   *string               `json:"start_date"`
	EndDate     *string               `json:"end_date"`
	AssignedTo  string                `json:"assigned_to"`
	Progress    int                   `json:"progress"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
	TaskCount   int                   `json:"task_count"`
	Tasks       []WorkplanTaskDTO     `json:"tasks"`
}

// ToWorkplanTaskDTO converts a WorkplanTask model to WorkplanTaskDTO
func ToWorkplanTaskDTO(task models.WorkplanTask) WorkplanTaskDTO {
	return WorkplanTaskDTO{
		ID:          task.ID,
		WorkplanID:  task.WorkplanID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     formatDatePtr(task.DueDate),
		AssignedTo:  task.AssignedTo,
		Progress:    task.Progress,
		CreatedAt:   formatTimestamp(task.CreatedAt),
		CompletedAt: formatTimestampPtr(task.CompletedAt),
	}
}

// ToWorkplanTaskDTOs converts a slice of tasks
func ToWorkplanTaskDTOs(tasks []models.WorkplanTask) []WorkplanTaskDTO {
	dtos := make([]WorkplanTaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToWorkplanTaskDTO(task)
	}
	return dtos
}

// ToWorkplanDTO converts a Workplan model to WorkplanDTO
func ToWorkplanDTO(workplan models.Workplan) WorkplanDTO {
	return WorkplanDTO{
		ID:          workplan.ID,
		Title:       workplan.Title,
		Description: workplan.Description,
		Status:      workplan.Status,
		Priority:    workplan.Priority,
		StartDate:   formatDatePtr(workplan.StartDate),
		EndDate:     formatDatePtr(workplan.EndDate),
		AssignedTo:  workplan.AssignedTo,
		Progress:    workplan.Progress,
		CreatedAt:   formatTimestamp(workplan.CreatedAt),
		UpdatedAt:   formatTimestamp(workplan.UpdatedAt),
		TaskCount:   len(workplan.Tasks),
		Tasks:       ToWorkplanTaskDTOs(workplan.Tasks),
	}
}

// ToWorkplanDTOs converts a slice of workplans
func ToWorkplanDTOs(workplans []models.Workplan) []WorkplanDTO {
	dtos := make([]WorkplanDTO, len(workplans))
	for i, workplan := range workplans {
		dtos[i] = ToWorkplanDTO(workplan)
	}
	return dtos
}
