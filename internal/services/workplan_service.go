package services

import (
	"errors"
	"fmt"
	"time"

	"fwfps/internal/constants"
	"fwfps/internal/dto"
	"fwfps/internal/models"
	"fwfps/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrWorkplanNotFound   = errors.New("workplan not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrProgressOutOfRange = errors.New("progress must be between 0 and 100")
)

// WorkplanService handles workplan and workplan task business logic.
type WorkplanService struct {
	repo repository.WorkplanRepository
}

// NewWorkplanService creates a new WorkplanService
func NewWorkplanService(repo repository.WorkplanRepository) *WorkplanService {
	return &WorkplanService{repo: repo}
}

func validateProgress(progress int) error {
	if progress < constants.MinProgress || progress > constants.MaxProgress {
		return ErrProgressOutOfRange
	}
	return nil
}

// ListWorkplansInput represents the optional list filters. Empty strings
// impose no constraint.
type ListWorkplansInput struct {
	Status     string
	Priority   string
	AssignedTo string
}

// ListWorkplans returns workplans matching all supplied filters, newest
// created first.
func (s *WorkplanService) ListWorkplans(input ListWorkplansInput) ([]models.Workplan, error) {
	var filter repository.WorkplanFilter
	if input.Status != "" {
		status := models.WorkplanStatus(input.Status)
		filter.Status = &status
	}
	if input.Priority != "" {
		priority := models.Priority(input.Priority)
		filter.Priority = &priority
	}
	filter.AssignedTo = input.AssignedTo

	workplans, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplans: %w", err)
	}
	return workplans, nil
}

// GetWorkplan returns a workplan with its tasks.
func (s *WorkplanService) GetWorkplan(id uint64) (*models.Workplan, error) {
	workplan, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkplanNotFound
		}
		return nil, fmt.Errorf("failed to find workplan: %w", err)
	}
	return workplan, nil
}

// CreateWorkplanInput represents input for creating a workplan
type CreateWorkplanInput struct {
	Title       string
	Description string
	Status      models.WorkplanStatus
	Priority    models.Priority
	StartDate   *time.Time
	EndDate     *time.Time
	AssignedTo  string
	Progress    int
	CreatedBy   *uint64
}

// CreateWorkplan creates a new workplan with defaults for omitted fields.
func (s *WorkplanService) CreateWorkplan(input CreateWorkplanInput) (*models.Workplan, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.WorkplanStatusPlanned
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	workplan := &models.Workplan{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		AssignedTo:  input.AssignedTo,
		Progress:    input.Progress,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.repo.Create(workplan); err != nil {
		return nil, fmt.Errorf("failed to create workplan: %w", err)
	}

	return workplan, nil
}

// UpdateWorkplanInput is a sparse patch: nil pointers mean "leave
// unchanged", while the Clear flags mark date fields sent as explicit null.
type UpdateWorkplanInput struct {
	Title          *string
	Description    *string
	Status         *models.WorkplanStatus
	Priority       *models.Priority
	StartDate      *time.Time
	ClearStartDate bool
	EndDate        *time.Time
	ClearEndDate   bool
	AssignedTo     *string
	Progress       *int
}

// UpdateWorkplan applies a sparse patch. Validation failures leave the
// stored record untouched.
func (s *WorkplanService) UpdateWorkplan(id uint64, input UpdateWorkplanInput) (*models.Workplan, error) {
	workplan, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkplanNotFound
		}
		return nil, fmt.Errorf("failed to find workplan: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		workplan.Title = *input.Title
	}
	if input.Description != nil {
		workplan.Description = *input.Description
	}
	if input.Status != nil {
		workplan.Status = *input.Status
	}
	if input.Priority != nil {
		workplan.Priority = *input.Priority
	}
	if input.ClearStartDate {
		workplan.StartDate = nil
	} else if input.StartDate != nil {
		workplan.StartDate = input.StartDate
	}
	if input.ClearEndDate {
		workplan.EndDate = nil
	} else if input.EndDate != nil {
		workplan.EndDate = input.EndDate
	}
	if input.AssignedTo != nil {
		workplan.AssignedTo = *input.AssignedTo
	}
	if input.Progress != nil {
		if err := validateProgress(*input.Progress); err != nil {
			return nil, err
		}
		workplan.Progress = *input.Progress
	}

	if err := s.repo.Update(workplan); err != nil {
		return nil, fmt.Errorf("failed to update workplan: %w", err)
	}

	return s.repo.FindByID(workplan.ID)
}

// DeleteWorkplan removes a workplan together with all of its tasks.
func (s *WorkplanService) DeleteWorkplan(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkplanNotFound
		}
		return fmt.Errorf("failed to find workplan: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workplan: %w", err)
	}
	return nil
}

// ListTasks returns the tasks of an existing workplan.
func (s *WorkplanService) ListTasks(workplanID uint64) ([]models.WorkplanTask, error) {
	if _, err := s.repo.FindByID(workplanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkplanNotFound
		}
		return nil, fmt.Errorf("failed to find workplan: %w", err)
	}

	tasks, err := s.repo.ListTasks(workplanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTaskInput represents input for creating a workplan task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.Priority
	DueDate     *time.Time
	AssignedTo  string
	Progress    int
}

// CreateTask creates a task under an existing workplan. A missing workplan
// is a not-found condition, distinct from validation failures on the task
// itself.
func (s *WorkplanService) CreateTask(workplanID uint64, input CreateTaskInput) (*models.WorkplanTask, error) {
	if _, err := s.repo.FindByID(workplanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkplanNotFound
		}
		return nil, fmt.Errorf("failed to find workplan: %w", err)
	}

	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	task := &models.WorkplanTask{
		WorkplanID:  workplanID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		AssignedTo:  input.AssignedTo,
		Progress:    input.Progress,
	}

	if err := s.repo.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTaskInput is a sparse patch for a workplan task.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	Priority     *models.Priority
	DueDate      *time.Time
	ClearDueDate bool
	AssignedTo   *string
	Progress     *int
}

// UpdateTask applies a sparse patch to a task. The first transition into
// completed stamps completed_at; it is never cleared afterwards, even if
// the status moves away from completed again.
func (s *WorkplanService) UpdateTask(workplanID, taskID uint64, input UpdateTaskInput) (*models.WorkplanTask, error) {
	task, err := s.findTask(workplanID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
		if *input.Status == models.TaskStatusCompleted && task.CompletedAt == nil {
			now := time.Now().UTC()
			task.CompletedAt = &now
		}
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssignedTo != nil {
		task.AssignedTo = *input.AssignedTo
	}
	if input.Progress != nil {
		if err := validateProgress(*input.Progress); err != nil {
			return nil, err
		}
		task.Progress = *input.Progress
	}

	if err := s.repo.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a single task from a workplan.
func (s *WorkplanService) DeleteTask(workplanID, taskID uint64) error {
	if _, err := s.findTask(workplanID, taskID); err != nil {
		return err
	}

	if err := s.repo.DeleteTask(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *WorkplanService) findTask(workplanID, taskID uint64) (*models.WorkplanTask, error) {
	task, err := s.repo.FindTaskByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task.WorkplanID != workplanID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Dashboard computes the workplan summary fresh from the current records.
func (s *WorkplanService) Dashboard() (*dto.WorkplanDashboard, error) {
	dashboard := &dto.WorkplanDashboard{}

	total, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count workplans: %w", err)
	}
	dashboard.TotalWorkplans = total

	for _, status := range models.WorkplanStatuses() {
		count, err := s.repo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count workplans by status: %w", err)
		}
		switch status {
		case models.WorkplanStatusPlanned:
			dashboard.PlannedWorkplans = count
		case models.WorkplanStatusActive:
			dashboard.ActiveWorkplans = count
		case models.WorkplanStatusCompleted:
			dashboard.CompletedWorkplans = count
		case models.WorkplanStatusCancelled:
			dashboard.CancelledWorkplans = count
		}
	}

	highPriority, err := s.repo.CountByPriority(models.PriorityHigh)
	if err != nil {
		return nil, fmt.Errorf("failed to count high priority workplans: %w", err)
	}
	dashboard.HighPriority = highPriority

	recent, err := s.repo.ListRecent(constants.DashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent workplans: %w", err)
	}
	dashboard.RecentWorkplans = dto.ToWorkplanDTOs(recent)

	return dashboard, nil
}
