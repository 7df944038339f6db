package repository

import (
	"fwfps/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username (exact, case-sensitive)
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email (exact, case-sensitive)
	FindByEmail(email string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// WorkplanFilter holds the optional list predicates for workplans. Nil or
// empty fields impose no constraint; supplied fields are ANDed together.
type WorkplanFilter struct {
	Status     *models.WorkplanStatus
	Priority   *models.Priority
	AssignedTo string // case-insensitive substring
}

// WorkplanRepository defines the interface for workplan and task data access
type WorkplanRepository interface {
	// Create creates a new workplan
	Create(workplan *models.Workplan) error

	// FindByID finds a workplan by ID with its tasks
	FindByID(id uint64) (*models.Workplan, error)

	// List retrieves workplans matching the filter, newest created first
	List(filter WorkplanFilter) ([]models.Workplan, error)

	// Update persists changes to a workplan
	Update(workplan *models.Workplan) error

	// Delete removes a workplan and all of its tasks atomically
	Delete(id uint64) error

	// Count returns the total number of workplans
	Count() (int64, error)

	// CountByStatus counts workplans with the given status
	CountByStatus(status models.WorkplanStatus) (int64, error)

	// CountByPriority counts workplans with the given priority
	CountByPriority(priority models.Priority) (int64, error)

	// ListRecent returns the most recently created workplans with tasks
	ListRecent(limit int) ([]models.Workplan, error)

	// CreateTask creates a task under an existing workplan
	CreateTask(task *models.WorkplanTask) error

	// FindTaskByID finds a task by ID
	FindTaskByID(id uint64) (*models.WorkplanTask, error)

	// ListTasks returns all tasks of a workplan in insertion order
	ListTasks(workplanID uint64) ([]models.WorkplanTask, error)

	// UpdateTask persists changes to a task
	UpdateTask(task *models.WorkplanTask) error

	// DeleteTask removes a single task
	DeleteTask(id uint64) error
}

// OperationFilter holds the optional list predicates for PAC operations.
type OperationFilter struct {
	OperationType string // exact match
	Status        *models.OperationStatus
	Priority      *models.Priority
	Inspector     string // case-insensitive substring
}

// OperationRepository defines the interface for PAC operation and sample data access
type OperationRepository interface {
	// Create creates a new operation
	Create(operation *models.PacOperation) error

	// FindByID finds an operation by ID with its samples
	FindByID(id uint64) (*models.PacOperation, error)

	// List retrieves operations matching the filter, newest operation_date first
	List(filter OperationFilter) ([]models.PacOperation, error)

	// Update persists changes to an operation
	Update(operation *models.PacOperation) error

	// Delete removes an operation and all of its samples atomically
	Delete(id uint64) error

	// Count returns the total number of operations
	Count() (int64, error)

	// CountByStatus counts operations with the given status
	CountByStatus(status models.OperationStatus) (int64, error)

	// CountByType counts operations with the given operation_type
	CountByType(operationType string) (int64, error)

	// CountByPriority counts operations with the given priority
	CountByPriority(priority models.Priority) (int64, error)

	// ListRecent returns the most recently created operations with samples
	ListRecent(limit int) ([]models.PacOperation, error)

	// CreateSample creates a sample under an existing operation
	CreateSample(sample *models.PacSample) error

	// FindSampleByID finds a sample by ID
	FindSampleByID(id uint64) (*models.PacSample, error)

	// ListSamples returns all samples of an operation in insertion order
	ListSamples(operationID uint64) ([]models.PacSample, error)

	// UpdateSample persists changes to a sample
	UpdateSample(sample *models.PacSample) error

	// DeleteSample removes a single sample
	DeleteSample(id uint64) error
}
