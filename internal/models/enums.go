package models

// Priority is shared by workplans, workplan tasks and PAC operations.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type WorkplanStatus string

const (
	WorkplanStatusPlanned   WorkplanStatus = "planned"
	WorkplanStatusActive    WorkplanStatus = "active"
	WorkplanStatusCompleted WorkplanStatus = "completed"
	WorkplanStatusCancelled WorkplanStatus = "cancelled"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type OperationStatus string

const (
	OperationStatusScheduled  OperationStatus = "scheduled"
	OperationStatusInProgress OperationStatus = "in_progress"
	OperationStatusCompleted  OperationStatus = "completed"
	OperationStatusCancelled  OperationStatus = "cancelled"
)

type SampleStatus string

const (
	SampleStatusCollected SampleStatus = "collected"
	SampleStatusInTransit SampleStatus = "in_transit"
	SampleStatusTesting   SampleStatus = "testing"
	SampleStatusCompleted SampleStatus = "completed"
)

// WorkplanStatuses enumerates the full workplan status domain. The dashboard
// reports a count for every value here, including ones with zero records.
func WorkplanStatuses() []WorkplanStatus {
	return []WorkplanStatus{
		WorkplanStatusPlanned,
		WorkplanStatusActive,
		WorkplanStatusCompleted,
		WorkplanStatusCancelled,
	}
}

// OperationStatuses enumerates the full operation status domain.
func OperationStatuses() []OperationStatus {
	return []OperationStatus{
		OperationStatusScheduled,
		OperationStatusInProgress,
		OperationStatusCompleted,
		OperationStatusCancelled,
	}
}
