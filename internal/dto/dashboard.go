package dto

// WorkplanDashboard summarizes the workplan collection. Every status in the
// enum domain gets a counter, even when no record carries it.
type WorkplanDashboard struct {
	TotalWorkplans     int64         `json:"total_workplans"`
	PlannedWorkplans   int64         `json:"planned_workplans"`
	ActiveWorkplans    int64         `json:"active_workplans"`
	CompletedWorkplans int64         `json:"completed_workplans"`
	CancelledWorkplans int64         `json:"cancelled_workplans"`
	HighPriority       int64         `json:"high_priority"`
	RecentWorkplans    []WorkplanDTO `json:"recent_workplans"`
}

// PacDashboard summarizes the PAC operation collection. The per-type
// counters cover the fixed advisory set only; other operation_type values
// contribute to totals but are not broken out.
type PacDashboard struct {
	TotalOperations      int64             `json:"total_operations"`
	ScheduledOperations  int64             `json:"scheduled_operations"`
	InProgressOperations int64             `json:"in_progress_operations"`
	CompletedOperations  int64             `json:"completed_operations"`
	CancelledOperations  int64             `json:"cancelled_operations"`
	Inspections          int64             `json:"inspections"`
	Samplings            int64             `json:"samplings"`
	Audits               int64             `json:"audits"`
	HighPriority         int64             `json:"high_priority"`
	RecentOperations     []PacOperationDTO `json:"recent_operations"`
}
