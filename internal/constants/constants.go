package constants

// Session
const (
	SessionCookieName = "fwfps_session"
	ContextKeyUserID  = "user_id"
)

// DateLayout is the wire format for calendar dates (start_date, end_date,
// due_date). Timestamps use RFC3339.
const DateLayout = "2006-01-02"

// DashboardRecentLimit bounds the recent_* lists on dashboard responses.
const DashboardRecentLimit = 5

// Progress bounds for workplans and workplan tasks.
const (
	MinProgress = 0
	MaxProgress = 100
)
