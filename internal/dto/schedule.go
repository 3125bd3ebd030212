package dto

// CreateScheduleRequest creates a schedule at an explicit week anchor.
// The anchor must be a Monday; non-Monday dates are rejected, unlike the
// for-date path which aligns automatically.
type CreateScheduleRequest struct {
	WeekStart string `json:"week_start" binding:"required,datetime=2006-01-02"`
	Notes     string `json:"notes"      binding:"omitempty,max=2000"`
}

// ScheduleForDateRequest resolves (or lazily creates) the schedule of the
// week containing an arbitrary date.
type ScheduleForDateRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateScheduleRequest edits the week notes.
type UpdateScheduleRequest struct {
	Notes *string `json:"notes" binding:"required,max=2000"`
}

// CopyScheduleRequest copies every shift of a source week into a target week,
// preserving each shift's day offset from the week start.
type CopyScheduleRequest struct {
	TargetWeekStart string `json:"target_week_start" binding:"required,datetime=2006-01-02"`
	Notes           string `json:"notes"             binding:"omitempty,max=2000"`
}

// ScheduleListRequest filters the schedule listing.
type ScheduleListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// ScheduleResponse is the summary view of a planning week.
type ScheduleResponse struct {
	ID            string           `json:"id"`
	WeekStart     string           `json:"week_start"`
	WeekEnd       string           `json:"week_end"`
	Notes         string           `json:"notes,omitempty"`
	CreatedBy     *AccountResponse `json:"created_by,omitempty"`
	TotalHours    float64          `json:"total_hours"`
	EmployeeCount int              `json:"employee_count"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// DayView is one calendar day of the week view, shifts ordered by start time.
type DayView struct {
	Date    string          `json:"date"`
	DayName string          `json:"day_name"`
	Shifts  []ShiftResponse `json:"shifts"`
}

// ScheduleDetailResponse is the full week view consumed by renderers:
// seven days with their ordered shifts, plus week navigation.
type ScheduleDetailResponse struct {
	ScheduleResponse
	Days           []DayView `json:"days"`
	PrevScheduleID string    `json:"prev_schedule_id,omitempty"`
	NextScheduleID string    `json:"next_schedule_id,omitempty"`
}

// GetOrCreateScheduleResponse reports whether the week was lazily created.
type GetOrCreateScheduleResponse struct {
	Schedule ScheduleResponse `json:"schedule"`
	Created  bool             `json:"created"`
}

// CopyFailure is one shift that could not be copied into the target week.
type CopyFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Reason       string `json:"reason"`
}

// CopyScheduleResponse reports the outcome of a week copy. Individual shift
// failures never abort the batch; they are listed here instead.
type CopyScheduleResponse struct {
	Schedule     ScheduleResponse `json:"schedule"`
	CreatedCount int              `json:"created_count"`
	FailedCount  int              `json:"failed_count"`
	Failures     []CopyFailure    `json:"failures,omitempty"`
}
