package dto

// Reasons a bulk-creation pair can be skipped.
const (
	SkipReasonDuplicate        = "duplicate"
	SkipReasonConflict         = "conflict"
	SkipReasonInactiveEmployee = "inactive_employee"
	SkipReasonDateOutsideWeek  = "date_outside_week"
)

// CreateShiftRequest creates one shift inside a schedule.
type CreateShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"  binding:"required,datetime=15:04"`
	EndTime    string `json:"end_time"    binding:"required,datetime=15:04"`
	Notes      string `json:"notes"       binding:"omitempty,max=200"`
}

// UpdateShiftRequest re-saves a shift; all invariants are re-validated with
// the shift itself excluded from the conflict scan.
type UpdateShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"  binding:"required,datetime=15:04"`
	EndTime    string `json:"end_time"    binding:"required,datetime=15:04"`
	Notes      string `json:"notes"       binding:"omitempty,max=200"`
}

// BulkCreateShiftsRequest creates shifts for every (employee, date) pair of
// the cross-product with one shared time window.
type BulkCreateShiftsRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	Dates       []string `json:"dates"        binding:"required,min=1,dive,datetime=2006-01-02"`
	StartTime   string   `json:"start_time"   binding:"required,datetime=15:04"`
	EndTime     string   `json:"end_time"     binding:"required,datetime=15:04"`
	Notes       string   `json:"notes"        binding:"omitempty,max=200"`
}

// SkippedShift is one cross-product pair that was not created, with the
// reason it was skipped.
type SkippedShift struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`
}

// BulkCreateShiftsResponse lists what was created and what was skipped.
type BulkCreateShiftsResponse struct {
	Created []ShiftResponse `json:"created"`
	Skipped []SkippedShift  `json:"skipped,omitempty"`
}

// ShiftConflictsRequest asks which shifts a proposed window would overlap,
// without writing.
type ShiftConflictsRequest struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	Date       string `form:"date"        binding:"required,datetime=2006-01-02"`
	StartTime  string `form:"start_time"  binding:"required,datetime=15:04"`
	EndTime    string `form:"end_time"    binding:"required,datetime=15:04"`
	ExcludeID  string `form:"exclude_id"  binding:"omitempty,uuid"`
}

// ShiftConflictsResponse is the conflict check result.
type ShiftConflictsResponse struct {
	HasConflicts bool            `json:"has_conflicts"`
	Conflicts    []ShiftResponse `json:"conflicts"`
}

// ShiftResponse is the public view of a shift.
type ShiftResponse struct {
	ID              string `json:"id"`
	ScheduleID      string `json:"schedule_id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	Date            string `json:"date"`
	DayName         string `json:"day_name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
	Notes           string `json:"notes,omitempty"`
}
