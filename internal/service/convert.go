package service

import (
	"time"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/model"
)

// ── model → dto conversions shared across services ──

func toAccountResponse(a *model.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:       a.AccountID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:         e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Phone:      e.Phone,
		IsExternal: e.IsExternal,
		IsActive:   e.IsActive,
		Account:    toAccountResponse(e.Account),
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		resp.HireDate = e.HireDate.Format(dto.DateFormat)
	}
	return resp
}

func toShiftResponse(s *model.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:              s.ShiftID,
		ScheduleID:      s.ScheduleID,
		EmployeeID:      s.EmployeeID,
		Date:            s.Date.Format(dto.DateFormat),
		DayName:         s.Date.Weekday().String(),
		StartTime:       model.Clock(s.StartTime),
		EndTime:         model.Clock(s.EndTime),
		DurationMinutes: s.DurationMinutes(),
		Duration:        s.DurationDisplay(),
		Notes:           s.Notes,
	}
	if s.Employee != nil {
		resp.EmployeeName = s.Employee.FullName()
	}
	return resp
}

func toShiftResponses(shifts []model.Shift) []dto.ShiftResponse {
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, toShiftResponse(&shifts[i]))
	}
	return out
}

// toScheduleResponse builds the summary view; total hours and the distinct
// employee count are derived from the shift set on every read, never stored.
func toScheduleResponse(s *model.WeeklySchedule, shifts []model.Shift) dto.ScheduleResponse {
	totalMinutes := 0
	employees := make(map[string]struct{})
	for i := range shifts {
		totalMinutes += shifts[i].DurationMinutes()
		employees[shifts[i].EmployeeID] = struct{}{}
	}

	return dto.ScheduleResponse{
		ID:            s.ScheduleID,
		WeekStart:     s.WeekStart.Format(dto.DateFormat),
		WeekEnd:       s.WeekEnd().Format(dto.DateFormat),
		Notes:         s.Notes,
		CreatedBy:     toAccountResponse(s.CreatedBy),
		TotalHours:    float64(totalMinutes) / 60,
		EmployeeCount: len(employees),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}
