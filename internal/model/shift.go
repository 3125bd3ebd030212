package model

import (
	"fmt"
	"time"
)

// Shift is a single work assignment — maps to shifts.
//
// Times are stored as clock strings (TIME columns) and compared through
// MinutesOf, so padded, unpadded and seconds-suffixed values order the same.
// Overnight shifts (end <= start) are rejected uniformly.
type Shift struct {
	ShiftID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	ScheduleID string    `gorm:"type:uuid;not null;index"                       json:"schedule_id"`
	EmployeeID string    `gorm:"type:uuid;not null;index:idx_shifts_employee_date" json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_shifts_employee_date" json:"date"`
	StartTime  string    `gorm:"type:time;not null"                             json:"start_time"`
	EndTime    string    `gorm:"type:time;not null"                             json:"end_time"`
	Notes      string    `gorm:"type:varchar(200);not null;default:''"          json:"notes,omitempty"`
	BaseModel

	Employee *Employee       `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Schedule *WeeklySchedule `gorm:"foreignKey:ScheduleID;references:ScheduleID" json:"-"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }

// DurationMinutes returns the shift length in minutes.
func (s *Shift) DurationMinutes() int {
	return MinutesOf(s.EndTime) - MinutesOf(s.StartTime)
}

// DurationDisplay formats the shift length as "7h" or "7h30".
func (s *Shift) DurationDisplay() string {
	minutes := s.DurationMinutes()
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// TimeRange formats the shift window as "11:30 - 14:30".
func (s *Shift) TimeRange() string {
	return Clock(s.StartTime) + " - " + Clock(s.EndTime)
}

// Clock normalizes a TIME column value ("HH:MM" or "HH:MM:SS") to "HH:MM".
func Clock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// MinutesOf parses "HH:MM" into minutes since midnight.
// Malformed input counts as zero; format validity is checked at binding time.
func MinutesOf(t string) int {
	var h, m int
	if _, err := fmt.Sscanf(Clock(t), "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}
