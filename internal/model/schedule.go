package model

import "time"

// WeeklySchedule is one Monday-anchored planning week — maps to weekly_schedules.
// week_start is unique: there is at most one schedule per calendar week.
type WeeklySchedule struct {
	ScheduleID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	WeekStart   time.Time `gorm:"type:date;not null;uniqueIndex"                 json:"week_start"`
	Notes       string    `gorm:"type:text;not null;default:''"                  json:"notes,omitempty"`
	CreatedByID string    `gorm:"type:uuid;not null"                             json:"created_by_id"`
	BaseModel

	CreatedBy *Account `gorm:"foreignKey:CreatedByID;references:AccountID" json:"created_by,omitempty"`
	Shifts    []Shift  `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"shifts,omitempty"`
}

// TableName sets the table name.
func (WeeklySchedule) TableName() string { return "weekly_schedules" }

// WeekEnd returns the Sunday closing the week.
func (s *WeeklySchedule) WeekEnd() time.Time {
	return s.WeekStart.AddDate(0, 0, 6)
}
