package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/config"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/internal/repository"
	"github.com/andrewarnaud1/mymanager/pkg/week"
)

// ExportFile is a generated download: filename, MIME type and payload.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders schedules into downloadable formats: an Excel team
// grid for the whole week, and an iCalendar feed of one employee's shifts.
type ExportService interface {
	ScheduleExcel(ctx context.Context, scheduleID string) (*ExportFile, error)
	EmployeeICS(ctx context.Context, scheduleID, employeeID string) (*ExportFile, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService creates the ExportService. Event times in calendar
// exports are expressed in the restaurant's timezone.
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, exports fall back to UTC",
			zap.String("timezone", cfg.Database.Timezone))
		loc = time.UTC
	}
	return &exportService{repo: repo, loc: loc, logger: logger}
}

// ScheduleExcel renders the week as a grid: one row per employee, one column
// per day, each cell listing that employee's shift windows for the day.
func (s *exportService) ScheduleExcel(ctx context.Context, scheduleID string) (*ExportFile, error) {
	schedule, shifts, err := s.load(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	days := week.Days(schedule.WeekStart)

	// header row
	f.SetCellValue(sheet, "A1", "Employee")
	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(sheet, cell, fmt.Sprintf("%s %s", day.Weekday().String(), day.Format("02/01")))
	}
	if style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(days)+1, 1)
		f.SetCellStyle(sheet, "A1", last, style)
	}

	// one row per employee, in first-appearance order of the sorted shift list
	rows := map[string]int{}
	nextRow := 2
	for i := range shifts {
		shift := &shifts[i]
		row, ok := rows[shift.EmployeeID]
		if !ok {
			row = nextRow
			nextRow++
			rows[shift.EmployeeID] = row
			name := shift.EmployeeID
			if shift.Employee != nil {
				name = shift.Employee.DisplayName()
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			f.SetCellValue(sheet, cell, name)
		}

		col := dayColumn(schedule.WeekStart, shift.Date)
		cell, _ := excelize.CoordinatesToCellName(col, row)
		existing, _ := f.GetCellValue(sheet, cell)
		value := shift.TimeRange()
		if existing != "" {
			value = existing + "\n" + value
		}
		f.SetCellValue(sheet, cell, value)
	}

	f.SetColWidth(sheet, "A", "A", 24)
	endCol, _ := excelize.ColumnNumberToName(len(days) + 1)
	f.SetColWidth(sheet, "B", endCol, 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, err
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("schedule_%s.xlsx", schedule.WeekStart.Format("20060102")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// dayColumn maps a shift date to its grid column (B..H).
func dayColumn(weekStart, date time.Time) int {
	offset := int(week.Truncate(date).Sub(week.Truncate(weekStart)).Hours() / 24)
	return offset + 2
}

// EmployeeICS renders one employee's shifts of the week as an iCalendar
// feed, one VEVENT per shift, importable into any calendar client.
func (s *exportService) EmployeeICS(ctx context.Context, scheduleID, employeeID string) (*ExportFile, error) {
	schedule, shifts, err := s.load(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	employee, err := s.repo.Employee.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("employee lookup failed", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//mymanager//schedule//EN")

	now := time.Now().In(s.loc)
	for i := range shifts {
		shift := &shifts[i]
		if shift.EmployeeID != employeeID {
			continue
		}
		event := cal.AddEvent(shift.ShiftID + "@mymanager")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(s.atClock(shift.Date, shift.StartTime))
		event.SetEndAt(s.atClock(shift.Date, shift.EndTime))
		event.SetSummary(fmt.Sprintf("Shift %s", shift.TimeRange()))
		if shift.Notes != "" {
			event.SetDescription(shift.Notes)
		}
	}

	return &ExportFile{
		Filename: fmt.Sprintf("shifts_%s_%s.ics",
			slug(employee.LastName), schedule.WeekStart.Format("20060102")),
		ContentType: "text/calendar",
		Data:        []byte(cal.Serialize()),
	}, nil
}

// atClock combines a DATE column value with an "HH:MM" clock string into a
// point in time in the restaurant's timezone.
func (s *exportService) atClock(date time.Time, clock string) time.Time {
	minutes := model.MinutesOf(clock)
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, s.loc)
}

func slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		return "employee"
	}
	return name
}

func (s *exportService) load(ctx context.Context, scheduleID string) (*model.WeeklySchedule, []model.Shift, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrScheduleNotFound
		}
		s.logger.Error("schedule lookup failed", zap.Error(err))
		return nil, nil, err
	}

	shifts, err := s.repo.Shift.ListBySchedule(ctx, schedule.ScheduleID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, nil, err
	}
	return schedule, shifts, nil
}
