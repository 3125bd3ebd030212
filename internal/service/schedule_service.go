package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/internal/repository"
	"github.com/andrewarnaud1/mymanager/pkg/week"
)

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidWeekAnchor = errors.New("week start must be a Monday")
	ErrDuplicateWeek     = errors.New("a schedule already exists for this week")
)

// ScheduleService manages planning weeks.
type ScheduleService interface {
	// Create makes a schedule at an explicit anchor; the anchor must already
	// be a Monday, unlike GetOrCreateForDate which aligns any date.
	Create(ctx context.Context, req *dto.CreateScheduleRequest, callerID string) (*dto.ScheduleResponse, error)
	GetOrCreateForDate(ctx context.Context, date string, callerID string) (*dto.GetOrCreateScheduleResponse, error)
	Get(ctx context.Context, id string) (*dto.ScheduleDetailResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error)
	UpdateNotes(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	// Copy replays every shift of the source week into the target week at
	// the same day offset, re-validating each copy; failures are reported
	// per shift, never aborting the batch.
	Copy(ctx context.Context, sourceID string, req *dto.CopyScheduleRequest, callerID string) (*dto.CopyScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates the ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest, callerID string) (*dto.ScheduleResponse, error) {
	weekStart, err := time.Parse(dto.DateFormat, req.WeekStart)
	if err != nil {
		return nil, err
	}
	if !week.IsMonday(weekStart) {
		return nil, ErrInvalidWeekAnchor
	}

	schedule := &model.WeeklySchedule{
		WeekStart:   weekStart,
		Notes:       req.Notes,
		CreatedByID: callerID,
	}
	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateWeek
		}
		s.logger.Error("create schedule failed", zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(schedule, nil)
	return &resp, nil
}

// GetOrCreateForDate resolves the schedule of the week containing any date,
// creating it lazily. Two racing creators for the same week settle on the
// unique week_start index: the loser re-reads the winner's row.
func (s *scheduleService) GetOrCreateForDate(ctx context.Context, date string, callerID string) (*dto.GetOrCreateScheduleResponse, error) {
	d, err := time.Parse(dto.DateFormat, date)
	if err != nil {
		return nil, err
	}
	monday := week.MondayOf(d)

	schedule, err := s.repo.Schedule.GetByWeekStart(ctx, monday)
	if err == nil {
		return s.getOrCreateResponse(ctx, schedule, false)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("schedule lookup failed", zap.Error(err))
		return nil, err
	}

	schedule = &model.WeeklySchedule{
		WeekStart:   monday,
		CreatedByID: callerID,
	}
	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, getErr := s.repo.Schedule.GetByWeekStart(ctx, monday)
			if getErr != nil {
				return nil, getErr
			}
			return s.getOrCreateResponse(ctx, existing, false)
		}
		s.logger.Error("create schedule failed", zap.Error(err))
		return nil, err
	}

	return s.getOrCreateResponse(ctx, schedule, true)
}

func (s *scheduleService) getOrCreateResponse(ctx context.Context, schedule *model.WeeklySchedule, created bool) (*dto.GetOrCreateScheduleResponse, error) {
	shifts, err := s.repo.Shift.ListBySchedule(ctx, schedule.ScheduleID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}
	return &dto.GetOrCreateScheduleResponse{
		Schedule: toScheduleResponse(schedule, shifts),
		Created:  created,
	}, nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*dto.ScheduleDetailResponse, error) {
	schedule, err := s.getSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	shifts, err := s.repo.Shift.ListBySchedule(ctx, schedule.ScheduleID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}

	detail := &dto.ScheduleDetailResponse{
		ScheduleResponse: toScheduleResponse(schedule, shifts),
		Days:             buildWeekView(schedule.WeekStart, shifts),
	}

	// week navigation
	if prev, err := s.repo.Schedule.GetByWeekStart(ctx, schedule.WeekStart.AddDate(0, 0, -week.DaysPerWeek)); err == nil {
		detail.PrevScheduleID = prev.ScheduleID
	}
	if next, err := s.repo.Schedule.GetByWeekStart(ctx, schedule.WeekStart.AddDate(0, 0, week.DaysPerWeek)); err == nil {
		detail.NextScheduleID = next.ScheduleID
	}

	return detail, nil
}

// buildWeekView groups a schedule's shifts into the seven days of its week.
// Shifts arrive ordered by (date, start_time), so per-day order is preserved.
// This is the tabular read model consumed by the Excel/iCalendar renderers.
func buildWeekView(weekStart time.Time, shifts []model.Shift) []dto.DayView {
	days := make([]dto.DayView, 0, week.DaysPerWeek)
	for _, day := range week.Days(weekStart) {
		view := dto.DayView{
			Date:    day.Format(dto.DateFormat),
			DayName: day.Weekday().String(),
			Shifts:  []dto.ShiftResponse{},
		}
		for i := range shifts {
			if sameDate(shifts[i].Date, day) {
				view.Shifts = append(view.Shifts, toShiftResponse(&shifts[i]))
			}
		}
		days = append(days, view)
	}
	return days
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error) {
	schedules, total, err := s.repo.Schedule.List(ctx, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list schedules failed", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		shifts, err := s.repo.Shift.ListBySchedule(ctx, schedules[i].ScheduleID)
		if err != nil {
			s.logger.Error("list shifts failed", zap.Error(err))
			return nil, 0, err
		}
		list = append(list, toScheduleResponse(&schedules[i], shifts))
	}
	return list, total, nil
}

func (s *scheduleService) UpdateNotes(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.getSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Notes != nil {
		schedule.Notes = *req.Notes
	}
	if err := s.repo.Schedule.Update(ctx, schedule); err != nil {
		s.logger.Error("update schedule failed", zap.Error(err))
		return nil, err
	}

	shifts, err := s.repo.Shift.ListBySchedule(ctx, schedule.ScheduleID)
	if err != nil {
		return nil, err
	}
	resp := toScheduleResponse(schedule, shifts)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.getSchedule(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) Copy(ctx context.Context, sourceID string, req *dto.CopyScheduleRequest, callerID string) (*dto.CopyScheduleResponse, error) {
	source, err := s.getSchedule(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	targetStart, err := time.Parse(dto.DateFormat, req.TargetWeekStart)
	if err != nil {
		return nil, err
	}
	if !week.IsMonday(targetStart) {
		return nil, ErrInvalidWeekAnchor
	}

	// reuse the target week when it already exists
	target, err := s.repo.Schedule.GetByWeekStart(ctx, targetStart)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		target = &model.WeeklySchedule{
			WeekStart:   targetStart,
			Notes:       req.Notes,
			CreatedByID: callerID,
		}
		if createErr := s.repo.Schedule.Create(ctx, target); createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				if target, err = s.repo.Schedule.GetByWeekStart(ctx, targetStart); err != nil {
					return nil, err
				}
			} else {
				s.logger.Error("create schedule failed", zap.Error(createErr))
				return nil, createErr
			}
		}
	} else if err != nil {
		s.logger.Error("schedule lookup failed", zap.Error(err))
		return nil, err
	}

	sourceShifts, err := s.repo.Shift.ListBySchedule(ctx, source.ScheduleID)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}

	var failures []dto.CopyFailure
	created := 0

	for i := range sourceShifts {
		shift := &sourceShifts[i]
		offset := int(shift.Date.Sub(week.Truncate(source.WeekStart)).Hours() / 24)
		newDate := week.Truncate(targetStart).AddDate(0, 0, offset)

		if err := s.copyShift(ctx, target, shift, newDate); err != nil {
			failures = append(failures, copyFailure(shift, newDate, err))
			continue
		}
		created++
	}

	targetShifts, err := s.repo.Shift.ListBySchedule(ctx, target.ScheduleID)
	if err != nil {
		return nil, err
	}

	return &dto.CopyScheduleResponse{
		Schedule:     toScheduleResponse(target, targetShifts),
		CreatedCount: created,
		FailedCount:  len(failures),
		Failures:     failures,
	}, nil
}

// copyShift replays one source shift into the target week, running the full
// shift validation against the target's current state.
func (s *scheduleService) copyShift(ctx context.Context, target *model.WeeklySchedule, src *model.Shift, newDate time.Time) error {
	employee := src.Employee
	if employee == nil {
		var err error
		if employee, err = s.repo.Employee.GetByID(ctx, src.EmployeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}
	}

	exists, err := s.repo.Shift.Exists(ctx, target.ScheduleID, src.EmployeeID, newDate, src.StartTime, src.EndTime)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateShift
	}

	existing, err := s.repo.Shift.ListByEmployeeDate(ctx, src.EmployeeID, newDate)
	if err != nil {
		return err
	}
	if err := validateShiftCandidate(target, employee, newDate, src.StartTime, src.EndTime, existing, ""); err != nil {
		return err
	}

	dup := &model.Shift{
		ScheduleID: target.ScheduleID,
		EmployeeID: src.EmployeeID,
		Date:       newDate,
		StartTime:  src.StartTime,
		EndTime:    src.EndTime,
		Notes:      src.Notes,
	}
	if err := s.repo.Shift.Create(ctx, dup); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateShift
		}
		return err
	}
	return nil
}

func copyFailure(src *model.Shift, newDate time.Time, err error) dto.CopyFailure {
	failure := dto.CopyFailure{
		EmployeeID: src.EmployeeID,
		Date:       newDate.Format(dto.DateFormat),
		StartTime:  model.Clock(src.StartTime),
		EndTime:    model.Clock(src.EndTime),
		Reason:     err.Error(),
	}
	if src.Employee != nil {
		failure.EmployeeName = src.Employee.FullName()
	}
	return failure
}

func (s *scheduleService) getSchedule(ctx context.Context, id string) (*model.WeeklySchedule, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("schedule lookup failed", zap.Error(err))
		return nil, err
	}
	return schedule, nil
}
