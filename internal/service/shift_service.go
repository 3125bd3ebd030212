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
)

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrInactiveEmployee = errors.New("employee is not active")
	ErrDateOutsideWeek  = errors.New("date falls outside the schedule week")
	ErrDuplicateShift   = errors.New("identical shift already exists")
	ErrShiftConflict    = errors.New("shift overlaps an existing shift")
)

// ShiftService manages shift assignments inside a schedule.
//
// Every write re-validates the full shift invariant set: the time window is
// non-empty and same-day, the employee is active, the date belongs to the
// owning week, and the employee has no overlapping shift on that date.
// Back-to-back shifts (one ending exactly when the next starts) never
// conflict.
type ShiftService interface {
	Create(ctx context.Context, scheduleID string, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	CheckConflicts(ctx context.Context, req *dto.ShiftConflictsRequest) (*dto.ShiftConflictsResponse, error)
	BulkCreate(ctx context.Context, scheduleID string, req *dto.BulkCreateShiftsRequest) (*dto.BulkCreateShiftsResponse, error)
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService creates the ShiftService.
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, scheduleID string, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	schedule, err := s.getSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	employee, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, schedule, employee, date, req.StartTime, req.EndTime, ""); err != nil {
		return nil, err
	}

	exists, err := s.repo.Shift.Exists(ctx, schedule.ScheduleID, employee.EmployeeID, date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateShift
	}

	shift := &model.Shift{
		ScheduleID: schedule.ScheduleID,
		EmployeeID: employee.EmployeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateShift
		}
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, err
	}
	shift.Employee = employee

	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.getShift(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule, err := s.getSchedule(ctx, shift.ScheduleID)
	if err != nil {
		return nil, err
	}

	employee, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	// the shift under edit is excluded from its own conflict scan
	if err := s.validate(ctx, schedule, employee, date, req.StartTime, req.EndTime, shift.ShiftID); err != nil {
		return nil, err
	}

	shift.EmployeeID = employee.EmployeeID
	shift.Employee = employee
	shift.Date = date
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.Notes = req.Notes

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateShift
		}
		s.logger.Error("update shift failed", zap.Error(err))
		return nil, err
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Delete(ctx context.Context, id string) error {
	if _, err := s.getShift(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Shift.Delete(ctx, id); err != nil {
		s.logger.Error("delete shift failed", zap.Error(err))
		return err
	}
	return nil
}

// CheckConflicts is the read-only check behind the planner UI: it reports
// which existing shifts a proposed window would overlap, without writing.
func (s *shiftService) CheckConflicts(ctx context.Context, req *dto.ShiftConflictsRequest) (*dto.ShiftConflictsResponse, error) {
	date, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Shift.ListByEmployeeDate(ctx, req.EmployeeID, date)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return nil, err
	}

	conflicts := FindConflicts(existing, req.StartTime, req.EndTime, req.ExcludeID)
	return &dto.ShiftConflictsResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    toShiftResponses(conflicts),
	}, nil
}

// BulkCreate expands employees × dates into candidate shifts sharing one
// time window. An invalid window fails the whole request up front; every
// other problem skips only the offending pair and is reported with a reason.
// Exact duplicates of existing shifts are skipped, not errors.
func (s *shiftService) BulkCreate(ctx context.Context, scheduleID string, req *dto.BulkCreateShiftsRequest) (*dto.BulkCreateShiftsResponse, error) {
	if model.MinutesOf(req.StartTime) >= model.MinutesOf(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	schedule, err := s.getSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := time.Parse(dto.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	resp := &dto.BulkCreateShiftsResponse{Created: []dto.ShiftResponse{}}

	for _, employeeID := range req.EmployeeIDs {
		employee, err := s.getEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, ErrEmployeeNotFound) {
				for _, date := range dates {
					resp.Skipped = append(resp.Skipped, dto.SkippedShift{
						EmployeeID: employeeID,
						Date:       date.Format(dto.DateFormat),
						Reason:     dto.SkipReasonInactiveEmployee,
					})
				}
				continue
			}
			return nil, err
		}

		for _, date := range dates {
			created, skipReason, err := s.bulkCreateOne(ctx, schedule, employee, date, req)
			if err != nil {
				return nil, err
			}
			if created != nil {
				resp.Created = append(resp.Created, *created)
				continue
			}
			resp.Skipped = append(resp.Skipped, dto.SkippedShift{
				EmployeeID:   employee.EmployeeID,
				EmployeeName: employee.FullName(),
				Date:         date.Format(dto.DateFormat),
				Reason:       skipReason,
			})
		}
	}

	return resp, nil
}

// bulkCreateOne handles one (employee, date) pair. A nil response with a
// non-empty reason means the pair was skipped.
func (s *shiftService) bulkCreateOne(
	ctx context.Context,
	schedule *model.WeeklySchedule,
	employee *model.Employee,
	date time.Time,
	req *dto.BulkCreateShiftsRequest,
) (*dto.ShiftResponse, string, error) {
	exists, err := s.repo.Shift.Exists(ctx, schedule.ScheduleID, employee.EmployeeID, date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, dto.SkipReasonDuplicate, nil
	}

	if err := s.validate(ctx, schedule, employee, date, req.StartTime, req.EndTime, ""); err != nil {
		if reason := skipReasonFor(err); reason != "" {
			return nil, reason, nil
		}
		return nil, "", err
	}

	shift := &model.Shift{
		ScheduleID: schedule.ScheduleID,
		EmployeeID: employee.EmployeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race on the exact-duplicate index
			return nil, dto.SkipReasonDuplicate, nil
		}
		s.logger.Error("create shift failed", zap.Error(err))
		return nil, "", err
	}
	shift.Employee = employee

	resp := toShiftResponse(shift)
	return &resp, "", nil
}

func skipReasonFor(err error) string {
	switch {
	case errors.Is(err, ErrShiftConflict):
		return dto.SkipReasonConflict
	case errors.Is(err, ErrInactiveEmployee):
		return dto.SkipReasonInactiveEmployee
	case errors.Is(err, ErrDateOutsideWeek):
		return dto.SkipReasonDateOutsideWeek
	default:
		return ""
	}
}

// validate loads the (employee, date) conflict snapshot and runs the full
// candidate validation against it.
func (s *shiftService) validate(
	ctx context.Context,
	schedule *model.WeeklySchedule,
	employee *model.Employee,
	date time.Time,
	startTime, endTime, excludeID string,
) error {
	existing, err := s.repo.Shift.ListByEmployeeDate(ctx, employee.EmployeeID, date)
	if err != nil {
		s.logger.Error("list shifts failed", zap.Error(err))
		return err
	}
	return validateShiftCandidate(schedule, employee, date, startTime, endTime, existing, excludeID)
}

func (s *shiftService) getShift(ctx context.Context, id string) (*model.Shift, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("shift lookup failed", zap.Error(err))
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) getSchedule(ctx context.Context, id string) (*model.WeeklySchedule, error) {
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

func (s *shiftService) getEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("employee lookup failed", zap.Error(err))
		return nil, err
	}
	return employee, nil
}
