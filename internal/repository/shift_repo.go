package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/model"
)

// ShiftRepository is the shift data access interface.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id string) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]model.Shift, error)
	ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]model.Shift, error)
	Exists(ctx context.Context, scheduleID, employeeID string, date time.Time, startTime, endTime string) (bool, error)
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates the GORM-backed ShiftRepository.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		Delete(&model.Shift{}).Error
}

func (r *shiftRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("schedule_id = ?", scheduleID).
		Order("date, start_time").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

// ListByEmployeeDate returns the conflict-scan snapshot: every shift of one
// employee on one date, ordered by start time. Typically at most a handful
// of rows; served by the (employee_id, date) index. Employee is preloaded
// because these rows end up in conflict payloads.
func (r *shiftRepo) ListByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("start_time").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepo) Exists(ctx context.Context, scheduleID, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Shift{}).
		Where("schedule_id = ? AND employee_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			scheduleID, employeeID, date, startTime, endTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
