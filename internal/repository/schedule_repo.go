package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/model"
)

// ScheduleRepository is the weekly-schedule data access interface.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.WeeklySchedule) error
	GetByID(ctx context.Context, id string) (*model.WeeklySchedule, error)
	GetByWeekStart(ctx context.Context, weekStart time.Time) (*model.WeeklySchedule, error)
	Update(ctx context.Context, schedule *model.WeeklySchedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, keyword string, offset, limit int) ([]model.WeeklySchedule, int64, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates the GORM-backed ScheduleRepository.
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.WeeklySchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.WeeklySchedule, error) {
	var schedule model.WeeklySchedule
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) GetByWeekStart(ctx context.Context, weekStart time.Time) (*model.WeeklySchedule, error) {
	var schedule model.WeeklySchedule
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("week_start = ?", weekStart).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Update(ctx context.Context, schedule *model.WeeklySchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	// shifts cascade via the schema's ON DELETE CASCADE
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.WeeklySchedule{}).Error
}

func (r *scheduleRepo) List(ctx context.Context, keyword string, offset, limit int) ([]model.WeeklySchedule, int64, error) {
	var schedules []model.WeeklySchedule
	var total int64

	db := r.db.WithContext(ctx).Model(&model.WeeklySchedule{})

	if keyword != "" {
		db = db.Where("notes ILIKE ?", "%"+keyword+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("CreatedBy").
		Offset(offset).Limit(limit).
		Order("week_start DESC").
		Find(&schedules).Error; err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}
