package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/model"
)

// Employee listing status filters.
const (
	EmployeeStatusInternal = "internal"
	EmployeeStatusExternal = "external"
	EmployeeStatusInactive = "inactive"
)

// EmployeeCounts summarizes the roster.
type EmployeeCounts struct {
	Total    int64
	Internal int64
	External int64
	Inactive int64
}

// EmployeeRepository is the employee data access interface.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	List(ctx context.Context, status, keyword string, offset, limit int) ([]model.Employee, int64, error)
	Counts(ctx context.Context) (EmployeeCounts, error)
	SearchActive(ctx context.Context, term string, limit int) ([]model.Employee, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates the GORM-backed EmployeeRepository.
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepo) List(ctx context.Context, status, keyword string, offset, limit int) ([]model.Employee, int64, error) {
	var employees []model.Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Employee{})

	switch status {
	case EmployeeStatusInternal:
		db = db.Where("is_external = FALSE")
	case EmployeeStatusExternal:
		db = db.Where("is_external = TRUE")
	case EmployeeStatusInactive:
		db = db.Where("is_active = FALSE")
	}

	if keyword != "" {
		pattern := "%" + keyword + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Account").
		Offset(offset).Limit(limit).
		Order("last_name, first_name").
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepo) Counts(ctx context.Context) (EmployeeCounts, error) {
	var counts EmployeeCounts

	q := func() *gorm.DB { return r.db.WithContext(ctx).Model(&model.Employee{}) }

	if err := q().Count(&counts.Total).Error; err != nil {
		return counts, err
	}
	if err := q().Where("is_external = FALSE").Count(&counts.Internal).Error; err != nil {
		return counts, err
	}
	if err := q().Where("is_external = TRUE").Count(&counts.External).Error; err != nil {
		return counts, err
	}
	if err := q().Where("is_active = FALSE").Count(&counts.Inactive).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *employeeRepo) SearchActive(ctx context.Context, term string, limit int) ([]model.Employee, error) {
	var employees []model.Employee
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Order("last_name, first_name").
		Limit(limit).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
