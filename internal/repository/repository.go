package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Account  AccountRepository
	Employee EmployeeRepository
	Schedule ScheduleRepository
	Shift    ShiftRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Account:  NewAccountRepo(db),
		Employee: NewEmployeeRepo(db),
		Schedule: NewScheduleRepo(db),
		Shift:    NewShiftRepo(db),
	}
}
