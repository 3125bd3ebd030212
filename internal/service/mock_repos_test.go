package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/internal/repository"
)

// Map-backed repository fakes. They reproduce the behaviour the services
// rely on: gorm.ErrRecordNotFound on misses and gorm.ErrDuplicatedKey on
// unique-constraint violations (username, week_start, exact shift tuple).

var idSeq int

func nextID(prefix string) string {
	idSeq++
	return fmt.Sprintf("%s-%04d", prefix, idSeq)
}

// ── accounts ──

type mockAccountRepo struct {
	accounts map[string]*model.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	for _, a := range r.accounts {
		if a.Username == account.Username {
			return gorm.ErrDuplicatedKey
		}
		if account.Email != "" && a.Email == account.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.AccountID == "" {
		account.AccountID = nextID("acc")
	}
	cp := *account
	r.accounts[account.AccountID] = &cp
	return nil
}

func (r *mockAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── employees ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: map[string]*model.Employee{}}
}

func (r *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = nextID("emp")
	}
	cp := *employee
	r.employees[employee.EmployeeID] = &cp
	return nil
}

func (r *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := r.employees[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	if _, ok := r.employees[employee.EmployeeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *employee
	r.employees[employee.EmployeeID] = &cp
	return nil
}

func (r *mockEmployeeRepo) List(_ context.Context, status, keyword string, offset, limit int) ([]model.Employee, int64, error) {
	var matched []model.Employee
	for _, e := range r.employees {
		switch status {
		case repository.EmployeeStatusInternal:
			if e.IsExternal {
				continue
			}
		case repository.EmployeeStatusExternal:
			if !e.IsExternal {
				continue
			}
		case repository.EmployeeStatusInactive:
			if e.IsActive {
				continue
			}
		}
		if keyword != "" {
			k := strings.ToLower(keyword)
			if !strings.Contains(strings.ToLower(e.FirstName), k) &&
				!strings.Contains(strings.ToLower(e.LastName), k) &&
				!strings.Contains(e.Phone, keyword) {
				continue
			}
		}
		matched = append(matched, *e)
	}
	sortEmployees(matched)

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *mockEmployeeRepo) Counts(_ context.Context) (repository.EmployeeCounts, error) {
	var c repository.EmployeeCounts
	for _, e := range r.employees {
		c.Total++
		if e.IsExternal {
			c.External++
		} else {
			c.Internal++
		}
		if !e.IsActive {
			c.Inactive++
		}
	}
	return c, nil
}

func (r *mockEmployeeRepo) SearchActive(_ context.Context, term string, limit int) ([]model.Employee, error) {
	var matched []model.Employee
	t := strings.ToLower(term)
	for _, e := range r.employees {
		if !e.IsActive {
			continue
		}
		if t != "" &&
			!strings.Contains(strings.ToLower(e.FirstName), t) &&
			!strings.Contains(strings.ToLower(e.LastName), t) {
			continue
		}
		matched = append(matched, *e)
	}
	sortEmployees(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func sortEmployees(list []model.Employee) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].LastName != list[j].LastName {
			return list[i].LastName < list[j].LastName
		}
		return list[i].FirstName < list[j].FirstName
	})
}

// ── schedules ──

type mockScheduleRepo struct {
	schedules map[string]*model.WeeklySchedule
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: map[string]*model.WeeklySchedule{}}
}

func (r *mockScheduleRepo) Create(_ context.Context, schedule *model.WeeklySchedule) error {
	for _, s := range r.schedules {
		if s.WeekStart.Equal(schedule.WeekStart) {
			return gorm.ErrDuplicatedKey
		}
	}
	if schedule.ScheduleID == "" {
		schedule.ScheduleID = nextID("sch")
	}
	cp := *schedule
	r.schedules[schedule.ScheduleID] = &cp
	return nil
}

func (r *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.WeeklySchedule, error) {
	if s, ok := r.schedules[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockScheduleRepo) GetByWeekStart(_ context.Context, weekStart time.Time) (*model.WeeklySchedule, error) {
	for _, s := range r.schedules {
		if s.WeekStart.Equal(weekStart) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockScheduleRepo) Update(_ context.Context, schedule *model.WeeklySchedule) error {
	if _, ok := r.schedules[schedule.ScheduleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *schedule
	r.schedules[schedule.ScheduleID] = &cp
	return nil
}

func (r *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(r.schedules, id)
	return nil
}

func (r *mockScheduleRepo) List(_ context.Context, keyword string, offset, limit int) ([]model.WeeklySchedule, int64, error) {
	var matched []model.WeeklySchedule
	for _, s := range r.schedules {
		if keyword != "" && !strings.Contains(strings.ToLower(s.Notes), strings.ToLower(keyword)) {
			continue
		}
		matched = append(matched, *s)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].WeekStart.After(matched[j].WeekStart)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// ── shifts ──

type mockShiftRepo struct {
	shifts    map[string]*model.Shift
	employees *mockEmployeeRepo // for Employee preloads
}

func newMockShiftRepo(employees *mockEmployeeRepo) *mockShiftRepo {
	return &mockShiftRepo{shifts: map[string]*model.Shift{}, employees: employees}
}

func (r *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	for _, s := range r.shifts {
		if s.ScheduleID == shift.ScheduleID &&
			s.EmployeeID == shift.EmployeeID &&
			s.Date.Equal(shift.Date) &&
			s.StartTime == shift.StartTime &&
			s.EndTime == shift.EndTime {
			return gorm.ErrDuplicatedKey
		}
	}
	if shift.ShiftID == "" {
		shift.ShiftID = nextID("shf")
	}
	cp := *shift
	cp.Employee = nil
	r.shifts[shift.ShiftID] = &cp
	return nil
}

func (r *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := r.shifts[id]; ok {
		cp := *s
		r.preload(&cp)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	if _, ok := r.shifts[shift.ShiftID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range r.shifts {
		if s.ShiftID != shift.ShiftID &&
			s.ScheduleID == shift.ScheduleID &&
			s.EmployeeID == shift.EmployeeID &&
			s.Date.Equal(shift.Date) &&
			s.StartTime == shift.StartTime &&
			s.EndTime == shift.EndTime {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *shift
	cp.Employee = nil
	r.shifts[shift.ShiftID] = &cp
	return nil
}

func (r *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(r.shifts, id)
	return nil
}

func (r *mockShiftRepo) ListBySchedule(_ context.Context, scheduleID string) ([]model.Shift, error) {
	var matched []model.Shift
	for _, s := range r.shifts {
		if s.ScheduleID == scheduleID {
			cp := *s
			r.preload(&cp)
			matched = append(matched, cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return model.MinutesOf(matched[i].StartTime) < model.MinutesOf(matched[j].StartTime)
	})
	return matched, nil
}

func (r *mockShiftRepo) ListByEmployeeDate(_ context.Context, employeeID string, date time.Time) ([]model.Shift, error) {
	var matched []model.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Date.Equal(date) {
			cp := *s
			r.preload(&cp)
			matched = append(matched, cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return model.MinutesOf(matched[i].StartTime) < model.MinutesOf(matched[j].StartTime)
	})
	return matched, nil
}

func (r *mockShiftRepo) Exists(_ context.Context, scheduleID, employeeID string, date time.Time, startTime, endTime string) (bool, error) {
	for _, s := range r.shifts {
		if s.ScheduleID == scheduleID &&
			s.EmployeeID == employeeID &&
			s.Date.Equal(date) &&
			s.StartTime == startTime &&
			s.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockShiftRepo) preload(s *model.Shift) {
	if e, ok := r.employees.employees[s.EmployeeID]; ok {
		cp := *e
		s.Employee = &cp
	}
}

// ── fixture ──

func newTestRepo() *repository.Repository {
	employees := newMockEmployeeRepo()
	return &repository.Repository{
		Account:  newMockAccountRepo(),
		Employee: employees,
		Schedule: newMockScheduleRepo(),
		Shift:    newMockShiftRepo(employees),
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func addEmployee(repo *repository.Repository, first, last string, active bool) *model.Employee {
	e := &model.Employee{
		FirstName:  first,
		LastName:   last,
		IsExternal: true,
		IsActive:   active,
	}
	_ = repo.Employee.Create(context.Background(), e)
	return e
}

func addSchedule(repo *repository.Repository, weekStart string) *model.WeeklySchedule {
	s := &model.WeeklySchedule{
		WeekStart:   mustDate(weekStart),
		CreatedByID: "acc-test",
	}
	_ = repo.Schedule.Create(context.Background(), s)
	return s
}
