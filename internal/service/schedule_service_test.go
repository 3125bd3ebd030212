package service

import (
	"context"
	"errors"
	"testing"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/repository"
)

func newScheduleFixture(t *testing.T) (ScheduleService, ShiftService, *repository.Repository) {
	t.Helper()
	repo := newTestRepo()
	return NewScheduleService(repo, testLogger()), NewShiftService(repo, testLogger()), repo
}

func TestScheduleCreate(t *testing.T) {
	svc, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	schedule, err := svc.Create(ctx, &dto.CreateScheduleRequest{
		WeekStart: "2024-06-03",
		Notes:     "summer opening",
	}, "acc-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if schedule.WeekStart != "2024-06-03" || schedule.WeekEnd != "2024-06-09" {
		t.Errorf("week = %s..%s", schedule.WeekStart, schedule.WeekEnd)
	}
	if schedule.TotalHours != 0 || schedule.EmployeeCount != 0 {
		t.Errorf("empty week should have zero aggregates: %+v", schedule)
	}

	// 2024-06-04 is a Tuesday
	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{WeekStart: "2024-06-04"}, "acc-1"); !errors.Is(err, ErrInvalidWeekAnchor) {
		t.Errorf("non-Monday anchor: got %v", err)
	}

	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{WeekStart: "2024-06-03"}, "acc-1"); !errors.Is(err, ErrDuplicateWeek) {
		t.Errorf("duplicate week: got %v", err)
	}
}

func TestScheduleGetOrCreateForDate(t *testing.T) {
	svc, _, _ := newScheduleFixture(t)
	ctx := context.Background()

	// Thursday resolves to the Monday of its week
	first, err := svc.GetOrCreateForDate(ctx, "2024-06-06", "acc-1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !first.Created {
		t.Error("first resolution should create the week")
	}
	if first.Schedule.WeekStart != "2024-06-03" {
		t.Errorf("week start = %s, want 2024-06-03", first.Schedule.WeekStart)
	}

	// any other day of the same week resolves to the same schedule
	second, err := svc.GetOrCreateForDate(ctx, "2024-06-09", "acc-2")
	if err != nil {
		t.Fatalf("second resolution: %v", err)
	}
	if second.Created {
		t.Error("second resolution should not create")
	}
	if second.Schedule.ID != first.Schedule.ID {
		t.Errorf("resolved different schedules: %s vs %s", second.Schedule.ID, first.Schedule.ID)
	}
}

func TestScheduleDetailWeekView(t *testing.T) {
	svc, shiftSvc, repo := newScheduleFixture(t)
	ctx := context.Background()

	schedule := addSchedule(repo, "2024-06-03")
	alice := addEmployee(repo, "Alice", "Martin", true)

	for _, w := range []struct{ date, start, end string }{
		{"2024-06-04", "18:00", "22:00"},
		{"2024-06-04", "11:30", "14:30"},
		{"2024-06-09", "11:30", "14:30"},
	} {
		if _, err := shiftSvc.Create(ctx, schedule.ScheduleID, &dto.CreateShiftRequest{
			EmployeeID: alice.EmployeeID,
			Date:       w.date,
			StartTime:  w.start,
			EndTime:    w.end,
		}); err != nil {
			t.Fatalf("seed %s %s: %v", w.date, w.start, err)
		}
	}

	detail, err := svc.Get(ctx, schedule.ScheduleID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if len(detail.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(detail.Days))
	}
	if detail.Days[0].DayName != "Monday" || detail.Days[6].DayName != "Sunday" {
		t.Errorf("day names: %s..%s", detail.Days[0].DayName, detail.Days[6].DayName)
	}

	tuesday := detail.Days[1]
	if len(tuesday.Shifts) != 2 {
		t.Fatalf("tuesday shifts = %d, want 2", len(tuesday.Shifts))
	}
	if tuesday.Shifts[0].StartTime != "11:30" {
		t.Errorf("shifts not ordered by start time: %+v", tuesday.Shifts)
	}
	if len(detail.Days[6].Shifts) != 1 {
		t.Errorf("sunday shifts = %d, want 1", len(detail.Days[6].Shifts))
	}

	// 3 + 4 + 3 hours, one distinct employee
	if detail.TotalHours != 10 {
		t.Errorf("total hours = %v, want 10", detail.TotalHours)
	}
	if detail.EmployeeCount != 1 {
		t.Errorf("employee count = %d, want 1", detail.EmployeeCount)
	}
}

func TestScheduleWeekNavigation(t *testing.T) {
	svc, _, repo := newScheduleFixture(t)
	ctx := context.Background()

	prev := addSchedule(repo, "2024-05-27")
	current := addSchedule(repo, "2024-06-03")
	next := addSchedule(repo, "2024-06-10")

	detail, err := svc.Get(ctx, current.ScheduleID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.PrevScheduleID != prev.ScheduleID {
		t.Errorf("prev = %s, want %s", detail.PrevScheduleID, prev.ScheduleID)
	}
	if detail.NextScheduleID != next.ScheduleID {
		t.Errorf("next = %s, want %s", detail.NextScheduleID, next.ScheduleID)
	}

	isolated, err := svc.Get(ctx, prev.ScheduleID)
	if err != nil {
		t.Fatalf("get prev: %v", err)
	}
	if isolated.PrevScheduleID != "" {
		t.Errorf("prev of first week should be empty, got %s", isolated.PrevScheduleID)
	}
}

func TestScheduleCopy(t *testing.T) {
	svc, shiftSvc, repo := newScheduleFixture(t)
	ctx := context.Background()

	source := addSchedule(repo, "2024-06-03")
	alice := addEmployee(repo, "Alice", "Martin", true)
	bob := addEmployee(repo, "Bob", "Durand", true)

	seeds := []struct {
		employee string
		date     string
		start    string
		end      string
	}{
		{alice.EmployeeID, "2024-06-04", "11:30", "14:30"}, // Tuesday
		{alice.EmployeeID, "2024-06-09", "18:00", "22:00"}, // Sunday
		{bob.EmployeeID, "2024-06-05", "09:00", "17:00"},   // Wednesday
	}
	for _, s := range seeds {
		if _, err := shiftSvc.Create(ctx, source.ScheduleID, &dto.CreateShiftRequest{
			EmployeeID: s.employee,
			Date:       s.date,
			StartTime:  s.start,
			EndTime:    s.end,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := svc.Copy(ctx, source.ScheduleID, &dto.CopyScheduleRequest{
		TargetWeekStart: "2024-06-17",
	}, "acc-1")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}

	if result.CreatedCount != 3 || result.FailedCount != 0 {
		t.Fatalf("created=%d failed=%d, want 3/0", result.CreatedCount, result.FailedCount)
	}

	// day offsets preserved: Tuesday source shift lands on target Tuesday
	detail, err := svc.Get(ctx, result.Schedule.ID)
	if err != nil {
		t.Fatalf("get target: %v", err)
	}
	if len(detail.Days[1].Shifts) != 1 || detail.Days[1].Date != "2024-06-18" {
		t.Errorf("tuesday of target week: %+v", detail.Days[1])
	}
	if len(detail.Days[6].Shifts) != 1 {
		t.Errorf("sunday of target week: %+v", detail.Days[6])
	}

	// copying again reports every shift as a duplicate failure
	again, err := svc.Copy(ctx, source.ScheduleID, &dto.CopyScheduleRequest{
		TargetWeekStart: "2024-06-17",
	}, "acc-1")
	if err != nil {
		t.Fatalf("second copy: %v", err)
	}
	if again.CreatedCount != 0 || again.FailedCount != 3 {
		t.Fatalf("second copy created=%d failed=%d, want 0/3", again.CreatedCount, again.FailedCount)
	}
	for _, failure := range again.Failures {
		if failure.Reason != ErrDuplicateShift.Error() {
			t.Errorf("failure reason = %q", failure.Reason)
		}
	}
}

func TestScheduleCopyPartialFailure(t *testing.T) {
	svc, shiftSvc, repo := newScheduleFixture(t)
	ctx := context.Background()

	source := addSchedule(repo, "2024-06-03")
	alice := addEmployee(repo, "Alice", "Martin", true)
	carol := addEmployee(repo, "Carol", "Petit", true)

	for _, s := range []struct{ employee, date string }{
		{alice.EmployeeID, "2024-06-04"},
		{carol.EmployeeID, "2024-06-05"},
	} {
		if _, err := shiftSvc.Create(ctx, source.ScheduleID, &dto.CreateShiftRequest{
			EmployeeID: s.employee,
			Date:       s.date,
			StartTime:  "11:30",
			EndTime:    "14:30",
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// deactivate carol between source and copy
	carol.IsActive = false
	if err := repo.Employee.Update(ctx, carol); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	result, err := svc.Copy(ctx, source.ScheduleID, &dto.CopyScheduleRequest{
		TargetWeekStart: "2024-06-10",
	}, "acc-1")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}

	if result.CreatedCount != 1 || result.FailedCount != 1 {
		t.Fatalf("created=%d failed=%d, want 1/1", result.CreatedCount, result.FailedCount)
	}
	failure := result.Failures[0]
	if failure.EmployeeID != carol.EmployeeID {
		t.Errorf("failed employee = %s, want %s", failure.EmployeeID, carol.EmployeeID)
	}
	if failure.Reason != ErrInactiveEmployee.Error() {
		t.Errorf("failure reason = %q", failure.Reason)
	}

	// non-Monday target is rejected outright
	if _, err := svc.Copy(ctx, source.ScheduleID, &dto.CopyScheduleRequest{
		TargetWeekStart: "2024-06-11",
	}, "acc-1"); !errors.Is(err, ErrInvalidWeekAnchor) {
		t.Errorf("non-Monday target: got %v", err)
	}
}

func TestScheduleUpdateNotesAndDelete(t *testing.T) {
	svc, _, repo := newScheduleFixture(t)
	ctx := context.Background()

	schedule := addSchedule(repo, "2024-06-03")

	notes := "staff meeting Friday"
	updated, err := svc.UpdateNotes(ctx, schedule.ScheduleID, &dto.UpdateScheduleRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if updated.Notes != notes {
		t.Errorf("notes = %q", updated.Notes)
	}

	if err := svc.Delete(ctx, schedule.ScheduleID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, schedule.ScheduleID); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("get after delete: got %v", err)
	}

	// the week slot is free again
	if _, err := svc.Create(ctx, &dto.CreateScheduleRequest{WeekStart: "2024-06-03"}, "acc-1"); err != nil {
		t.Fatalf("recreate week: %v", err)
	}
}
