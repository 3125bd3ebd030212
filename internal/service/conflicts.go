package service

import (
	"fmt"
	"time"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/pkg/week"
)

// ConflictError carries the set of shifts a candidate overlaps with.
// It matches ErrShiftConflict under errors.Is.
type ConflictError struct {
	Conflicts []model.Shift
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("shift overlaps %d existing shift(s)", len(e.Conflicts))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrShiftConflict
}

// Shifts returns the conflicting shifts in response form, for error payloads.
func (e *ConflictError) Shifts() []dto.ShiftResponse {
	return toShiftResponses(e.Conflicts)
}

// Overlaps reports whether the half-open intervals [start1,end1) and
// [start2,end2) intersect. Touching endpoints do not overlap, so
// back-to-back shifts are legal. Comparison is numeric: unpadded request
// values ("9:00") and TIME column values ("09:00:00") order correctly,
// where a lexical comparison would not.
func Overlaps(start1, end1, start2, end2 string) bool {
	s1, e1 := model.MinutesOf(start1), model.MinutesOf(end1)
	s2, e2 := model.MinutesOf(start2), model.MinutesOf(end2)
	return !(e1 <= s2 || s1 >= e2)
}

// FindConflicts filters an (employee, date) shift snapshot down to the
// shifts whose window intersects [startTime, endTime). excludeID removes a
// shift from consideration, used when re-validating an edited shift
// against itself.
func FindConflicts(existing []model.Shift, startTime, endTime, excludeID string) []model.Shift {
	var conflicts []model.Shift
	for _, shift := range existing {
		if excludeID != "" && shift.ShiftID == excludeID {
			continue
		}
		if Overlaps(startTime, endTime, shift.StartTime, shift.EndTime) {
			conflicts = append(conflicts, shift)
		}
	}
	return conflicts
}

// validateShiftCandidate runs the full shift validation against an in-memory
// snapshot, in order: time range, employee active, date inside the owning
// week, no overlap. It touches no storage; callers supply the current
// (employee, date) shift set.
func validateShiftCandidate(
	schedule *model.WeeklySchedule,
	employee *model.Employee,
	date time.Time,
	startTime, endTime string,
	existing []model.Shift,
	excludeID string,
) error {
	if model.MinutesOf(startTime) >= model.MinutesOf(endTime) {
		return ErrInvalidTimeRange
	}
	if !employee.IsActive {
		return ErrInactiveEmployee
	}
	if !week.Contains(schedule.WeekStart, date) {
		return ErrDateOutsideWeek
	}
	if conflicts := FindConflicts(existing, startTime, endTime, excludeID); len(conflicts) > 0 {
		return &ConflictError{Conflicts: conflicts}
	}
	return nil
}
