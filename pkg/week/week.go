// Package week provides Monday-anchored week arithmetic for schedules.
// All functions are pure; results are truncated to midnight in the input's
// location so dates compare cleanly.
package week

import "time"

// DaysPerWeek is the length of a schedule week (Monday through Sunday).
const DaysPerWeek = 7

// Truncate drops the time-of-day component.
func Truncate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// MondayOf returns the Monday of the week containing d.
// Weekday index: Monday=0 .. Sunday=6.
func MondayOf(d time.Time) time.Time {
	d = Truncate(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// End returns the Sunday closing the week opened by monday.
func End(monday time.Time) time.Time {
	return Truncate(monday).AddDate(0, 0, DaysPerWeek-1)
}

// Days enumerates the seven dates of the week, Monday first.
func Days(monday time.Time) []time.Time {
	monday = Truncate(monday)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// IsMonday reports whether d falls on a Monday.
func IsMonday(d time.Time) bool {
	return d.Weekday() == time.Monday
}

// Contains reports whether d falls within the week opened by monday.
func Contains(monday, d time.Time) bool {
	monday = Truncate(monday)
	d = Truncate(d)
	return !d.Before(monday) && !d.After(End(monday))
}
