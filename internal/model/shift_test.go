package model

import "testing"

func TestClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11:30", "11:30"},
		{"11:30:00", "11:30"},
		{"09:05:59", "09:05"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clock(tt.in); got != tt.want {
			t.Errorf("Clock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMinutesOf(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"11:30", 690},
		{"23:59", 1439},
		{"14:30:00", 870},
		{"9:00", 540},
		{"9:00:00", 540},
	}
	for _, tt := range tests {
		if got := MinutesOf(tt.in); got != tt.want {
			t.Errorf("MinutesOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestShiftDuration(t *testing.T) {
	tests := []struct {
		start, end string
		minutes    int
		display    string
	}{
		{"11:30", "14:30", 180, "3h"},
		{"11:30", "19:00", 450, "7h30"},
		{"09:00", "09:05", 5, "0h05"},
		{"00:00", "23:59", 1439, "23h59"},
	}
	for _, tt := range tests {
		s := &Shift{StartTime: tt.start, EndTime: tt.end}
		if got := s.DurationMinutes(); got != tt.minutes {
			t.Errorf("%s-%s minutes = %d, want %d", tt.start, tt.end, got, tt.minutes)
		}
		if got := s.DurationDisplay(); got != tt.display {
			t.Errorf("%s-%s display = %q, want %q", tt.start, tt.end, got, tt.display)
		}
	}
}

func TestEmployeeModeConsistent(t *testing.T) {
	accountID := "acc-1"

	internal := &Employee{IsExternal: false, AccountID: &accountID}
	if !internal.ModeConsistent() {
		t.Error("internal with account should be consistent")
	}

	external := &Employee{IsExternal: true}
	if !external.ModeConsistent() {
		t.Error("external without account should be consistent")
	}

	orphan := &Employee{IsExternal: false}
	if orphan.ModeConsistent() {
		t.Error("internal without account must be inconsistent")
	}

	linked := &Employee{IsExternal: true, AccountID: &accountID}
	if linked.ModeConsistent() {
		t.Error("external with account must be inconsistent")
	}
}
