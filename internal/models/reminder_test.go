package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"06:00", "06:00"},
		{"6:30", "06:30"},
		{"23:59", "23:59"},
		{"0:05", "00:05"},
		{" 16:00 ", "16:00"},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, in := range []string{"25:00", "24:00", "12:60", "12:5", "noon", "12", "12:00:00", ""} {
		got, err := ParseTimeOfDay(in)
		if err == nil {
			t.Errorf("ParseTimeOfDay(%q) = %q, expected error", in, got)
			continue
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("ParseTimeOfDay(%q) error is %T, want *ValidationError", in, err)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"Monday", 0},
		{"monday", 0},
		{"mon", 0},
		{"FRIDAY", 4},
		{"fri", 4},
		{"Sunday", 6},
		{" sat ", 5},
	}
	for _, c := range cases {
		got, err := ParseWeekday(c.in)
		if err != nil {
			t.Errorf("ParseWeekday(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseWeekday(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, in := range []string{"Funday", "mo", "", "8", "Jumat"} {
		if _, err := ParseWeekday(in); err == nil {
			t.Errorf("ParseWeekday(%q) expected error", in)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(4); got != "Friday" {
		t.Errorf("WeekdayName(4) = %q, want Friday", got)
	}
	if got := WeekdayName(7); got != "?" {
		t.Errorf("WeekdayName(7) = %q, want ?", got)
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2024-01-05 was a Friday, 2024-01-07 a Sunday
	friday := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(friday); got != 4 {
		t.Errorf("WeekdayIndex(Friday) = %d, want 4", got)
	}
	sunday := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(sunday); got != 6 {
		t.Errorf("WeekdayIndex(Sunday) = %d, want 6", got)
	}
	monday := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	if got := WeekdayIndex(monday); got != 0 {
		t.Errorf("WeekdayIndex(Monday) = %d, want 0", got)
	}
}
