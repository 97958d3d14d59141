package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ReminderKind string

const (
	ReminderOnce   ReminderKind = "once"
	ReminderDaily  ReminderKind = "daily"
	ReminderWeekly ReminderKind = "weekly"
)

// Reminder is one of three variants discriminated by Kind:
//   - once:   RunAt set, fires once then deactivates
//   - daily:  TimeOfDay set, fires every day at that wall-clock time
//   - weekly: TimeOfDay and Weekday set, fires every week
//
// Rows are only built through the reminder repository's typed create
// operations, so the pointer fields of the other variants stay nil.
// Active only ever flips true -> false; rows are never deleted.
type Reminder struct {
	ReminderID int64        `json:"reminder_id"`
	ChatID     int64        `json:"chat_id"`
	Kind       ReminderKind `json:"kind"`
	Message    string       `json:"message"`
	RunAt      *time.Time   `json:"run_at,omitempty"`
	TimeOfDay  string       `json:"time_of_day,omitempty"` // "HH:MM", 24h
	Weekday    *int         `json:"weekday,omitempty"`     // 0=Monday..6=Sunday
	Active     bool         `json:"active"`
	CreatedAt  time.Time    `json:"created_at"`
}

var timeOfDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay validates an "HH:MM" string and returns it zero-padded.
func ParseTimeOfDay(s string) (string, error) {
	m := timeOfDayRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", &ValidationError{Field: "time", Reason: "expected HH:MM, got " + strings.TrimSpace(s)}
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh > 23 {
		return "", &ValidationError{Field: "time", Reason: fmt.Sprintf("hour %d out of range", hh)}
	}
	if mm > 59 {
		return "", &ValidationError{Field: "time", Reason: fmt.Sprintf("minute %d out of range", mm)}
	}
	return fmt.Sprintf("%02d:%02d", hh, mm), nil
}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseWeekday maps an English weekday name (full or three-letter) to its
// Monday-based index.
func ParseWeekday(name string) (int, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, full := range weekdayNames {
		lower := strings.ToLower(full)
		if n == lower || n == lower[:3] {
			return i, nil
		}
	}
	return 0, &ValidationError{Field: "weekday", Reason: "unrecognized day name " + strings.TrimSpace(name)}
}

// WeekdayName returns the English name for a Monday-based weekday index.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return "?"
	}
	return weekdayNames[weekday]
}

// WeekdayIndex converts Go's Sunday-based time.Weekday to the Monday-based
// index stored on weekly reminders.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
