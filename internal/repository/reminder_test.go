package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fikrihandy/superbot/internal/models"
)

// fixedClock pins "now" for validation tests. The cases below all fail
// validation, which happens before any database access, so the repository
// is constructed without a connection.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func TestCreateOnce_RejectsPastRunAt(t *testing.T) {
	now := time.Date(2025, 8, 19, 14, 30, 0, 0, time.UTC)
	repo := NewReminderRepository(nil, &fixedClock{now: now})
	ctx := context.Background()

	cases := map[string]time.Time{
		"in the past":  now.Add(-time.Minute),
		"equal to now": now,
	}
	for name, runAt := range cases {
		_, err := repo.CreateOnce(ctx, 100, runAt, "meeting")
		if err == nil {
			t.Errorf("CreateOnce with run_at %s: expected error", name)
			continue
		}
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("CreateOnce with run_at %s: error is %T, want *ValidationError", name, err)
		}
	}
}

func TestCreateDaily_RejectsMalformedTimeOfDay(t *testing.T) {
	repo := NewReminderRepository(nil, &fixedClock{now: time.Now()})
	ctx := context.Background()

	for _, timeOfDay := range []string{"25:00", "12:60", "six"} {
		_, err := repo.CreateDaily(ctx, 100, timeOfDay, "wake up")
		if err == nil {
			t.Errorf("CreateDaily(%q): expected error", timeOfDay)
			continue
		}
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("CreateDaily(%q): error is %T, want *ValidationError", timeOfDay, err)
		}
	}
}

func TestCreateWeekly_RejectsInvalidInput(t *testing.T) {
	repo := NewReminderRepository(nil, &fixedClock{now: time.Now()})
	ctx := context.Background()

	if _, err := repo.CreateWeekly(ctx, 100, -1, "16:00", "review"); err == nil {
		t.Error("CreateWeekly with weekday -1: expected error")
	}
	if _, err := repo.CreateWeekly(ctx, 100, 7, "16:00", "review"); err == nil {
		t.Error("CreateWeekly with weekday 7: expected error")
	}
	if _, err := repo.CreateWeekly(ctx, 100, 4, "24:30", "review"); err == nil {
		t.Error("CreateWeekly with time 24:30: expected error")
	}
}
