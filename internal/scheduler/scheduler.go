package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fikrihandy/superbot/internal/clock"
	"github.com/fikrihandy/superbot/internal/models"
)

// ReminderStore is the slice of the reminder repository the scheduler reads
// and writes.
type ReminderStore interface {
	DueOnce(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	DueDaily(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	DueWeekly(ctx context.Context, now time.Time) ([]*models.Reminder, error)
	BatchDeactivate(ctx context.Context, ids []int64) error
}

// GuardStore tracks which recurring-pass minutes have been evaluated.
type GuardStore interface {
	Contains(ctx context.Context, key string) (bool, error)
	Add(ctx context.Context, key string, at time.Time) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sender delivers one message to one chat. Failures are never retried for
// the same slot.
type Sender interface {
	Send(chatID int64, text string) error
}

const (
	defaultTick     = 30 * time.Second
	startupDelay    = 2 * time.Second
	guardTimeLayout = "2006-01-02 15:04"
	guardRetention  = 48 * time.Hour
	pruneInterval   = time.Hour
)

// Scheduler polls for due reminders on a fixed cadence. The tick is shorter
// than the one-minute resolution of daily/weekly matching, so recurring
// passes are deduplicated through the guard store; one-shot reminders guard
// themselves by deactivating.
type Scheduler struct {
	sink      Sender
	reminders ReminderStore
	guards    GuardStore
	clock     clock.Clock
	tick      time.Duration
	notifyCh  chan struct{}
	lastPrune time.Time
}

func New(sink Sender, reminders ReminderStore, guards GuardStore, clk clock.Clock, tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = defaultTick
	}
	return &Scheduler{
		sink:      sink,
		reminders: reminders,
		guards:    guards,
		clock:     clk,
		tick:      tick,
		notifyCh:  make(chan struct{}, 1),
	}
}

// Notify triggers an immediate check. Non-blocking if a check is already pending.
func (s *Scheduler) Notify() {
	select {
	case s.notifyCh <- struct{}{}:
	default:
		// Channel already has a pending notification, skip
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	log.Println("Scheduler started")
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	// Wait a bit for migrations to complete before first check
	select {
	case <-ctx.Done():
		return
	case <-time.After(startupDelay):
	}

	// Run first check
	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			return
		case <-ticker.C:
			s.check(ctx)
		case <-s.notifyCh:
			s.check(ctx)
		}
	}
}

// check runs one tick. The three passes are independent: a store failure
// aborts only its own pass and the next tick retries naturally.
func (s *Scheduler) check(ctx context.Context) {
	now := s.clock.Now()
	s.runOncePass(ctx, now)
	s.runRecurringPass(ctx, now, "daily", s.reminders.DueDaily)
	s.runRecurringPass(ctx, now, "weekly", s.reminders.DueWeekly)
	s.pruneGuards(ctx, now)
}

// runOncePass delivers every one-shot reminder whose time has arrived and
// deactivates all of them in one batch. Deactivation happens whether or not
// delivery succeeded: the slot fires at most once, delivered or not.
func (s *Scheduler) runOncePass(ctx context.Context, now time.Time) {
	reminders, err := s.reminders.DueOnce(ctx, now)
	if err != nil {
		log.Printf("Failed to get due one-shot reminders: %v", err)
		return
	}

	var fired []int64
	for _, reminder := range reminders {
		if err := s.sink.Send(reminder.ChatID, "⏰ Reminder: "+reminder.Message); err != nil {
			log.Printf("Failed to send reminder %d to chat %d: %v", reminder.ReminderID, reminder.ChatID, err)
		}
		fired = append(fired, reminder.ReminderID)
	}

	if len(fired) == 0 {
		return
	}
	if err := s.reminders.BatchDeactivate(ctx, fired); err != nil {
		log.Printf("Failed to deactivate %d fired reminders: %v", len(fired), err)
	}
}

// runRecurringPass evaluates one recurring class for the current wall-clock
// minute. The guard key is checked first, so a second tick landing in the
// same minute skips the pass entirely. The key is inserted after delivery;
// if the insert fails the minute legitimately re-fires on the next tick.
func (s *Scheduler) runRecurringPass(ctx context.Context, now time.Time, class string, due func(context.Context, time.Time) ([]*models.Reminder, error)) {
	key := class + "-" + now.Format(guardTimeLayout)

	evaluated, err := s.guards.Contains(ctx, key)
	if err != nil {
		log.Printf("Failed to check guard key %s: %v", key, err)
		return
	}
	if evaluated {
		return
	}

	reminders, err := due(ctx, now)
	if err != nil {
		log.Printf("Failed to get due %s reminders: %v", class, err)
		return
	}

	for _, reminder := range reminders {
		if err := s.sink.Send(reminder.ChatID, "⏰ Reminder: "+reminder.Message); err != nil {
			log.Printf("Failed to send reminder %d to chat %d: %v", reminder.ReminderID, reminder.ChatID, err)
		}
	}

	if err := s.guards.Add(ctx, key, now); err != nil {
		log.Printf("Failed to record guard key %s: %v", key, err)
	}
}

// pruneGuards drops guard rows past the retention window, at most once per
// hour. Correctness never depends on the prune; a failure only logs.
func (s *Scheduler) pruneGuards(ctx context.Context, now time.Time) {
	if now.Sub(s.lastPrune) < pruneInterval {
		return
	}
	s.lastPrune = now

	removed, err := s.guards.DeleteOlderThan(ctx, now.Add(-guardRetention))
	if err != nil {
		log.Printf("Failed to prune guard keys: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Pruned %d expired guard keys", removed)
	}
}
