package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fikrihandy/superbot/internal/clock"
	"github.com/fikrihandy/superbot/internal/database"
	"github.com/fikrihandy/superbot/internal/models"
)

// ReminderRepository owns the reminders table. Each variant has its own
// create operation so a row can never mix fields of two kinds. Deactivation
// is the only mutation: active flips true -> false and never back.
type ReminderRepository struct {
	db    *database.DB
	clock clock.Clock
}

func NewReminderRepository(db *database.DB, clk clock.Clock) *ReminderRepository {
	return &ReminderRepository{db: db, clock: clk}
}

const reminderColumns = `reminder_id, chat_id, kind, message, run_at, time_of_day, weekday, active, created_at`

// CreateOnce stores a one-shot reminder. The run time must be strictly in
// the future at the creation instant; it is not re-validated afterwards.
func (r *ReminderRepository) CreateOnce(ctx context.Context, chatID int64, runAt time.Time, message string) (*models.Reminder, error) {
	if !runAt.After(r.clock.Now()) {
		return nil, &models.ValidationError{Field: "run_at", Reason: "must be in the future"}
	}

	reminder := &models.Reminder{
		ChatID:  chatID,
		Kind:    models.ReminderOnce,
		Message: message,
		RunAt:   &runAt,
		Active:  true,
	}
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (chat_id, kind, message, run_at) VALUES ($1, $2, $3, $4)
		 RETURNING reminder_id, created_at`,
		chatID, reminder.Kind, message, runAt,
	).Scan(&reminder.ReminderID, &reminder.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// CreateDaily stores a reminder firing every day at the given "HH:MM".
func (r *ReminderRepository) CreateDaily(ctx context.Context, chatID int64, timeOfDay, message string) (*models.Reminder, error) {
	tod, err := models.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		ChatID:    chatID,
		Kind:      models.ReminderDaily,
		Message:   message,
		TimeOfDay: tod,
		Active:    true,
	}
	err = r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (chat_id, kind, message, time_of_day) VALUES ($1, $2, $3, $4)
		 RETURNING reminder_id, created_at`,
		chatID, reminder.Kind, message, tod,
	).Scan(&reminder.ReminderID, &reminder.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// CreateWeekly stores a reminder firing every week on weekday (0=Monday) at
// the given "HH:MM".
func (r *ReminderRepository) CreateWeekly(ctx context.Context, chatID int64, weekday int, timeOfDay, message string) (*models.Reminder, error) {
	if weekday < 0 || weekday > 6 {
		return nil, &models.ValidationError{Field: "weekday", Reason: "must be between 0 and 6"}
	}
	tod, err := models.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		ChatID:    chatID,
		Kind:      models.ReminderWeekly,
		Message:   message,
		TimeOfDay: tod,
		Weekday:   &weekday,
		Active:    true,
	}
	err = r.db.Pool.QueryRow(ctx,
		`INSERT INTO reminders (chat_id, kind, message, time_of_day, weekday) VALUES ($1, $2, $3, $4, $5)
		 RETURNING reminder_id, created_at`,
		chatID, reminder.Kind, message, tod, weekday,
	).Scan(&reminder.ReminderID, &reminder.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// ListActive returns the chat's active reminders, newest-created first.
func (r *ReminderRepository) ListActive(ctx context.Context, chatID int64) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+reminderColumns+`
		 FROM reminders WHERE chat_id = $1 AND active
		 ORDER BY reminder_id DESC`,
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// Deactivate flips the reminder off and reports whether a matching active
// row owned by the chat existed.
func (r *ReminderRepository) Deactivate(ctx context.Context, reminderID, chatID int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE reminders SET active = FALSE
		 WHERE reminder_id = $1 AND chat_id = $2 AND active`,
		reminderID, chatID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DueOnce returns active one-shot reminders whose run time has arrived.
func (r *ReminderRepository) DueOnce(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+reminderColumns+`
		 FROM reminders WHERE kind = 'once' AND active AND run_at <= $1
		 ORDER BY reminder_id`,
		now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// DueDaily returns active daily reminders matching now's wall-clock minute.
func (r *ReminderRepository) DueDaily(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+reminderColumns+`
		 FROM reminders WHERE kind = 'daily' AND active AND time_of_day = $1
		 ORDER BY reminder_id`,
		now.Format("15:04"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// DueWeekly returns active weekly reminders matching now's weekday and
// wall-clock minute.
func (r *ReminderRepository) DueWeekly(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+reminderColumns+`
		 FROM reminders WHERE kind = 'weekly' AND active AND weekday = $1 AND time_of_day = $2
		 ORDER BY reminder_id`,
		models.WeekdayIndex(now), now.Format("15:04"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// BatchDeactivate flips off all listed reminders in one statement, so a
// partial write can never leave some of them re-eligible.
func (r *ReminderRepository) BatchDeactivate(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE reminders SET active = FALSE WHERE reminder_id = ANY($1)`,
		ids,
	)
	return err
}

func scanReminders(rows pgx.Rows) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	for rows.Next() {
		reminder := &models.Reminder{}
		var timeOfDay *string
		if err := rows.Scan(&reminder.ReminderID, &reminder.ChatID, &reminder.Kind, &reminder.Message,
			&reminder.RunAt, &timeOfDay, &reminder.Weekday, &reminder.Active, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		if timeOfDay != nil {
			reminder.TimeOfDay = *timeOfDay
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}
