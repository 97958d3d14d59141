package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fikrihandy/superbot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handlers) handleReminderOnce(ctx context.Context, msg *tgbotapi.Message) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) < 3 {
		h.sendMessage(msg.Chat.ID, "Format: /reminder_once <YYYY-MM-DD> <HH:MM> <message>")
		return
	}

	timeOfDay, err := models.ParseTimeOfDay(fields[1])
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Wrong format. Example: /reminder_once 2025-08-19 14:30 Meeting")
		return
	}

	now := h.clock.Now()
	runAt, err := time.ParseInLocation("2006-01-02 15:04", fields[0]+" "+timeOfDay, now.Location())
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Wrong format. Example: /reminder_once 2025-08-19 14:30 Meeting")
		return
	}

	message := strings.Join(fields[2:], " ")
	reminder, err := h.repos.Reminder.CreateOnce(ctx, msg.Chat.ID, runAt, message)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			h.sendMessage(msg.Chat.ID, "That time has already passed. Pick a time in the future.")
			return
		}
		h.sendMessage(msg.Chat.ID, "Failed to create the reminder, please try again later.")
		return
	}

	h.notifier.Notify()
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("⏰ One-time reminder created (ID %d) for %s.",
		reminder.ReminderID, runAt.Format("2006-01-02 15:04")))
}

func (h *Handlers) handleReminderDaily(ctx context.Context, msg *tgbotapi.Message) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) < 2 {
		h.sendMessage(msg.Chat.ID, "Format: /reminder_daily <HH:MM> <message>")
		return
	}

	message := strings.Join(fields[1:], " ")
	reminder, err := h.repos.Reminder.CreateDaily(ctx, msg.Chat.ID, fields[0], message)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			h.sendMessage(msg.Chat.ID, "Invalid time. Example: 06:30")
			return
		}
		h.sendMessage(msg.Chat.ID, "Failed to create the reminder, please try again later.")
		return
	}

	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🔁 Daily reminder created (ID %d) at %s.",
		reminder.ReminderID, reminder.TimeOfDay))
}

func (h *Handlers) handleReminderWeekly(ctx context.Context, msg *tgbotapi.Message) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) < 3 {
		h.sendMessage(msg.Chat.ID, "Format: /reminder_weekly <Monday..Sunday> <HH:MM> <message>")
		return
	}

	weekday, err := models.ParseWeekday(fields[0])
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Invalid day. Use: Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday")
		return
	}

	message := strings.Join(fields[2:], " ")
	reminder, err := h.repos.Reminder.CreateWeekly(ctx, msg.Chat.ID, weekday, fields[1], message)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			h.sendMessage(msg.Chat.ID, "Invalid time. Example: 16:00")
			return
		}
		h.sendMessage(msg.Chat.ID, "Failed to create the reminder, please try again later.")
		return
	}

	h.sendMessage(msg.Chat.ID, fmt.Sprintf("🗓️ Weekly reminder created (ID %d) every %s at %s.",
		reminder.ReminderID, models.WeekdayName(weekday), reminder.TimeOfDay))
}

func (h *Handlers) handleReminderList(ctx context.Context, msg *tgbotapi.Message) {
	reminders, err := h.repos.Reminder.ListActive(ctx, msg.Chat.ID)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to load reminders, please try again later.")
		return
	}

	if len(reminders) == 0 {
		h.sendMessage(msg.Chat.ID, "No active reminders.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 *Active reminders:*\n")
	for _, r := range reminders {
		switch r.Kind {
		case models.ReminderOnce:
			sb.WriteString(fmt.Sprintf("%d. [Once] %s – %s\n", r.ReminderID, r.RunAt.Format("2006-01-02 15:04"), r.Message))
		case models.ReminderDaily:
			sb.WriteString(fmt.Sprintf("%d. [Daily] %s – %s\n", r.ReminderID, r.TimeOfDay, r.Message))
		case models.ReminderWeekly:
			sb.WriteString(fmt.Sprintf("%d. [Weekly] %s %s – %s\n", r.ReminderID, models.WeekdayName(*r.Weekday), r.TimeOfDay, r.Message))
		}
	}
	h.sendMessage(msg.Chat.ID, sb.String())
}

func (h *Handlers) handleReminderDel(ctx context.Context, msg *tgbotapi.Message) {
	reminderID, err := strconv.ParseInt(strings.TrimSpace(msg.CommandArguments()), 10, 64)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Example: /reminder_del 7")
		return
	}

	deactivated, err := h.repos.Reminder.Deactivate(ctx, reminderID, msg.Chat.ID)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to disable the reminder, please try again later.")
		return
	}
	if !deactivated {
		h.sendMessage(msg.Chat.ID, "Reminder not found.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Reminder %d disabled.", reminderID))
}
