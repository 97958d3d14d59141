package handlers

import (
	"context"
	"log"

	"github.com/fikrihandy/superbot/internal/clock"
	"github.com/fikrihandy/superbot/internal/repository"
	"github.com/fikrihandy/superbot/internal/weather"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Repositories struct {
	User     *repository.UserRepository
	Note     *repository.NoteRepository
	Ledger   *repository.LedgerRepository
	Reminder *repository.ReminderRepository
}

// Notifier pokes the scheduler for an immediate check after a reminder is
// created.
type Notifier interface {
	Notify()
}

type Handlers struct {
	api      *tgbotapi.BotAPI
	repos    *Repositories
	weather  *weather.Client
	clock    clock.Clock
	notifier Notifier
}

func New(api *tgbotapi.BotAPI, repos *Repositories, weatherClient *weather.Client, clk clock.Clock, notifier Notifier) *Handlers {
	return &Handlers{
		api:      api,
		repos:    repos,
		weather:  weatherClient,
		clock:    clk,
		notifier: notifier,
	}
}

func (h *Handlers) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	// Ensure user exists
	if err := h.repos.User.Ensure(ctx, msg.Chat.ID); err != nil {
		log.Printf("Failed to register chat %d: %v", msg.Chat.ID, err)
		return
	}

	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "help":
		h.handleHelp(ctx, msg)
	case "note_add":
		h.handleNoteAdd(ctx, msg)
	case "note_list":
		h.handleNoteList(ctx, msg)
	case "note_del":
		h.handleNoteDel(ctx, msg)
	case "money_add":
		h.handleMoneyAdd(ctx, msg)
	case "money_balance":
		h.handleMoneyBalance(ctx, msg)
	case "money_report":
		h.handleMoneyReport(ctx, msg)
	case "weather":
		h.handleWeather(ctx, msg)
	case "reminder_help":
		h.sendMessage(msg.Chat.ID, reminderHelpText)
	case "reminder_once":
		h.handleReminderOnce(ctx, msg)
	case "reminder_daily":
		h.handleReminderDaily(ctx, msg)
	case "reminder_weekly":
		h.handleReminderWeekly(ctx, msg)
	case "reminder_list":
		h.handleReminderList(ctx, msg)
	case "reminder_del":
		h.handleReminderDel(ctx, msg)
	default:
		h.sendMessage(msg.Chat.ID, "Unknown command. Use /help to see the feature list.")
	}
}

// HandleMessage answers non-command text with a hint.
func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, "Unknown command. Use /help to see the feature list.")
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

const startText = `Hello! 🤖 *Super Bot*

Features & commands:
• /reminder_help – reminder help
• /note_add <text> – add a note
• /note_list – list your notes
• /note_del <id> – delete a note
• /money_add <+/-amount> <description> – record a transaction
• /money_balance – balance & recent entries
• /money_report [month year] – report for the current or a given month
• /weather <city> – current weather`

const reminderHelpText = `📅 *Reminder Help*
Format:
• /reminder_once <YYYY-MM-DD> <HH:MM> <message>
  Example: /reminder_once 2025-08-19 14:30 PM meeting
• /reminder_daily <HH:MM> <message>
  Example: /reminder_daily 06:00 Morning run
• /reminder_weekly <Monday..Sunday> <HH:MM> <message>
  Example: /reminder_weekly Friday 16:00 Weekly review
• /reminder_list – list active reminders
• /reminder_del <id> – disable a reminder`

func (h *Handlers) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, startText)
}

func (h *Handlers) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, startText+"\n\n"+reminderHelpText)
}
