package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fikrihandy/superbot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handlers) handleMoneyAdd(ctx context.Context, msg *tgbotapi.Message) {
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) < 2 {
		h.sendMessage(msg.Chat.ID, "Format: /money_add <+/-amount> <description>\nExample: /money_add -15000 Coffee")
		return
	}

	amount, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Amount must be a number (positive or negative).")
		return
	}

	entry := &models.LedgerEntry{
		ChatID:      msg.Chat.ID,
		Amount:      amount,
		Description: strings.Join(fields[1:], " "),
	}
	if err := h.repos.Ledger.Create(ctx, entry); err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to record the transaction, please try again later.")
		return
	}
	h.sendMessage(msg.Chat.ID, "✅ Transaction recorded.")
}

func (h *Handlers) handleMoneyBalance(ctx context.Context, msg *tgbotapi.Message) {
	balance, err := h.repos.Ledger.Balance(ctx, msg.Chat.ID)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to load the balance, please try again later.")
		return
	}

	recent, err := h.repos.Ledger.Recent(ctx, msg.Chat.ID, 10)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to load recent entries, please try again later.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 *Balance:* %d\n\n*Recent:*\n", balance))
	if len(recent) == 0 {
		sb.WriteString("-")
	}
	for _, entry := range recent {
		sb.WriteString(fmt.Sprintf("%s: %d (%s)\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Amount, entry.Description))
	}
	h.sendMessage(msg.Chat.ID, sb.String())
}

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

func (h *Handlers) handleMoneyReport(ctx context.Context, msg *tgbotapi.Message) {
	now := h.clock.Now()
	year := now.Year()
	month := now.Month()

	// /money_report 08 2025  or  /money_report August 2025
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) >= 2 {
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= 1 && n <= 12 {
			month = time.Month(n)
		} else if m, ok := monthNames[strings.ToLower(fields[0])]; ok {
			month = m
		}
		if y, err := strconv.Atoi(fields[1]); err == nil {
			year = y
		}
	}

	report, err := h.repos.Ledger.MonthlyReport(ctx, msg.Chat.ID, year, month, now.Location())
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to build the report, please try again later.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Report %02d/%d\n", int(report.Month), report.Year))
	sb.WriteString(fmt.Sprintf("Total: %d\nIncome: %d\nExpenses: %d\n\n", report.Total, report.Income, report.Expense))
	if len(report.Entries) == 0 {
		sb.WriteString("-")
	}
	for _, entry := range report.Entries {
		sb.WriteString(fmt.Sprintf("%s: %d (%s)\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.Amount, entry.Description))
	}
	h.sendMessage(msg.Chat.ID, sb.String())
}
