package models

import "time"

// LedgerEntry is a single money transaction. Amount is positive for income
// and negative for expenses, in the smallest currency unit.
type LedgerEntry struct {
	EntryID     int64     `json:"entry_id"`
	ChatID      int64     `json:"chat_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// LedgerReport summarizes one calendar month of entries.
type LedgerReport struct {
	Year    int            `json:"year"`
	Month   time.Month     `json:"month"`
	Total   int64          `json:"total"`
	Income  int64          `json:"income"`
	Expense int64          `json:"expense"`
	Entries []*LedgerEntry `json:"entries"`
}
