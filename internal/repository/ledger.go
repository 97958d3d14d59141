package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fikrihandy/superbot/internal/database"
	"github.com/fikrihandy/superbot/internal/models"
)

type LedgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO ledger (chat_id, amount, description) VALUES ($1, $2, $3)
		 RETURNING entry_id, created_at`,
		entry.ChatID, entry.Amount, entry.Description,
	).Scan(&entry.EntryID, &entry.CreatedAt)
}

func (r *LedgerRepository) Balance(ctx context.Context, chatID int64) (int64, error) {
	var balance int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger WHERE chat_id = $1`,
		chatID,
	).Scan(&balance)
	return balance, err
}

func (r *LedgerRepository) Recent(ctx context.Context, chatID int64, limit int) ([]*models.LedgerEntry, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT entry_id, chat_id, amount, description, created_at
		 FROM ledger WHERE chat_id = $1 ORDER BY entry_id DESC LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

// MonthlyReport returns all entries of the given calendar month in the
// supplied location, oldest first, plus income/expense totals.
func (r *LedgerRepository) MonthlyReport(ctx context.Context, chatID int64, year int, month time.Month, loc *time.Location) (*models.LedgerReport, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	rows, err := r.db.Pool.Query(ctx,
		`SELECT entry_id, chat_id, amount, description, created_at
		 FROM ledger WHERE chat_id = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY entry_id`,
		chatID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := scanLedgerEntries(rows)
	if err != nil {
		return nil, err
	}

	report := &models.LedgerReport{Year: year, Month: month, Entries: entries}
	for _, e := range entries {
		report.Total += e.Amount
		if e.Amount > 0 {
			report.Income += e.Amount
		} else {
			report.Expense += -e.Amount
		}
	}
	return report, nil
}

func scanLedgerEntries(rows pgx.Rows) ([]*models.LedgerEntry, error) {
	var entries []*models.LedgerEntry
	for rows.Next() {
		entry := &models.LedgerEntry{}
		if err := rows.Scan(&entry.EntryID, &entry.ChatID, &entry.Amount, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
