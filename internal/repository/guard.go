package repository

import (
	"context"
	"time"

	"github.com/fikrihandy/superbot/internal/database"
)

// GuardRepository owns the sent_guard table: one row per evaluated
// recurring-pass minute, keyed "daily-..." or "weekly-...". It keeps a pass
// from firing twice when two ticks land in the same wall-clock minute.
type GuardRepository struct {
	db *database.DB
}

func NewGuardRepository(db *database.DB) *GuardRepository {
	return &GuardRepository{db: db}
}

func (r *GuardRepository) Contains(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM sent_guard WHERE key = $1)`,
		key,
	).Scan(&exists)
	return exists, err
}

// Add records the key. Inserting an existing key is a no-op, so concurrent
// ticks racing on the same minute stay safe.
func (r *GuardRepository) Add(ctx context.Context, key string, at time.Time) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO sent_guard (key, created_at) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
		key, at,
	)
	return err
}

// DeleteOlderThan prunes guard rows created before cutoff and returns how
// many were removed.
func (r *GuardRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM sent_guard WHERE created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
