package repository

import (
	"context"

	"github.com/fikrihandy/superbot/internal/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure registers the chat if it is not known yet.
func (r *UserRepository) Ensure(ctx context.Context, chatID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO users (chat_id) VALUES ($1) ON CONFLICT (chat_id) DO NOTHING`,
		chatID,
	)
	return err
}
