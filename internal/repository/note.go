package repository

import (
	"context"

	"github.com/fikrihandy/superbot/internal/database"
	"github.com/fikrihandy/superbot/internal/models"
)

type NoteRepository struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO notes (chat_id, content) VALUES ($1, $2)
		 RETURNING note_id, created_at`,
		note.ChatID, note.Content,
	).Scan(&note.NoteID, &note.CreatedAt)
}

func (r *NoteRepository) ListByChat(ctx context.Context, chatID int64, limit int) ([]*models.Note, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT note_id, chat_id, content, created_at
		 FROM notes WHERE chat_id = $1 ORDER BY note_id DESC LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.NoteID, &note.ChatID, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// Delete removes the note and reports whether a row owned by the chat existed.
func (r *NoteRepository) Delete(ctx context.Context, noteID, chatID int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM notes WHERE note_id = $1 AND chat_id = $2`,
		noteID, chatID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
