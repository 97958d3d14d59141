package models

import "time"

type Note struct {
	NoteID    int64     `json:"note_id"`
	ChatID    int64     `json:"chat_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
