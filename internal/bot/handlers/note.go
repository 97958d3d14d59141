package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fikrihandy/superbot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handlers) handleNoteAdd(ctx context.Context, msg *tgbotapi.Message) {
	content := strings.TrimSpace(msg.CommandArguments())
	if content == "" {
		h.sendMessage(msg.Chat.ID, "Example: /note_add Buy milk on the way home.")
		return
	}

	note := &models.Note{ChatID: msg.Chat.ID, Content: content}
	if err := h.repos.Note.Create(ctx, note); err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to save the note, please try again later.")
		return
	}
	h.sendMessage(msg.Chat.ID, "📝 Note added.")
}

func (h *Handlers) handleNoteList(ctx context.Context, msg *tgbotapi.Message) {
	notes, err := h.repos.Note.ListByChat(ctx, msg.Chat.ID, 100)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to load notes, please try again later.")
		return
	}

	if len(notes) == 0 {
		h.sendMessage(msg.Chat.ID, "No notes yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📒 *Notes:*\n")
	for _, note := range notes {
		sb.WriteString(fmt.Sprintf("%d. %s  _(%s)_\n", note.NoteID, note.Content, note.CreatedAt.Format("2006-01-02 15:04")))
	}
	h.sendMessage(msg.Chat.ID, sb.String())
}

func (h *Handlers) handleNoteDel(ctx context.Context, msg *tgbotapi.Message) {
	noteID, err := strconv.ParseInt(strings.TrimSpace(msg.CommandArguments()), 10, 64)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Example: /note_del 12")
		return
	}

	deleted, err := h.repos.Note.Delete(ctx, noteID, msg.Chat.ID)
	if err != nil {
		h.sendMessage(msg.Chat.ID, "Failed to delete the note, please try again later.")
		return
	}
	if !deleted {
		h.sendMessage(msg.Chat.ID, "Note not found.")
		return
	}
	h.sendMessage(msg.Chat.ID, fmt.Sprintf("Note %d deleted.", noteID))
}
