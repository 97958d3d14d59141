package scheduler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newTestBotAPI(endpoint string, client *http.Client) *tgbotapi.BotAPI {
	api := &tgbotapi.BotAPI{
		Token:  "test-token",
		Client: client,
		Buffer: 100,
	}
	api.SetAPIEndpoint(endpoint + "/bot%s/%s")
	return api
}

func TestTelegramSender_SendsChatAndText(t *testing.T) {
	var gotPath, gotChatID, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotPath = r.URL.Path
		gotChatID = r.FormValue("chat_id")
		gotText = r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":42},"text":"x"}}`))
	}))
	defer srv.Close()

	sender := NewTelegramSender(newTestBotAPI(srv.URL, srv.Client()))
	if err := sender.Send(42, "⏰ Reminder: pay rent"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/sendMessage") {
		t.Errorf("request path = %q, want sendMessage", gotPath)
	}
	if gotChatID != "42" {
		t.Errorf("chat_id = %q, want 42", gotChatID)
	}
	if gotText != "⏰ Reminder: pay rent" {
		t.Errorf("text = %q", gotText)
	}
}

// Deliveries run on a bounded HTTP client so a stalled Telegram call
// surfaces as an error instead of hanging a scheduler pass.
func TestTelegramSender_BoundedClientTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := &http.Client{Timeout: 50 * time.Millisecond}
	sender := NewTelegramSender(newTestBotAPI(srv.URL, client))

	start := time.Now()
	err := sender.Send(42, "slow")
	if err == nil {
		t.Fatal("Send succeeded against a stalled endpoint, want timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Send blocked for %v, want prompt timeout", elapsed)
	}
}
