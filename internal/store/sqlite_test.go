package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "contexts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	conv := chat.ConversationContext{
		Messages: []chat.Message{
			chat.NewMessage(chat.SenderBot, "welcome"),
			chat.NewMessage(chat.SenderUser, "what are your skills?"),
		},
		CurrentTopic:   "skills-react",
		UserIntent:     chat.IntentSkills,
		LastAskedAbout: "skills",
	}

	if !s.TrySave(ctx, "client-1", conv) {
		t.Fatal("save failed")
	}

	loaded, lastActivity, ok := s.TryLoad(ctx, "client-1")
	if !ok {
		t.Fatal("expected saved context back")
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(loaded.Messages))
	}
	if loaded.CurrentTopic != "skills-react" || loaded.UserIntent != chat.IntentSkills || loaded.LastAskedAbout != "skills" {
		t.Fatalf("context fields lost in roundtrip: %+v", loaded)
	}
	if time.Since(lastActivity) > time.Minute {
		t.Fatalf("stale last activity: %v", lastActivity)
	}
}

func TestLoadMissingClient(t *testing.T) {
	s := newTestStore(t)
	if _, _, ok := s.TryLoad(context.Background(), "nobody"); ok {
		t.Fatal("expected no context for unknown client")
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := chat.ConversationContext{Messages: []chat.Message{chat.NewMessage(chat.SenderBot, "one")}}
	second := chat.ConversationContext{Messages: []chat.Message{
		chat.NewMessage(chat.SenderBot, "one"),
		chat.NewMessage(chat.SenderUser, "two"),
	}}

	s.TrySave(ctx, "client-1", first)
	s.TrySave(ctx, "client-1", second)

	loaded, _, ok := s.TryLoad(ctx, "client-1")
	if !ok || len(loaded.Messages) != 2 {
		t.Fatalf("expected the newer context, got ok=%v messages=%d", ok, len(loaded.Messages))
	}
}

func TestClearRemovesContext(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.TrySave(ctx, "client-1", chat.ConversationContext{
		Messages: []chat.Message{chat.NewMessage(chat.SenderBot, "hi")},
	})
	if !s.TryClear(ctx, "client-1") {
		t.Fatal("clear failed")
	}
	if _, _, ok := s.TryLoad(ctx, "client-1"); ok {
		t.Fatal("context survived clear")
	}
}

func TestCorruptPayloadReadsAsMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO conversation_contexts (client_id, payload, last_activity, updated_at)
		VALUES ('client-1', 'not json', 0, 0)`); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	if _, _, ok := s.TryLoad(ctx, "client-1"); ok {
		t.Fatal("corrupt payload should read as missing")
	}
	// The corrupt row must also have been discarded.
	if _, _, ok := s.TryLoad(ctx, "client-1"); ok {
		t.Fatal("corrupt row was not cleared")
	}
}
