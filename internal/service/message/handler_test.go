package message

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/knowledge"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/conversation"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/response"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/store"
)

// memoryStore keeps contexts in-process so the pipeline tests can observe
// persisted state between calls.
type memoryStore struct {
	contexts   map[string]chat.ConversationContext
	activities map[string]time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		contexts:   make(map[string]chat.ConversationContext),
		activities: make(map[string]time.Time),
	}
}

func (m *memoryStore) TryLoad(_ context.Context, clientID string) (chat.ConversationContext, time.Time, bool) {
	conv, ok := m.contexts[clientID]
	return conv, m.activities[clientID], ok
}

func (m *memoryStore) TrySave(_ context.Context, clientID string, conv chat.ConversationContext) bool {
	m.contexts[clientID] = conv
	m.activities[clientID] = time.Now()
	return true
}

func (m *memoryStore) TryClear(_ context.Context, clientID string) bool {
	delete(m.contexts, clientID)
	delete(m.activities, clientID)
	return true
}

var _ store.ContextStore = (*memoryStore)(nil)

func newTestHandler(t *testing.T, maxRequests int) *Handler {
	t.Helper()

	data := profile.Seed()
	if err := profile.Validate(data); err != nil {
		t.Fatalf("seed data failed validation: %v", err)
	}
	kb := knowledge.New(data)

	conversations := conversation.NewManager(
		config.ConversationConfig{MaxMessages: 50, SessionTimeout: 30 * time.Minute},
		newMemoryStore(),
		"Hi! Ask me about my skills, experience, or projects.",
	)
	generator := response.NewGenerator(kb, nil, conversations)

	return NewHandler(config.SecurityConfig{
		MaxMessageLength:     500,
		RateLimitMaxRequests: maxRequests,
		RateLimitWindow:      time.Minute,
	}, conversations, generator)
}

func TestProcessMessageReturnsBotReply(t *testing.T) {
	h := newTestHandler(t, 10)
	reply, conv, err := h.ProcessMessage(context.Background(), "client-1", "What are your React skills?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Sender != chat.SenderBot || reply.Content == "" {
		t.Fatalf("expected non-empty bot reply, got %+v", reply)
	}
	// Welcome, user message, bot reply.
	if len(conv.Messages) != 3 {
		t.Fatalf("expected 3 messages in conversation, got %d", len(conv.Messages))
	}
	if conv.CurrentTopic != "skills-react" {
		t.Fatalf("expected topic skills-react, got %q", conv.CurrentTopic)
	}
	if conv.LastAskedAbout != "skills" {
		t.Fatalf("expected lastAskedAbout skills, got %q", conv.LastAskedAbout)
	}
}

func TestProcessMessagePersistsConversation(t *testing.T) {
	h := newTestHandler(t, 10)
	ctx := context.Background()

	if _, _, err := h.ProcessMessage(ctx, "client-1", "What are your skills?"); err != nil {
		t.Fatalf("first message failed: %v", err)
	}
	_, conv, err := h.ProcessMessage(ctx, "client-1", "Tell me about your projects")
	if err != nil {
		t.Fatalf("second message failed: %v", err)
	}
	// Welcome plus two user/bot pairs.
	if len(conv.Messages) != 5 {
		t.Fatalf("expected conversation to carry over, got %d messages", len(conv.Messages))
	}
}

func TestProcessMessageRejectsDangerousContent(t *testing.T) {
	h := newTestHandler(t, 10)
	ctx := context.Background()

	_, _, err := h.ProcessMessage(ctx, "client-1", "<script>alert('xss')</script>")
	if !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}

	// The rejected message must not have touched the conversation.
	conv := h.Context(ctx, "client-1")
	if len(conv.Messages) != 1 {
		t.Fatalf("rejected message entered history: %d messages", len(conv.Messages))
	}
}

func TestProcessMessageSanitizesMarkup(t *testing.T) {
	h := newTestHandler(t, 10)
	_, conv, err := h.ProcessMessage(context.Background(), "client-1", "tell me about <b>your skills</b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userMsg := conv.Messages[1]
	if strings.Contains(userMsg.Content, "<") || strings.Contains(userMsg.Content, ">") {
		t.Fatalf("raw markup stored in history: %q", userMsg.Content)
	}
}

func TestProcessMessageRateLimited(t *testing.T) {
	h := newTestHandler(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, _, err := h.ProcessMessage(ctx, "client-1", "hello"); err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
	}
	_, _, err := h.ProcessMessage(ctx, "client-1", "hello again")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestResetContextStartsFreshSession(t *testing.T) {
	h := newTestHandler(t, 10)
	ctx := context.Background()

	if _, _, err := h.ProcessMessage(ctx, "client-1", "What are your skills?"); err != nil {
		t.Fatalf("message failed: %v", err)
	}
	session := h.ResetContext(ctx, "client-1")
	if len(session.Messages) != 1 {
		t.Fatalf("expected only the welcome after reset, got %d messages", len(session.Messages))
	}
	if session.Messages[0].Sender != chat.SenderBot {
		t.Fatalf("expected bot welcome, got %+v", session.Messages[0])
	}
}

func TestHealthForUnknownClient(t *testing.T) {
	h := newTestHandler(t, 10)
	health := h.Health(context.Background(), "never-seen")
	if health.Status != chat.HealthHealthy {
		t.Fatalf("expected healthy for empty conversation, got %s", health.Status)
	}
	if health.MessageCount != 0 {
		t.Fatalf("expected zero messages, got %d", health.MessageCount)
	}
}
