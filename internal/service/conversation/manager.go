// Package conversation owns the conversation-state lifecycle: appending and
// trimming history, session-boundary detection, best-effort persistence and
// health diagnostics.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/analysis/intent"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/store"
)

// Manager applies the conversation limits policy and mirrors state into the
// best-effort store. Contexts are treated as values: every mutation returns a
// new context, and only reset or trim may shrink one.
type Manager struct {
	cfg     config.ConversationConfig
	store   store.ContextStore
	welcome string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager wires the manager over a context store. A nil store disables
// persistence.
func NewManager(cfg config.ConversationConfig, contextStore store.ContextStore, welcome string) *Manager {
	if contextStore == nil {
		contextStore = store.Noop{}
	}
	return &Manager{
		cfg:     cfg,
		store:   contextStore,
		welcome: welcome,
		locks:   make(map[string]*sync.Mutex),
	}
}

// LockClient serializes access to one client's conversation state. Each
// client id is logically single-writer; concurrent requests for the same id
// must not interleave their load-mutate-save cycles.
func (m *Manager) LockClient(clientID string) func() {
	m.mu.Lock()
	lock, ok := m.locks[clientID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[clientID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// FreshContext returns an empty conversation.
func (m *Manager) FreshContext() chat.ConversationContext {
	return chat.ConversationContext{}
}

// StartSession returns a fresh conversation seeded with the welcome message.
func (m *Manager) StartSession() chat.ConversationContext {
	welcome := chat.NewMessage(chat.SenderBot, m.welcome)
	return m.AddMessage(m.FreshContext(), welcome)
}

// AddMessage appends a message and caps history length. Typing placeholders
// are transient UI state and never enter the stored context.
func (m *Manager) AddMessage(conversation chat.ConversationContext, message chat.Message) chat.ConversationContext {
	if message.Kind == chat.KindTyping {
		return conversation
	}
	out := conversation.Clone()
	out.Messages = append(out.Messages, message)
	if len(out.Messages) > m.cfg.MaxMessages {
		out = m.trimGracefully(out)
	}
	return out
}

// Update carries optional context field changes.
type Update struct {
	CurrentTopic   *string
	UserIntent     *chat.Intent
	LastAskedAbout *string
}

// Merge applies an update, returning the new context value.
func (m *Manager) Merge(conversation chat.ConversationContext, update Update) chat.ConversationContext {
	out := conversation.Clone()
	if update.CurrentTopic != nil {
		out.CurrentTopic = *update.CurrentTopic
	}
	if update.UserIntent != nil {
		out.UserIntent = *update.UserIntent
	}
	if update.LastAskedAbout != nil {
		out.LastAskedAbout = *update.LastAskedAbout
	}
	return out
}

// ShouldReset reports whether the conversation is beyond saving: half again
// over the message cap, or stale past the session timeout.
func (m *Manager) ShouldReset(conversation chat.ConversationContext) bool {
	if len(conversation.Messages) > m.cfg.MaxMessages*3/2 {
		return true
	}
	if last, ok := conversation.LastMessage(); ok {
		if time.Since(last.Timestamp) > m.cfg.SessionTimeout {
			return true
		}
	}
	return false
}

// IsLong reports whether the conversation passed 80% of the cap.
func (m *Manager) IsLong(conversation chat.ConversationContext) bool {
	return len(conversation.Messages) > m.cfg.MaxMessages*4/5
}

// HandleContextLimits applies the reset-or-trim policy. Within limits it
// returns the context unchanged, so the operation is idempotent.
func (m *Manager) HandleContextLimits(conversation chat.ConversationContext) chat.ConversationContext {
	if m.ShouldReset(conversation) {
		return m.FreshContext()
	}
	if len(conversation.Messages) > m.cfg.MaxMessages {
		return m.trimGracefully(conversation)
	}
	return conversation
}

// trimGracefully keeps the first message (usually the welcome), replaces the
// older middle with one synthetic summary, and keeps the most recent
// maxMessages-5 verbatim.
func (m *Manager) trimGracefully(conversation chat.ConversationContext) chat.ConversationContext {
	if len(conversation.Messages) <= m.cfg.MaxMessages {
		return conversation
	}

	keep := m.cfg.MaxMessages - 5
	if keep < 1 {
		keep = 1
	}
	first := conversation.Messages[0]
	recent := conversation.Messages[len(conversation.Messages)-keep:]
	trimmed := conversation.Messages[1 : len(conversation.Messages)-keep]

	summary := chat.Message{
		ID:        fmt.Sprintf("summary_%d", time.Now().UnixMilli()),
		Content:   fmt.Sprintf("[Previous conversation summary: %s]", summarize(trimmed)),
		Sender:    chat.SenderBot,
		Timestamp: recent[0].Timestamp,
		Kind:      chat.KindText,
	}

	out := conversation.Clone()
	out.Messages = make([]chat.Message, 0, len(recent)+2)
	out.Messages = append(out.Messages, first, summary)
	out.Messages = append(out.Messages, recent...)
	return out
}

// summarize derives deterministic text from a trimmed range: topics touched
// plus the interaction pattern.
func summarize(messages []chat.Message) string {
	topicSet := make(map[string]bool)
	var topics []string
	var interactions []string
	askedDetails := false
	askedQuestions := false

	for _, msg := range messages {
		if msg.Sender != chat.SenderUser {
			continue
		}
		for _, topic := range intent.TopicOf(msg.Content) {
			if !topicSet[topic] {
				topicSet[topic] = true
				topics = append(topics, topic)
			}
		}
		lower := strings.ToLower(msg.Content)
		if !askedDetails && strings.Contains(lower, "tell me about") {
			askedDetails = true
			interactions = append(interactions, "asked for details")
		}
		if !askedQuestions && (strings.Contains(lower, "what") || strings.Contains(lower, "how")) {
			askedQuestions = true
			interactions = append(interactions, "asked questions")
		}
	}

	topicsStr := strings.Join(topics, ", ")
	if topicsStr == "" {
		topicsStr = "general topics"
	}
	out := "Discussed " + topicsStr + "."
	if len(interactions) > 0 {
		out += " User " + strings.Join(interactions, " and ") + "."
	}
	return out
}

// SaveContext mirrors the context into the store; failures are swallowed.
func (m *Manager) SaveContext(ctx context.Context, clientID string, conversation chat.ConversationContext) {
	m.store.TrySave(ctx, clientID, conversation)
}

// LoadContext reads the persisted context. A stale or missing record reads as
// "no saved context".
func (m *Manager) LoadContext(ctx context.Context, clientID string) (chat.ConversationContext, bool) {
	conversation, lastActivity, ok := m.store.TryLoad(ctx, clientID)
	if !ok {
		return chat.ConversationContext{}, false
	}
	if time.Since(lastActivity) > m.cfg.SessionTimeout {
		m.store.TryClear(ctx, clientID)
		return chat.ConversationContext{}, false
	}
	return conversation, true
}

// ClearContext removes persisted state for a client.
func (m *Manager) ClearContext(ctx context.Context, clientID string) {
	m.store.TryClear(ctx, clientID)
}

// ResumeOrStart loads a saved conversation if it is still within the session
// window, otherwise starts fresh with a welcome message.
func (m *Manager) ResumeOrStart(ctx context.Context, clientID string) chat.ConversationContext {
	saved, ok := m.LoadContext(ctx, clientID)
	if !ok || m.isNewSession(saved) {
		m.ClearContext(ctx, clientID)
		session := m.StartSession()
		m.SaveContext(ctx, clientID, session)
		return session
	}
	return saved
}

func (m *Manager) isNewSession(conversation chat.ConversationContext) bool {
	last, ok := conversation.LastMessage()
	if !ok {
		return true
	}
	return time.Since(last.Timestamp) > m.cfg.SessionTimeout
}

// Age returns the conversation age in whole minutes.
func (m *Manager) Age(conversation chat.ConversationContext) int {
	if len(conversation.Messages) == 0 {
		return 0
	}
	return int(time.Since(conversation.Messages[0].Timestamp).Minutes())
}

// Health reports how close the conversation is to its limits.
func (m *Manager) Health(conversation chat.ConversationContext) chat.Health {
	health := chat.Health{
		Status:         chat.HealthHealthy,
		MessageCount:   len(conversation.Messages),
		AgeMinutes:     m.Age(conversation),
		Recommendation: "Conversation is running smoothly.",
	}

	if m.ShouldReset(conversation) {
		health.Status = chat.HealthNeedsReset
		health.Recommendation = "Conversation should be reset due to age or size."
	} else if m.IsLong(conversation) {
		health.Status = chat.HealthApproachingLimit
		health.Recommendation = "Conversation is getting long. Consider summarizing or trimming."
	}

	return health
}

// ContextualInfo digests the last eight messages for the response layer:
// recent topics, mentioned technologies, the last user utterance and a
// coarse flow classification.
func (m *Manager) ContextualInfo(conversation chat.ConversationContext) chat.ContextualInfo {
	recent := conversation.Messages
	if len(recent) > 8 {
		recent = recent[len(recent)-8:]
	}

	info := chat.ContextualInfo{Flow: chat.FlowInitial}
	topicSet := make(map[string]bool)
	itemSet := make(map[string]bool)
	hasFollowUp := false

	for _, msg := range recent {
		if msg.Sender != chat.SenderUser {
			continue
		}
		info.LastUserQuestion = msg.Content
		for _, topic := range intent.TopicOf(msg.Content) {
			if !topicSet[topic] {
				topicSet[topic] = true
				info.RecentTopics = append(info.RecentTopics, topic)
			}
		}
		for _, item := range intent.MentionedTech(msg.Content) {
			if !itemSet[item] {
				itemSet[item] = true
				info.MentionedItems = append(info.MentionedItems, item)
			}
		}
		if intent.IsFollowUp(msg.Content) {
			hasFollowUp = true
		}
	}

	if len(recent) > 2 {
		if hasFollowUp {
			info.Flow = chat.FlowFollowUp
		} else {
			info.Flow = chat.FlowOngoing
		}
	}

	return info
}

// Stats summarizes the conversation for diagnostics.
func (m *Manager) Stats(conversation chat.ConversationContext) chat.Stats {
	stats := chat.Stats{TotalMessages: len(conversation.Messages)}
	for _, msg := range conversation.Messages {
		switch msg.Sender {
		case chat.SenderUser:
			stats.UserMessages++
		case chat.SenderBot:
			stats.BotMessages++
		}
	}
	if len(conversation.Messages) > 0 {
		first := conversation.Messages[0].Timestamp
		last := conversation.Messages[len(conversation.Messages)-1].Timestamp
		stats.StartedAt = &first
		stats.LastActivity = &last
	}
	return stats
}

// MaxMessages exposes the configured cap for callers that report limits.
func (m *Manager) MaxMessages() int {
	return m.cfg.MaxMessages
}
