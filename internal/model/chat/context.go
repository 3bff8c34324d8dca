package chat

import "time"

// ConversationContext carries the rolling state of a single visitor's chat.
// Mutations happen through the conversation manager, which always returns a
// new value; callers never edit a context in place.
type ConversationContext struct {
	Messages       []Message `json:"messages"`
	CurrentTopic   string    `json:"currentTopic,omitempty"`
	UserIntent     Intent    `json:"userIntent,omitempty"`
	LastAskedAbout string    `json:"lastAskedAbout,omitempty"`
}

// Clone returns a deep enough copy for value-style updates: the message slice
// is duplicated, the messages themselves are immutable.
func (c ConversationContext) Clone() ConversationContext {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}

// LastMessage returns the most recent message, if any.
func (c ConversationContext) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// HealthStatus describes how close a conversation is to its limits.
type HealthStatus string

const (
	HealthHealthy          HealthStatus = "healthy"
	HealthApproachingLimit HealthStatus = "approaching_limit"
	HealthNeedsReset       HealthStatus = "needs_reset"
)

// Health is the diagnostic snapshot exposed to callers.
type Health struct {
	Status         HealthStatus `json:"status"`
	MessageCount   int          `json:"messageCount"`
	AgeMinutes     int          `json:"ageMinutes"`
	Recommendation string       `json:"recommendation"`
}

// Flow classifies where a conversation currently is.
type Flow string

const (
	FlowInitial  Flow = "initial"
	FlowFollowUp Flow = "follow-up"
	FlowOngoing  Flow = "ongoing"
)

// ContextualInfo is the digest of recent history the response layer uses to
// resolve references like "that" or "it".
type ContextualInfo struct {
	RecentTopics     []string
	MentionedItems   []string
	LastUserQuestion string
	Flow             Flow
}

// Stats summarizes a conversation for debugging endpoints.
type Stats struct {
	TotalMessages int        `json:"totalMessages"`
	UserMessages  int        `json:"userMessages"`
	BotMessages   int        `json:"botMessages"`
	StartedAt     *time.Time `json:"conversationStarted,omitempty"`
	LastActivity  *time.Time `json:"lastActivity,omitempty"`
}
