// Package store provides best-effort persistence for conversation contexts.
// The capability may be entirely absent; every operation reports success or
// failure and never returns an error to branch on.
package store

import (
	"context"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
)

// ContextStore mirrors conversation state into a durable store. All methods
// are best-effort: a failed load means "no saved context", a failed save is
// logged and ignored by callers.
type ContextStore interface {
	// TryLoad returns the persisted context and its last-activity time for a
	// client, or ok=false when nothing usable is stored.
	TryLoad(ctx context.Context, clientID string) (chat.ConversationContext, time.Time, bool)

	// TrySave persists the context, stamping the current time as last activity.
	TrySave(ctx context.Context, clientID string, conversation chat.ConversationContext) bool

	// TryClear removes any persisted context for the client.
	TryClear(ctx context.Context, clientID string) bool
}

// Noop is the store used when no persistence capability is configured.
type Noop struct{}

func (Noop) TryLoad(context.Context, string) (chat.ConversationContext, time.Time, bool) {
	return chat.ConversationContext{}, time.Time{}, false
}

func (Noop) TrySave(context.Context, string, chat.ConversationContext) bool { return false }

func (Noop) TryClear(context.Context, string) bool { return false }

// persistedContext is the JSON layout written to the store: message
// timestamps as RFC3339 strings, last activity as epoch milliseconds.
type persistedContext struct {
	Messages       []chat.Message `json:"messages"`
	CurrentTopic   string         `json:"currentTopic,omitempty"`
	UserIntent     chat.Intent    `json:"userIntent,omitempty"`
	LastAskedAbout string         `json:"lastAskedAbout,omitempty"`
	LastActivity   int64          `json:"lastActivity"`
}
