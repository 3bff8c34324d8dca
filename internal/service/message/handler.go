// Package message is the engine façade: one entry point that applies rate
// limiting, validation and sanitization, drives the conversation state and
// returns the generated reply.
package message

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/ai"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/conversation"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/response"
)

var (
	// ErrRateLimited means the client exhausted its request window.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrInvalidContent means the raw message failed validation.
	ErrInvalidContent = errors.New("invalid message content")
)

// Handler runs the full inbound pipeline for one message.
type Handler struct {
	cfg           config.SecurityConfig
	conversations *conversation.Manager
	generator     *response.Generator
	limiter       *rateLimiter
}

// NewHandler wires the pipeline.
func NewHandler(cfg config.SecurityConfig, conversations *conversation.Manager, generator *response.Generator) *Handler {
	return &Handler{
		cfg:           cfg,
		conversations: conversations,
		generator:     generator,
		limiter:       newRateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitWindow),
	}
}

// ProcessMessage handles one user message end to end and returns the bot
// reply plus the updated conversation. Rejected messages never touch the
// conversation state.
func (h *Handler) ProcessMessage(ctx context.Context, clientID, raw string) (chat.Message, chat.ConversationContext, error) {
	if !h.limiter.Allow(clientID) {
		log.Printf("[message] rate limited client=%s", clientID)
		return chat.Message{}, chat.ConversationContext{}, ErrRateLimited
	}

	if reason, ok := Validate(raw, h.cfg.MaxMessageLength); !ok {
		return chat.Message{}, chat.ConversationContext{}, fmt.Errorf("%w: %s", ErrInvalidContent, reason)
	}
	sanitized := Sanitize(raw)
	if sanitized == "" {
		return chat.Message{}, chat.ConversationContext{}, fmt.Errorf("%w: message is empty after sanitization", ErrInvalidContent)
	}

	unlock := h.conversations.LockClient(clientID)
	defer unlock()

	conv := h.conversations.ResumeOrStart(ctx, clientID)
	conv = h.conversations.AddMessage(conv, chat.NewMessage(chat.SenderUser, sanitized))
	conv = h.conversations.HandleContextLimits(conv)

	text, update := h.generator.Generate(ctx, sanitized, conv)
	conv = h.conversations.Merge(conv, update)

	reply := chat.NewMessage(chat.SenderBot, text)
	conv = h.conversations.AddMessage(conv, reply)
	h.conversations.SaveContext(ctx, clientID, conv)

	return reply, conv, nil
}

// Context returns the client's current conversation, resuming or starting a
// session as needed.
func (h *Handler) Context(ctx context.Context, clientID string) chat.ConversationContext {
	unlock := h.conversations.LockClient(clientID)
	defer unlock()
	return h.conversations.ResumeOrStart(ctx, clientID)
}

// ResetContext discards the client's conversation and starts a fresh session.
func (h *Handler) ResetContext(ctx context.Context, clientID string) chat.ConversationContext {
	unlock := h.conversations.LockClient(clientID)
	defer unlock()

	h.conversations.ClearContext(ctx, clientID)
	session := h.conversations.StartSession()
	h.conversations.SaveContext(ctx, clientID, session)
	return session
}

// Health reports how close the client's conversation is to its limits.
func (h *Handler) Health(ctx context.Context, clientID string) chat.Health {
	unlock := h.conversations.LockClient(clientID)
	defer unlock()

	conv, ok := h.conversations.LoadContext(ctx, clientID)
	if !ok {
		conv = h.conversations.FreshContext()
	}
	return h.conversations.Health(conv)
}

// RateLimit reports the client's remaining request budget.
func (h *Handler) RateLimit(clientID string) RateLimitStatus {
	return h.limiter.Status(clientID)
}

// ClearRateLimit forgets the client's request history.
func (h *Handler) ClearRateLimit(clientID string) {
	h.limiter.Clear(clientID)
}

// AIStatus reports the provider status.
func (h *Handler) AIStatus() ai.Status {
	return h.generator.AIStatus()
}

// MaxRequests exposes the rate limit ceiling for status reporting.
func (h *Handler) MaxRequests() int {
	return h.cfg.RateLimitMaxRequests
}

// Window exposes the rate limit window for status reporting.
func (h *Handler) Window() int64 {
	return h.cfg.RateLimitWindow.Milliseconds()
}
