// Package ai bridges the engine to an external language-model provider. The
// service only exists when credentials are configured; without it the engine
// answers purely from structured data.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/knowledge"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
)

var (
	// ErrUnavailable means no provider is configured.
	ErrUnavailable = errors.New("ai service unavailable")
	// ErrEmptyResponse means the provider answered with no content.
	ErrEmptyResponse = errors.New("empty response from provider")
)

// Service wraps the provider behind a compiled prompt chain.
type Service struct {
	chatModel model.ChatModel
	kb        *knowledge.Base
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the AI service. It fails only on genuine setup errors;
// missing credentials are the caller's signal to not construct it at all.
func NewService(ctx context.Context, kb *knowledge.Base, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		kb:        kb,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// IsAvailable reports whether the provider can be reached at all. A nil
// service is simply unavailable.
func (s *Service) IsAvailable() bool {
	return s != nil && s.chatModel != nil
}

// FallbackEnabled reports whether canned per-intent replies should stand in
// for provider failures when the caller does not handle them itself.
func (s *Service) FallbackEnabled() bool {
	return s != nil && s.cfg.EnableFallback
}

// GenerateResponse runs one round trip: an intent-specific system prompt,
// the last six non-typing turns as history, and the user query. The caller
// owns fallback on any returned error.
func (s *Service) GenerateResponse(ctx context.Context, userMessage string, conversation chat.ConversationContext, in chat.Intent) (string, error) {
	if !s.IsAvailable() {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	// The current user message travels as the query, so drop it from the
	// history when the caller already appended it.
	history := conversation
	if last, ok := conversation.LastMessage(); ok && last.Sender == chat.SenderUser && last.Content == userMessage {
		history = conversation.Clone()
		history.Messages = history.Messages[:len(history.Messages)-1]
	}

	input := map[string]any{
		"system":  BuildSystemPrompt(s.kb.Data(), in),
		"history": buildHistory(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("provider call failed: %w", err)
	}
	content := strings.TrimSpace(response.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	log.Printf("[ai] generated response, intent=%s length=%d", in, len(content))
	return content, nil
}

// TestConnection performs one minimal round trip to verify the credential.
func (s *Service) TestConnection(ctx context.Context) bool {
	if !s.IsAvailable() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	_, err := s.chain.Invoke(ctx, map[string]any{
		"system":  "Reply with the single word: ok",
		"history": nil,
		"query":   "ping",
	})
	if err != nil {
		log.Printf("[ai] connection test failed: %v", err)
		return false
	}
	return true
}

// Status describes the provider for the status endpoint.
type Status struct {
	Available bool   `json:"available"`
	Model     string `json:"model"`
	Provider  string `json:"provider"`
}

// GetStatus reports availability and provider identity. Safe on a nil
// service.
func (s *Service) GetStatus() Status {
	if s == nil {
		return Status{Available: false, Provider: "ark"}
	}
	return Status{
		Available: s.IsAvailable(),
		Model:     s.cfg.Model,
		Provider:  s.cfg.Provider(),
	}
}

// buildHistory converts the last six stored turns into provider messages,
// skipping typing placeholders.
func buildHistory(conversation chat.ConversationContext) []*schema.Message {
	const historyLimit = 6

	messages := conversation.Messages
	if len(messages) == 0 {
		return nil
	}

	var recent []chat.Message
	for i := len(messages) - 1; i >= 0 && len(recent) < historyLimit; i-- {
		if messages[i].Kind == chat.KindTyping {
			continue
		}
		recent = append(recent, messages[i])
	}

	history := make([]*schema.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		switch msg.Sender {
		case chat.SenderUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.SenderBot:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}

	return history
}

// Fallback returns the canned reply for an intent, used when the provider
// fails and the caller opted into static fallbacks.
func Fallback(in chat.Intent) string {
	switch in {
	case chat.IntentGreeting:
		return "Hello! I'm here to help you learn about Mohd Uwaish. Feel free to ask about his skills, experience, or projects!"
	case chat.IntentSkills:
		return "Mohd Uwaish has expertise in various technologies. You can find detailed information about his skills in the portfolio."
	case chat.IntentExperience:
		return "You can learn about Mohd Uwaish's work experience and achievements throughout his career."
	case chat.IntentProjects:
		return "Mohd Uwaish has worked on several interesting projects. Check out the projects section for more details."
	case chat.IntentContact:
		return "You can reach out to Mohd Uwaish through the contact information provided in the portfolio."
	default:
		return "I'm not sure I understand. Could you please rephrase your question or ask about his skills, experience, or projects?"
	}
}
