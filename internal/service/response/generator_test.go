package response

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/knowledge"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/conversation"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()

	data := profile.Seed()
	if err := profile.Validate(data); err != nil {
		t.Fatalf("seed data failed validation: %v", err)
	}
	conversations := conversation.NewManager(
		config.ConversationConfig{MaxMessages: 50, SessionTimeout: 30 * time.Minute},
		nil,
		"Hi! Ask me anything.",
	)
	return NewGenerator(knowledge.New(data), nil, conversations)
}

func TestGreetingMentionsName(t *testing.T) {
	g := newTestGenerator(t)
	text, update := g.Generate(context.Background(), "Hello!", chat.ConversationContext{})
	if !strings.Contains(text, "Mohd Uwaish") {
		t.Fatalf("greeting should introduce the owner, got %q", text)
	}
	if update.UserIntent == nil || *update.UserIntent != chat.IntentGreeting {
		t.Fatalf("expected greeting intent in update, got %+v", update)
	}
	if update.LastAskedAbout != nil {
		t.Fatal("greeting must not overwrite lastAskedAbout")
	}
}

func TestSpecificSkillQuestion(t *testing.T) {
	g := newTestGenerator(t)
	text, update := g.Generate(context.Background(), "What are your React skills?", chat.ConversationContext{})
	if !strings.Contains(text, "React") {
		t.Fatalf("expected React mentioned, got %q", text)
	}
	if !strings.Contains(text, "90%") {
		t.Fatalf("expected the proficiency level, got %q", text)
	}
	if update.CurrentTopic == nil || *update.CurrentTopic != "skills-react" {
		t.Fatalf("expected topic skills-react, got %+v", update.CurrentTopic)
	}
	if update.LastAskedAbout == nil || *update.LastAskedAbout != "skills" {
		t.Fatalf("expected lastAskedAbout skills, got %+v", update.LastAskedAbout)
	}
}

func TestFollowUpUsesPreviousTopic(t *testing.T) {
	g := newTestGenerator(t)
	conv := chat.ConversationContext{
		CurrentTopic:   "skills-react",
		LastAskedAbout: "skills",
	}
	text, update := g.Generate(context.Background(), "tell me more about that", conv)
	if !strings.Contains(text, "React") {
		t.Fatalf("follow-up should elaborate on React, got %q", text)
	}
	// An unknown-intent turn must not clobber the tracked topic.
	if update.CurrentTopic != nil {
		t.Fatalf("expected topic unchanged, got %q", *update.CurrentTopic)
	}
	if update.LastAskedAbout != nil {
		t.Fatalf("expected lastAskedAbout unchanged, got %q", *update.LastAskedAbout)
	}
}

func TestContextAwareResolvesMention(t *testing.T) {
	g := newTestGenerator(t)
	conv := chat.ConversationContext{
		Messages: []chat.Message{
			chat.NewMessage(chat.SenderUser, "what are your React skills?"),
			chat.NewMessage(chat.SenderBot, "I know React well."),
			chat.NewMessage(chat.SenderUser, "how long have you used it?"),
		},
	}
	text, _ := g.Generate(context.Background(), "tell me more about it", conv)
	if !strings.Contains(strings.ToLower(text), "react") {
		t.Fatalf("expected the mentioned technology resolved, got %q", text)
	}
}

func TestExperienceAtCompany(t *testing.T) {
	g := newTestGenerator(t)
	text, _ := g.Generate(context.Background(), "Did you work at Tata Consultancy Services?", chat.ConversationContext{})
	if !strings.Contains(text, "Tata Consultancy") {
		t.Fatalf("expected company answer, got %q", text)
	}
}

func TestCurrentExperience(t *testing.T) {
	g := newTestGenerator(t)
	text, _ := g.Generate(context.Background(), "What is your current job?", chat.ConversationContext{})
	if !strings.Contains(strings.ToLower(text), "currently") {
		t.Fatalf("expected current role answer, got %q", text)
	}
}

func TestEducationQuestion(t *testing.T) {
	g := newTestGenerator(t)
	text, _ := g.Generate(context.Background(), "Where did you study?", chat.ConversationContext{})
	if !strings.Contains(text, "Göttingen") {
		t.Fatalf("expected the university mentioned, got %q", text)
	}
}

func TestContactQuestion(t *testing.T) {
	g := newTestGenerator(t)
	text, _ := g.Generate(context.Background(), "How can I contact you?", chat.ConversationContext{})
	if !strings.Contains(text, "@") {
		t.Fatalf("expected an email address, got %q", text)
	}
}

func TestUnknownSuggestsTopics(t *testing.T) {
	g := newTestGenerator(t)
	text, update := g.Generate(context.Background(), "banana", chat.ConversationContext{})
	if !strings.Contains(text, "not sure I understand") {
		t.Fatalf("expected the unknown-intent reply, got %q", text)
	}
	if update.UserIntent == nil || *update.UserIntent != chat.IntentUnknown {
		t.Fatalf("expected unknown intent, got %+v", update.UserIntent)
	}
}

func TestGeneralQuestionSearchesKnowledge(t *testing.T) {
	g := newTestGenerator(t)
	text, _ := g.Generate(context.Background(), "What do you think of DocTalk?", chat.ConversationContext{})
	if !strings.Contains(text, "DocTalk") {
		t.Fatalf("expected a search-backed answer about DocTalk, got %q", text)
	}
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	g := newTestGenerator(t)
	inputs := []string{
		"Hello", "skills?", "projects", "where", "tell me more",
		"what about Python", "??", "asdfghjkl",
	}
	for _, in := range inputs {
		text, _ := g.Generate(context.Background(), in, chat.ConversationContext{})
		if strings.TrimSpace(text) == "" {
			t.Fatalf("empty response for %q", in)
		}
	}
}
