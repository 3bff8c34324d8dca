package intent

import (
	"testing"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
)

func TestClassifyGreeting(t *testing.T) {
	for _, msg := range []string{"Hi there!", "hello", "Good morning", "Hey, how are you?"} {
		if got := Classify(msg); got != chat.IntentGreeting {
			t.Fatalf("Classify(%q) = %s, want greeting", msg, got)
		}
	}
}

func TestClassifyPersonalBeatsSkills(t *testing.T) {
	// "tell me about yourself" also contains no skill keyword, but the
	// personal rule must win over later rules for biography questions.
	if got := Classify("Tell me about yourself"); got != chat.IntentPersonal {
		t.Fatalf("expected personal intent, got %s", got)
	}
	if got := Classify("Who are you?"); got != chat.IntentPersonal {
		t.Fatalf("expected personal intent, got %s", got)
	}
}

func TestClassifyContentIntents(t *testing.T) {
	cases := []struct {
		message string
		want    chat.Intent
	}{
		{"What technologies do you know?", chat.IntentSkills},
		{"Tell me about your work experience", chat.IntentExperience},
		{"What projects have you built?", chat.IntentProjects},
		{"Where did you study?", chat.IntentEducation},
		{"How can I contact you?", chat.IntentContact},
	}
	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestClassifyQuestionFallsBackToGeneral(t *testing.T) {
	if got := Classify("What is your favorite color?"); got != chat.IntentGeneral {
		t.Fatalf("expected general intent for a question, got %s", got)
	}
}

func TestClassifyUnknown(t *testing.T) {
	if got := Classify("banana"); got != chat.IntentUnknown {
		t.Fatalf("expected unknown intent, got %s", got)
	}
}

func TestTopicRefinesSkillsByTechnology(t *testing.T) {
	if got := Topic("What are your React skills?", chat.IntentSkills); got != "skills-react" {
		t.Fatalf("expected skills-react, got %q", got)
	}
	if got := Topic("What are your skills?", chat.IntentSkills); got != "skills-general" {
		t.Fatalf("expected skills-general, got %q", got)
	}
}

func TestTopicExperienceCurrent(t *testing.T) {
	if got := Topic("What is your current job?", chat.IntentExperience); got != "experience-current" {
		t.Fatalf("expected experience-current, got %q", got)
	}
}

func TestTopicEmptyForUnknown(t *testing.T) {
	if got := Topic("tell me more about that", chat.IntentUnknown); got != "" {
		t.Fatalf("expected empty topic for unknown intent, got %q", got)
	}
}

func TestIsFollowUp(t *testing.T) {
	if !IsFollowUp("Can you tell me more about that?") {
		t.Fatal("expected follow-up detection for 'tell me more'")
	}
	if IsFollowUp("What are your skills?") {
		t.Fatal("did not expect follow-up for a fresh question")
	}
}

func TestMentionedTechOrder(t *testing.T) {
	got := MentionedTech("I use React with Node and TypeScript")
	want := []string{"react", "node", "typescript"}
	if len(got) != len(want) {
		t.Fatalf("expected %d technologies, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
