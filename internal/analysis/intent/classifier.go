// Package intent classifies free-text visitor messages without a trained
// model: an ordered list of pattern rules evaluated first-match-wins, plus
// helpers for topic tagging and follow-up detection.
package intent

import (
	"regexp"
	"strings"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
)

// rule pairs a pattern with the intent it produces. Order matters: the first
// matching rule wins, most specific rules come first.
type rule struct {
	pattern *regexp.Regexp
	intent  chat.Intent
}

var rules = []rule{
	{regexp.MustCompile(`(?i)^(hi|hello|hey|good\s+(morning|afternoon|evening)|greetings)`), chat.IntentGreeting},
	{regexp.MustCompile(`(?i)(tell me about yourself|who are you|your background|your bio|about you\b|yourself)`), chat.IntentPersonal},
	{regexp.MustCompile(`(?i)(skill|technology|tech|programming|language|framework|tool|expertise|proficient|know)`), chat.IntentSkills},
	{regexp.MustCompile(`(?i)(experience|work|job|career|position|role|company|employer|worked)`), chat.IntentExperience},
	{regexp.MustCompile(`(?i)(project|portfolio|built|created|developed|app|application|website|github)`), chat.IntentProjects},
	{regexp.MustCompile(`(?i)(education|degree|university|college|study|studied|graduate|qualification)`), chat.IntentEducation},
	{regexp.MustCompile(`(?i)(contact|email|phone|reach|hire|available|availability|location|where)`), chat.IntentContact},
}

var questionPattern = regexp.MustCompile(`(?i)(\?|^(what|how|when|where|why|can you|do you|are you)\b|\s(what|how|when|where|why)\b)`)

// Classify maps a message to its intent.
func Classify(message string) chat.Intent {
	for _, r := range rules {
		if r.pattern.MatchString(message) {
			return r.intent
		}
	}
	if questionPattern.MatchString(message) {
		return chat.IntentGeneral
	}
	return chat.IntentUnknown
}

// techKeywords is the fixed vocabulary used for topic refinement and for
// tracking which technologies a visitor mentioned.
var techKeywords = []string{
	"react", "node", "javascript", "typescript", "python", "java", "css",
	"html", "sql", "next", "express", "mongodb", "postgresql", "langchain",
	"fastapi", "django", "tailwind", "pytorch", "huggingface", "streamlit",
}

// Topic derives a tag refining the intent, e.g. "skills-react" or
// "experience-current".
func Topic(message string, in chat.Intent) string {
	lower := strings.ToLower(message)

	switch in {
	case chat.IntentSkills:
		for _, tech := range techKeywords {
			if strings.Contains(lower, tech) {
				return "skills-" + tech
			}
		}
		return "skills-general"
	case chat.IntentExperience:
		if strings.Contains(lower, "current") || strings.Contains(lower, "recent") {
			return "experience-current"
		}
		return "experience-general"
	case chat.IntentProjects:
		if strings.Contains(lower, "web") {
			return "projects-web"
		}
		if strings.Contains(lower, "ai") || strings.Contains(lower, "ml") {
			return "projects-ai"
		}
		return "projects-general"
	case chat.IntentEducation, chat.IntentContact, chat.IntentPersonal:
		return string(in)
	default:
		return ""
	}
}

// MentionedTech returns the technology tokens present in the message.
func MentionedTech(message string) []string {
	lower := strings.ToLower(message)
	var out []string
	for _, tech := range techKeywords {
		if strings.Contains(lower, tech) {
			out = append(out, tech)
		}
	}
	return out
}

var followUpIndicators = []string{
	"tell me more", "more about", "what about", "how about", "and what",
	"also", "additionally", "furthermore", "can you explain", "elaborate",
	"details", "specific", "which one", "what else",
}

// IsFollowUp reports whether the message phrasing asks for elaboration on an
// earlier answer.
func IsFollowUp(message string) bool {
	lower := strings.ToLower(message)
	for _, indicator := range followUpIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

var contextReferences = []string{
	"that", "those", "it", "them", "this", "these",
	"you mentioned", "you said", "earlier", "before",
	"the one", "which one", "what about that",
	"more about", "tell me more",
}

// ReferencesContext reports whether the message contains a referential phrase
// whose resolution depends on the preceding conversation.
func ReferencesContext(message string) bool {
	lower := strings.ToLower(message)
	for _, ref := range contextReferences {
		if strings.Contains(lower, ref) {
			return true
		}
	}
	return false
}

// TopicOf maps a user utterance to the coarse topics it touches, used when
// summarizing trimmed history and digesting recent context.
func TopicOf(message string) []string {
	lower := strings.ToLower(message)
	var topics []string
	if strings.Contains(lower, "skill") || strings.Contains(lower, "technology") {
		topics = append(topics, "skills")
	}
	if strings.Contains(lower, "experience") || strings.Contains(lower, "work") {
		topics = append(topics, "experience")
	}
	if strings.Contains(lower, "project") {
		topics = append(topics, "projects")
	}
	if strings.Contains(lower, "education") || strings.Contains(lower, "study") {
		topics = append(topics, "education")
	}
	if strings.Contains(lower, "contact") || strings.Contains(lower, "hire") {
		topics = append(topics, "contact")
	}
	return topics
}
