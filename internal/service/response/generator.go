// Package response turns a classified user message into prose: AI-backed
// when a provider is configured, otherwise deterministic templates over the
// knowledge base. This layer never fails upward; every internal error
// collapses into an apology message.
package response

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/analysis/intent"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/knowledge"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/ai"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/conversation"
)

// Generator orchestrates intent classification, follow-up detection and the
// choice between the AI path and structured templates.
type Generator struct {
	kb            *knowledge.Base
	aiSvc         *ai.Service
	conversations *conversation.Manager
}

// NewGenerator wires the generator. aiSvc may be nil for template-only mode.
func NewGenerator(kb *knowledge.Base, aiSvc *ai.Service, conversations *conversation.Manager) *Generator {
	return &Generator{kb: kb, aiSvc: aiSvc, conversations: conversations}
}

// Generate produces the reply for a user message plus the context field
// updates the caller should merge and persist. It always returns some text.
func (g *Generator) Generate(ctx context.Context, userMessage string, conv chat.ConversationContext) (string, conversation.Update) {
	in := intent.Classify(userMessage)
	update := g.contextUpdate(userMessage, in, conv)
	updated := g.conversations.Merge(conv, update)

	info := g.conversations.ContextualInfo(conv)

	if g.aiSvc.IsAvailable() {
		text, err := g.aiSvc.GenerateResponse(ctx, userMessage, conv, in)
		if err == nil {
			return text, update
		}
		log.Printf("[response] ai path failed, using structured fallback: %v", err)
		if g.aiSvc.FallbackEnabled() && in == chat.IntentUnknown {
			return ai.Fallback(in), update
		}
	}

	return g.structuredResponse(userMessage, updated, in, info), update
}

// contextUpdate derives the new topic-tracking fields. Greeting and unknown
// turns keep the previous topic so follow-ups can still resolve.
func (g *Generator) contextUpdate(userMessage string, in chat.Intent, conv chat.ConversationContext) conversation.Update {
	update := conversation.Update{UserIntent: &in}

	topic := intent.Topic(userMessage, in)
	if topic != "" {
		update.CurrentTopic = &topic
	}

	if in != chat.IntentGreeting && in != chat.IntentUnknown && in != chat.IntentGeneral {
		asked := string(in)
		update.LastAskedAbout = &asked
	}

	return update
}

// structuredResponse is the deterministic path: context-aware answers first,
// then follow-up elaborations, then intent templates.
func (g *Generator) structuredResponse(userMessage string, conv chat.ConversationContext, in chat.Intent, info chat.ContextualInfo) (text string) {
	defer func() {
		// Malformed knowledge entries must never take down a reply.
		if r := recover(); r != nil {
			log.Printf("[response] recovered from template failure: %v", r)
			text = apologyResponse()
		}
	}()

	if isContextAware(userMessage, info) {
		return g.contextAwareResponse(userMessage, info)
	}

	if intent.IsFollowUp(userMessage) && conv.LastAskedAbout != "" && conv.CurrentTopic != "" {
		return g.followUpResponse(userMessage, conv)
	}

	switch in {
	case chat.IntentGreeting:
		return g.greetingResponse()
	case chat.IntentSkills:
		return g.skillsResponse(userMessage)
	case chat.IntentExperience:
		return g.experienceResponse(userMessage)
	case chat.IntentProjects:
		return g.projectsResponse(userMessage)
	case chat.IntentEducation:
		return g.educationResponse()
	case chat.IntentContact:
		return g.contactResponse()
	case chat.IntentPersonal:
		return g.personalResponse()
	case chat.IntentGeneral:
		return g.generalResponse(userMessage)
	default:
		return g.unknownResponse()
	}
}

func (g *Generator) greetingResponse() string {
	info := g.kb.PersonalInfo()
	greetings := []string{
		fmt.Sprintf("Hi there! I'm %s, %s. How can I help you today?", info.Name, info.Title),
		fmt.Sprintf("Hello! I'm %s. Feel free to ask me about my skills, experience, or projects!", info.Name),
		fmt.Sprintf("Hey! Nice to meet you. I'm %s, and I'd love to tell you about my work in software development.", info.Name),
		fmt.Sprintf("Hi! I'm %s. What would you like to know about my background or experience?", info.Name),
	}
	return greetings[rand.Intn(len(greetings))]
}

func (g *Generator) skillsResponse(userMessage string) string {
	lower := strings.ToLower(userMessage)

	// Specific technology mention wins. "React" must match "React.js".
	for _, skill := range g.kb.Skills("") {
		base := strings.TrimSuffix(strings.ToLower(skill.Name), ".js")
		if strings.Contains(lower, base) {
			extra := skill.Description
			if extra != "" {
				extra += " "
			}
			return fmt.Sprintf("Yes, I'm proficient in %s! I have a %d%% proficiency level in this technology. %sWould you like to know about other skills in the %s category?",
				skill.Name, skill.Level, extra, skill.Category)
		}
	}

	if strings.Contains(lower, "frontend") || strings.Contains(lower, "front-end") {
		names := skillNames(g.kb.Skills(profile.CategoryFrontend))
		return fmt.Sprintf("I have strong frontend development skills! My main frontend technologies include: %s. I particularly enjoy working with modern frameworks and creating responsive user interfaces.", names)
	}
	if strings.Contains(lower, "backend") || strings.Contains(lower, "back-end") {
		names := skillNames(g.kb.Skills(profile.CategoryBackend))
		return fmt.Sprintf("I'm experienced in backend development with technologies like: %s. I enjoy building scalable APIs and working with databases.", names)
	}
	if strings.Contains(lower, "database") {
		names := skillNames(g.kb.Skills(profile.CategoryDatabase))
		return fmt.Sprintf("I work with various database technologies including: %s. I have experience with both SQL and NoSQL databases.", names)
	}

	topSkills := g.kb.TopSkills(8)
	stats := g.kb.Stats()
	return fmt.Sprintf("I have expertise in %d different technologies! My top skills include: %s. I'm particularly strong in %s development. What specific technology would you like to know more about?",
		stats.TotalSkills, skillNames(topSkills), strings.Join(stats.SkillCategories, ", "))
}

func (g *Generator) experienceResponse(userMessage string) string {
	lower := strings.ToLower(userMessage)
	experiences := g.kb.Experience()

	for _, exp := range experiences {
		if mentionsCompany(lower, exp.Company) {
			achievements := exp.Achievements
			if len(achievements) > 2 {
				achievements = achievements[:2]
			}
			skills := exp.Skills
			if len(skills) > 4 {
				skills = skills[:4]
			}
			return fmt.Sprintf("Yes, I worked at %s as %s (%s). %s Some key achievements include: %s. I used technologies like %s.",
				exp.Company, exp.Title, exp.Period, exp.Description,
				strings.Join(achievements, ", "), strings.Join(skills, ", "))
		}
	}

	if strings.Contains(lower, "current") || strings.Contains(lower, "recent") || strings.Contains(lower, "now") {
		if current := g.kb.CurrentExperience(); len(current) > 0 {
			exp := current[0]
			skills := exp.Skills
			if len(skills) > 3 {
				skills = skills[:3]
			}
			achievement := "delivering on my team's goals"
			if len(exp.Achievements) > 0 {
				achievement = exp.Achievements[0]
			}
			return fmt.Sprintf("Currently, I'm working as %s at %s. %s I'm focusing on %s and have achieved %s.",
				exp.Title, exp.Company, exp.Description, strings.Join(skills, ", "), achievement)
		}
	}

	var companies []string
	for _, exp := range experiences {
		companies = append(companies, exp.Company)
	}
	return fmt.Sprintf("I have %s years of professional experience in software development. I've worked at companies including %s. My experience spans full-stack development, with a focus on modern web technologies and scalable applications. Would you like to know more about any specific role?",
		estimateYears(len(experiences)), strings.Join(companies, ", "))
}

func (g *Generator) projectsResponse(userMessage string) string {
	lower := strings.ToLower(userMessage)
	projects := g.kb.Projects()

	techKeywords := []string{"react", "next", "node", "python", "javascript", "typescript", "ai", "ml"}
	for _, tech := range techKeywords {
		if !strings.Contains(lower, tech) {
			continue
		}
		if related := g.kb.ProjectsByTechnology(tech); len(related) > 0 {
			p := related[0]
			highlight := ""
			if len(p.Highlights) > 0 {
				highlight = " " + p.Highlights[0] + "."
			}
			var where []string
			if p.LiveURL != "" {
				where = append(where, "live")
			}
			if p.GitHubURL != "" {
				where = append(where, "on GitHub")
			}
			suffix := ""
			if len(where) > 0 {
				suffix = " You can check it out " + strings.Join(where, " and ") + "."
			}
			return fmt.Sprintf("I've built several projects using %s! One notable project is %q - %s.%s%s",
				tech, p.Title, p.Description, highlight, suffix)
		}
	}

	if strings.Contains(lower, "web") || strings.Contains(lower, "website") {
		if webProjects := g.kb.ProjectsByCategory("web"); len(webProjects) > 0 {
			if len(webProjects) > 3 {
				webProjects = webProjects[:3]
			}
			var names []string
			for _, p := range webProjects {
				names = append(names, p.Title)
			}
			return fmt.Sprintf("I've developed several web applications including: %s. These projects showcase my skills in modern web development, responsive design, and user experience. Which project would you like to know more about?",
				strings.Join(names, ", "))
		}
	}

	featured := projects
	if len(featured) > 3 {
		featured = featured[:3]
	}
	var names []string
	for _, p := range featured {
		names = append(names, fmt.Sprintf("%q", p.Title))
	}
	return fmt.Sprintf("I've worked on %d projects that demonstrate my technical skills! Some highlights include: %s. These projects span web development, AI/ML, and full-stack applications. Each project taught me something new and helped me grow as a developer. What type of project interests you most?",
		len(projects), strings.Join(names, ", "))
}

func (g *Generator) educationResponse() string {
	edu := g.kb.Education()
	return fmt.Sprintf("I'm pursuing my %s in %s at %s, %s. Currently %s. My studies have given me a strong foundation in computer science principles, algorithms, and software engineering practices.",
		edu.Degree, edu.Specialization, edu.University, edu.Location, edu.Status)
}

func (g *Generator) contactResponse() string {
	contact := g.kb.Contact()
	info := g.kb.PersonalInfo()
	return fmt.Sprintf("I'm %s and would love to connect! You can reach me at %s. I'm based in %s. You can also find me on GitHub (%s) or LinkedIn (%s). Feel free to reach out for collaboration opportunities or just to chat about technology!",
		info.Availability, contact.Email, contact.Location,
		contact.SocialLinks.GitHub, contact.SocialLinks.LinkedIn)
}

func (g *Generator) personalResponse() string {
	info := g.kb.PersonalInfo()
	interests := info.Interests
	if len(interests) > 3 {
		interests = interests[:3]
	}
	return fmt.Sprintf("I'm %s, a %s based in %s. %s I'm passionate about %s and always excited to work on challenging projects that make a difference. What would you like to know more about?",
		info.Name, info.Title, info.Location, info.Bio, strings.Join(interests, ", "))
}

func (g *Generator) generalResponse(userMessage string) string {
	results := g.kb.Search(userMessage)
	if len(results) == 0 {
		// The full sentence rarely matches verbatim; retry word by word.
		for _, word := range significantWords(userMessage) {
			if results = g.kb.Search(word); len(results) > 0 {
				break
			}
		}
	}
	if len(results) == 0 {
		return g.unknownResponse()
	}

	top := results[0]
	switch top.Type {
	case knowledge.ResultSkill:
		skill := top.Data.(profile.Skill)
		description := skill.Description
		if description == "" {
			description = "It's one of my key skills."
		}
		return fmt.Sprintf("I found information about %s! I have %d%% proficiency in this %s technology. %s",
			skill.Name, skill.Level, skill.Category, description)
	case knowledge.ResultExperience:
		exp := top.Data.(profile.Experience)
		return fmt.Sprintf("That relates to my experience at %s! I worked as %s where %s",
			exp.Company, exp.Title, exp.Description)
	case knowledge.ResultProject:
		p := top.Data.(profile.Project)
		return fmt.Sprintf("I have a project related to that: %q - %s", p.Title, p.Description)
	case knowledge.ResultPersonal:
		return fmt.Sprintf("That's about me! %s", g.kb.PersonalInfo().Bio)
	default:
		return g.unknownResponse()
	}
}

func (g *Generator) unknownResponse() string {
	suggestions := []string{
		"I'd be happy to tell you about my skills, experience, or projects!",
		"You can ask me about my technical expertise, work background, or recent projects.",
		"Feel free to ask about my programming skills, professional experience, or portfolio projects.",
		"I can share information about my education, technical skills, or career journey.",
	}
	suggestion := suggestions[rand.Intn(len(suggestions))]
	return fmt.Sprintf("I'm not sure I understand that question completely, but %s What would you like to know?", suggestion)
}

// apologyResponse is the single generic answer for unexpected internal
// failures; this path never throws past the message handler.
func apologyResponse() string {
	return "I'm sorry, I encountered an issue processing your message. Could you please try asking again? I'm here to help with questions about my skills, experience, and projects!"
}

// AIStatus reports the provider status for the status endpoint.
func (g *Generator) AIStatus() ai.Status {
	return g.aiSvc.GetStatus()
}

// TestAIConnection verifies the provider credential with one round trip.
func (g *Generator) TestAIConnection(ctx context.Context) bool {
	return g.aiSvc.IsAvailable() && g.aiSvc.TestConnection(ctx)
}

func skillNames(skills []profile.Skill) string {
	var names []string
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// stopwords are filler tokens excluded from word-level knowledge lookups.
var stopwords = map[string]bool{
	"what": true, "when": true, "where": true, "which": true, "about": true,
	"your": true, "yours": true, "this": true, "that": true, "with": true,
	"have": true, "does": true, "tell": true, "think": true, "know": true,
	"more": true, "some": true, "work": true, "like": true,
}

// significantWords extracts lookup-worthy tokens from a free-text question.
func significantWords(message string) []string {
	fields := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	var out []string
	for _, w := range fields {
		if len(w) >= 4 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// mentionsCompany matches an employer either by full name or by any
// significant word of the question appearing in the company name.
func mentionsCompany(lowerMessage, company string) bool {
	lowerCompany := strings.ToLower(company)
	if strings.Contains(lowerMessage, lowerCompany) {
		return true
	}
	for _, word := range significantWords(lowerMessage) {
		if strings.Contains(lowerCompany, word) {
			return true
		}
	}
	return false
}

// estimateYears is a rough figure from role count; period strings are too
// free-form to parse reliably.
func estimateYears(roles int) string {
	years := float64(roles) * 1.5
	if years < 2 {
		years = 2
	}
	if years == float64(int(years)) {
		return fmt.Sprintf("%d", int(years))
	}
	return fmt.Sprintf("%.1f", years)
}
