package response

import (
	"fmt"
	"strings"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/analysis/intent"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
)

// isContextAware reports whether the message leans on earlier turns ("tell me
// more", "what about...") and the history actually has something to lean on.
func isContextAware(userMessage string, info chat.ContextualInfo) bool {
	if !intent.ReferencesContext(userMessage) {
		return false
	}
	return len(info.RecentTopics) > 0 || info.Flow == chat.FlowFollowUp
}

// contextAwareResponse resolves pronouns and elaboration requests against the
// recent-turn digest.
func (g *Generator) contextAwareResponse(userMessage string, info chat.ContextualInfo) string {
	lower := strings.ToLower(userMessage)

	if (strings.Contains(lower, "that") || strings.Contains(lower, "it")) && len(info.MentionedItems) > 0 {
		lastMentioned := info.MentionedItems[len(info.MentionedItems)-1]
		for _, topic := range info.RecentTopics {
			switch topic {
			case "skills":
				return g.skillContextResponse(lastMentioned)
			case "experience":
				return g.experienceContextResponse(lastMentioned)
			case "projects":
				return g.projectContextResponse(lastMentioned)
			}
		}
	}

	if strings.Contains(lower, "more") || strings.Contains(lower, "detail") {
		return g.moreInfoResponse(info.RecentTopics)
	}

	if strings.Contains(lower, "what about") || strings.Contains(lower, "how about") {
		return g.whatAboutResponse(userMessage, info)
	}

	return "Based on our conversation, I can provide more specific information. Could you clarify what aspect you'd like to know more about - my skills, experience, or projects?"
}

// skillContextResponse elaborates on one previously mentioned technology.
func (g *Generator) skillContextResponse(item string) string {
	for _, skill := range g.kb.Skills("") {
		if !strings.Contains(strings.ToLower(skill.Name), strings.ToLower(item)) {
			continue
		}
		related := g.relatedSkills(skill, 3)
		extra := skill.Description
		if extra != "" {
			extra += " "
		}
		out := fmt.Sprintf("Regarding %s - I have %d%% proficiency in it. %sIt's part of my %s stack.",
			skill.Name, skill.Level, extra, skill.Category)
		if related != "" {
			out += fmt.Sprintf(" I often use it alongside %s.", related)
		}
		return out
	}
	return fmt.Sprintf("I mentioned %s earlier. It's one of the technologies I work with regularly. Would you like to know about related skills or see projects where I used it?", item)
}

func (g *Generator) experienceContextResponse(item string) string {
	for _, exp := range g.kb.Experience() {
		for _, skill := range exp.Skills {
			if strings.EqualFold(skill, item) {
				return fmt.Sprintf("I used %s during my time at %s as %s. %s",
					item, exp.Company, exp.Title, exp.Description)
			}
		}
	}
	if current := g.kb.CurrentExperience(); len(current) > 0 {
		exp := current[0]
		return fmt.Sprintf("In my current role as %s at %s, I work with technologies like %s. %s",
			exp.Title, exp.Company, strings.Join(truncate(exp.Skills, 3), ", "), exp.Description)
	}
	return "I can tell you more about how that fits into my work experience. Which role are you curious about?"
}

func (g *Generator) projectContextResponse(item string) string {
	if projects := g.kb.ProjectsByTechnology(item); len(projects) > 0 {
		p := projects[0]
		highlight := ""
		if len(p.Highlights) > 0 {
			highlight = " " + p.Highlights[0] + "."
		}
		return fmt.Sprintf("I used %s in my project %q - %s.%s", item, p.Title, p.Description, highlight)
	}
	return fmt.Sprintf("I haven't built a dedicated project around %s yet, but I'd be happy to tell you about the projects I have worked on!", item)
}

// moreInfoResponse elaborates on whichever topic came up most recently.
func (g *Generator) moreInfoResponse(recentTopics []string) string {
	if len(recentTopics) == 0 {
		return "I'd be happy to go deeper! Are you interested in my skills, work experience, or projects?"
	}

	switch recentTopics[len(recentTopics)-1] {
	case "skills":
		top := g.kb.TopSkills(5)
		var details []string
		for _, s := range top {
			details = append(details, fmt.Sprintf("%s (%d%%)", s.Name, s.Level))
		}
		return fmt.Sprintf("To elaborate on my skills: my strongest technologies are %s. I keep these sharp through daily work and side projects. Any particular one you'd like to dig into?",
			strings.Join(details, ", "))
	case "experience":
		experiences := g.kb.Experience()
		if len(experiences) == 0 {
			return "I'd be happy to share more about my professional background!"
		}
		exp := experiences[0]
		achievement := ""
		if len(exp.Achievements) > 0 {
			achievement = " A highlight: " + exp.Achievements[0] + "."
		}
		return fmt.Sprintf("More about my experience: most recently I've been %s at %s. %s%s",
			exp.Title, exp.Company, exp.Description, achievement)
	case "projects":
		projects := g.kb.Projects()
		if len(projects) == 0 {
			return "I'd love to tell you more about my project work!"
		}
		p := projects[0]
		return fmt.Sprintf("Digging into my projects: %q is a good example - %s It's built with %s.",
			p.Title, p.Description, strings.Join(truncate(p.Tags, 4), ", "))
	default:
		return "I can share more details about my background, skills, or projects. What interests you most?"
	}
}

// whatAboutResponse reclassifies the remainder of a "what about X" question.
func (g *Generator) whatAboutResponse(userMessage string, info chat.ContextualInfo) string {
	lower := strings.ToLower(userMessage)
	remainder := lower
	for _, prefix := range []string{"what about", "how about"} {
		if idx := strings.Index(lower, prefix); idx >= 0 {
			remainder = strings.TrimSpace(lower[idx+len(prefix):])
			break
		}
	}

	if remainder == "" {
		return g.moreInfoResponse(info.RecentTopics)
	}

	switch intent.Classify(remainder) {
	case chat.IntentSkills:
		return g.skillsResponse(remainder)
	case chat.IntentExperience:
		return g.experienceResponse(remainder)
	case chat.IntentProjects:
		return g.projectsResponse(remainder)
	case chat.IntentEducation:
		return g.educationResponse()
	case chat.IntentContact:
		return g.contactResponse()
	default:
		return g.skillContextResponse(remainder)
	}
}

// followUpResponse answers "tell me more" style turns using the topic the
// user last asked about.
func (g *Generator) followUpResponse(userMessage string, conv chat.ConversationContext) string {
	lower := strings.ToLower(userMessage)
	lastTopic := conv.LastAskedAbout

	// Cross-topic follow-ups bridge from the previous subject.
	if lastTopic == "skills" && (strings.Contains(lower, "experience") || strings.Contains(lower, "work")) {
		if current := g.kb.CurrentExperience(); len(current) > 0 {
			exp := current[0]
			return fmt.Sprintf("I apply these skills in my current role as %s at %s, where I work with %s. %s",
				exp.Title, exp.Company, strings.Join(truncate(exp.Skills, 4), ", "), exp.Description)
		}
	}
	if strings.Contains(lower, "project") && (lastTopic == "skills" || lastTopic == "experience") {
		projects := g.kb.Projects()
		if len(projects) > 0 {
			p := projects[0]
			return fmt.Sprintf("I've put those skills to work in projects like %q - %s Would you like to hear about more projects?",
				p.Title, p.Description)
		}
	}

	switch lastTopic {
	case "skills":
		return g.extendedSkillsResponse(conv.CurrentTopic)
	case "experience":
		return g.extendedExperienceResponse()
	case "projects":
		return g.extendedProjectsResponse()
	default:
		return "I'd be happy to expand on that! Could you let me know whether you mean my skills, experience, or projects?"
	}
}

// extendedSkillsResponse drills into the specific technology carried in the
// current topic tag, for example "skills-react".
func (g *Generator) extendedSkillsResponse(currentTopic string) string {
	if tech, ok := strings.CutPrefix(currentTopic, "skills-"); ok {
		for _, skill := range g.kb.Skills("") {
			if !strings.Contains(strings.ToLower(skill.Name), tech) {
				continue
			}
			extra := skill.Description
			if extra != "" {
				extra += " "
			}
			out := fmt.Sprintf("Going deeper on %s: I'm at %d%% proficiency. %sI use it regularly in my %s work.",
				skill.Name, skill.Level, extra, skill.Category)
			if related := g.relatedSkills(skill, 3); related != "" {
				out += fmt.Sprintf(" Related technologies I pair it with: %s.", related)
			}
			return out
		}
	}

	top := g.kb.TopSkills(5)
	var details []string
	for _, s := range top {
		details = append(details, fmt.Sprintf("%s at %d%%", s.Name, s.Level))
	}
	return fmt.Sprintf("To expand on my skills: %s. Each of these I've used in real projects, not just tutorials. Want to hear where?",
		strings.Join(details, ", "))
}

func (g *Generator) extendedExperienceResponse() string {
	experiences := g.kb.Experience()
	if len(experiences) == 0 {
		return "I'd be glad to share more about my professional journey!"
	}

	var blocks []string
	for i, exp := range experiences {
		if i >= 2 {
			break
		}
		blocks = append(blocks, fmt.Sprintf("%s at %s (%s)", exp.Title, exp.Company, exp.Period))
	}
	latest := experiences[0]
	achievement := ""
	if len(latest.Achievements) > 0 {
		achievement = " One thing I'm proud of: " + latest.Achievements[0] + "."
	}
	return fmt.Sprintf("More on my experience: %s.%s Which role would you like the full story on?",
		strings.Join(blocks, "; "), achievement)
}

func (g *Generator) extendedProjectsResponse() string {
	projects := g.kb.Projects()
	if len(projects) == 0 {
		return "I'd love to walk you through my project work!"
	}

	p := projects[0]
	var parts []string
	parts = append(parts, fmt.Sprintf("Let me go deeper on %q: %s", p.Title, p.Description))
	if len(p.Highlights) > 0 {
		parts = append(parts, strings.Join(truncate(p.Highlights, 2), " "))
	}
	parts = append(parts, fmt.Sprintf("The stack: %s.", strings.Join(truncate(p.Tags, 5), ", ")))
	return strings.Join(parts, " ")
}

// relatedSkills names up to n other skills from the same category.
func (g *Generator) relatedSkills(skill profile.Skill, n int) string {
	var names []string
	for _, other := range g.kb.RelatedSkills(skill.Name, n) {
		names = append(names, other.Name)
	}
	return strings.Join(names, ", ")
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
