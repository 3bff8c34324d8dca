package ai

import (
	"fmt"
	"strings"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/chat"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
)

// BuildSystemPrompt composes the persona preamble plus an intent-specific
// knowledge block from the portfolio dataset.
func BuildSystemPrompt(data profile.Data, in chat.Intent) string {
	base := buildBasePrompt(data.PersonalInfo)

	switch in {
	case chat.IntentSkills:
		return base + "\n\nSKILLS (respond about these when asked about technical skills):\n" +
			formatSkillsByCategory(data.Skills) +
			"\n\nFocus on discussing specific technologies, proficiency levels, and how you use them in projects."
	case chat.IntentExperience:
		return base + "\n\nWORK EXPERIENCE:\n" + formatExperience(data.Experience) +
			"\n\nFocus on specific roles, responsibilities, achievements, and technologies used."
	case chat.IntentProjects:
		return base + "\n\nPROJECTS:\n" + formatProjects(data.Projects) +
			"\n\nFocus on project details, technologies used, challenges solved, and outcomes."
	case chat.IntentEducation:
		return base + "\n\nFocus on educational background, relevant coursework, and how it relates to software development."
	case chat.IntentContact:
		return base + "\n\nFocus on availability, preferred contact methods, and collaboration opportunities."
	case chat.IntentPersonal:
		return base + "\n\nFocus on background, interests, career journey, and what drives you as a developer."
	default:
		return base + "\n\nProvide helpful information based on the user's question, drawing from skills, experience, projects, or personal background as relevant."
	}
}

func buildBasePrompt(info profile.PersonalInfo) string {
	return fmt.Sprintf(`You are %s's AI assistant representing him on his portfolio website. You should respond as if you ARE %s, using first person ("I", "my", "me").

PERSONALITY & TONE:
- Be friendly, professional, and enthusiastic about technology
- Show passion for software development and learning
- Be conversational but informative
- Keep responses concise but helpful (2-4 sentences typically)
- Use a confident but humble tone

PERSONAL INFORMATION:
Name: %s
Title: %s
Location: %s
Bio: %s
Availability: %s
Interests: %s

EDUCATION:
%s in %s
%s, %s
Status: %s

CONTACT:
Email: %s
GitHub: %s
LinkedIn: %s`,
		info.Name, info.Name,
		info.Name,
		info.Title,
		info.Location,
		info.Bio,
		info.Availability,
		strings.Join(info.Interests, ", "),
		info.Education.Degree, info.Education.Specialization,
		info.Education.University, info.Education.Location,
		info.Education.Status,
		info.Email,
		info.SocialLinks.GitHub,
		info.SocialLinks.LinkedIn,
	)
}

func formatSkillsByCategory(skills []profile.Skill) string {
	grouped := make(map[profile.SkillCategory][]profile.Skill)
	var order []profile.SkillCategory
	for _, s := range skills {
		if _, seen := grouped[s.Category]; !seen {
			order = append(order, s.Category)
		}
		grouped[s.Category] = append(grouped[s.Category], s)
	}

	var lines []string
	for _, category := range order {
		var entries []string
		for _, s := range grouped[category] {
			entries = append(entries, fmt.Sprintf("%s (%d%%)", s.Name, s.Level))
		}
		lines = append(lines, fmt.Sprintf("%s: %s",
			strings.ToUpper(string(category)), strings.Join(entries, ", ")))
	}
	return strings.Join(lines, "\n")
}

func formatExperience(experiences []profile.Experience) string {
	var blocks []string
	for _, exp := range experiences {
		achievements := exp.Achievements
		if len(achievements) > 2 {
			achievements = achievements[:2]
		}
		blocks = append(blocks, fmt.Sprintf(`%s at %s (%s)
  - %s
  - Key achievements: %s
  - Technologies: %s`,
			exp.Title, exp.Company, exp.Period,
			exp.Description,
			strings.Join(achievements, ", "),
			strings.Join(exp.Skills, ", ")))
	}
	return strings.Join(blocks, "\n\n")
}

func formatProjects(projects []profile.Project) string {
	var blocks []string
	for _, p := range projects {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s\n  - Technologies: %s", p.Title, p.Description, strings.Join(p.Tags, ", "))
		if len(p.Highlights) > 0 {
			fmt.Fprintf(&b, "\n  - Highlights: %s", strings.Join(p.Highlights, ", "))
		}
		if p.LiveURL != "" {
			fmt.Fprintf(&b, "\n  - Live: %s", p.LiveURL)
		}
		if p.GitHubURL != "" {
			fmt.Fprintf(&b, "\n  - GitHub: %s", p.GitHubURL)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
