// Package knowledge is the deterministic, read-only query surface over the
// seeded portfolio dataset. Everything here is side-effect free and cannot
// fail beyond returning no results.
package knowledge

import (
	"sort"
	"strings"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
)

// Base wraps the immutable profile data.
type Base struct {
	data profile.Data
}

// New returns a Base over the supplied dataset.
func New(data profile.Data) *Base {
	return &Base{data: data}
}

// PersonalInfo returns the singleton biography record.
func (b *Base) PersonalInfo() profile.PersonalInfo {
	return b.data.PersonalInfo
}

// Skills returns all skills, or only those in the given category.
func (b *Base) Skills(category profile.SkillCategory) []profile.Skill {
	if category == "" {
		return append([]profile.Skill(nil), b.data.Skills...)
	}
	var out []profile.Skill
	for _, s := range b.data.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// SkillsByLevel returns skills whose level falls inside [min, max].
func (b *Base) SkillsByLevel(min, max int) []profile.Skill {
	var out []profile.Skill
	for _, s := range b.data.Skills {
		if s.Level >= min && s.Level <= max {
			out = append(out, s)
		}
	}
	return out
}

// TopSkills returns up to limit skills sorted descending by level, ties in
// original order.
func (b *Base) TopSkills(limit int) []profile.Skill {
	if limit <= 0 {
		limit = 10
	}
	sorted := append([]profile.Skill(nil), b.data.Skills...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level > sorted[j].Level
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Experience returns all roles in seed order.
func (b *Base) Experience() []profile.Experience {
	return append([]profile.Experience(nil), b.data.Experience...)
}

// ExperienceByCompany returns roles whose company name contains the query,
// case-insensitive.
func (b *Base) ExperienceByCompany(company string) []profile.Experience {
	needle := strings.ToLower(company)
	var out []profile.Experience
	for _, e := range b.data.Experience {
		if strings.Contains(strings.ToLower(e.Company), needle) {
			out = append(out, e)
		}
	}
	return out
}

// CurrentExperience returns roles whose period mentions "present".
func (b *Base) CurrentExperience() []profile.Experience {
	var out []profile.Experience
	for _, e := range b.data.Experience {
		if strings.Contains(strings.ToLower(e.Period), "present") {
			out = append(out, e)
		}
	}
	return out
}

// Projects returns all projects in seed order.
func (b *Base) Projects() []profile.Project {
	return append([]profile.Project(nil), b.data.Projects...)
}

// ProjectsByCategory returns projects with a tag containing the query.
func (b *Base) ProjectsByCategory(category string) []profile.Project {
	needle := strings.ToLower(category)
	var out []profile.Project
	for _, p := range b.data.Projects {
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ProjectsByTechnology returns projects that used the given technology,
// matching both the technologies list and the tags.
func (b *Base) ProjectsByTechnology(tech string) []profile.Project {
	needle := strings.ToLower(tech)
	var out []profile.Project
	for _, p := range b.data.Projects {
		if projectUsesTechnology(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func projectUsesTechnology(p profile.Project, needle string) bool {
	for _, t := range p.Technologies {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// RelatedSkills returns up to limit other skills sharing a category with the
// named skill. Unknown names return nothing.
func (b *Base) RelatedSkills(name string, limit int) []profile.Skill {
	needle := strings.ToLower(name)
	var category profile.SkillCategory
	found := false
	for _, s := range b.data.Skills {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			category = s.Category
			needle = strings.ToLower(s.Name)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	var out []profile.Skill
	for _, s := range b.data.Skills {
		if s.Category != category || strings.ToLower(s.Name) == needle {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// SearchSkills returns skills whose name, description or category contains
// the query.
func (b *Base) SearchSkills(query string) []profile.Skill {
	needle := strings.ToLower(query)
	var out []profile.Skill
	for _, s := range b.data.Skills {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Description), needle) ||
			strings.Contains(strings.ToLower(string(s.Category)), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Education returns the education record.
func (b *Base) Education() profile.Education {
	return b.data.PersonalInfo.Education
}

// ContactInfo is the reachability subset of the personal record.
type ContactInfo struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Location    string              `json:"location"`
	SocialLinks profile.SocialLinks `json:"socialLinks"`
}

// Contact returns the contact subset of the personal record.
func (b *Base) Contact() ContactInfo {
	p := b.data.PersonalInfo
	return ContactInfo{
		Name:        p.Name,
		Email:       p.Email,
		Location:    p.Location,
		SocialLinks: p.SocialLinks,
	}
}

// SummaryStats aggregates headline numbers about the dataset.
type SummaryStats struct {
	TotalSkills       int                          `json:"totalSkills"`
	TotalExperience   int                          `json:"totalExperience"`
	TotalProjects     int                          `json:"totalProjects"`
	SkillCategories   []string                     `json:"skillCategories"`
	AverageSkillLevel int                          `json:"averageSkillLevel"`
	CategoryCounts    map[profile.SkillCategory]int `json:"topSkillCategories"`
}

// Stats computes summary statistics over the dataset.
func (b *Base) Stats() SummaryStats {
	counts := make(map[profile.SkillCategory]int)
	var categories []string
	total := 0
	for _, s := range b.data.Skills {
		if counts[s.Category] == 0 {
			categories = append(categories, string(s.Category))
		}
		counts[s.Category]++
		total += s.Level
	}
	avg := 0
	if len(b.data.Skills) > 0 {
		avg = (total + len(b.data.Skills)/2) / len(b.data.Skills)
	}
	return SummaryStats{
		TotalSkills:       len(b.data.Skills),
		TotalExperience:   len(b.data.Experience),
		TotalProjects:     len(b.data.Projects),
		SkillCategories:   categories,
		AverageSkillLevel: avg,
		CategoryCounts:    counts,
	}
}

// Data exposes the full dataset for prompt building.
func (b *Base) Data() profile.Data {
	return b.data
}
