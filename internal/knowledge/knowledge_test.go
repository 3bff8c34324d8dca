package knowledge

import (
	"strings"
	"testing"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
)

func testBase(t *testing.T) *Base {
	t.Helper()
	data := profile.Seed()
	if err := profile.Validate(data); err != nil {
		t.Fatalf("seed data failed validation: %v", err)
	}
	return New(data)
}

func TestTopSkillsSortedDescending(t *testing.T) {
	kb := testBase(t)
	top := kb.TopSkills(5)
	if len(top) == 0 || len(top) > 5 {
		t.Fatalf("expected between 1 and 5 skills, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Level > top[i-1].Level {
			t.Fatalf("skills not sorted by level: %v before %v", top[i-1], top[i])
		}
	}
}

func TestSkillsByCategory(t *testing.T) {
	kb := testBase(t)
	for _, s := range kb.Skills(profile.CategoryFrontend) {
		if s.Category != profile.CategoryFrontend {
			t.Fatalf("expected only frontend skills, got %s in %s", s.Name, s.Category)
		}
	}
}

func TestCurrentExperienceMentionsPresent(t *testing.T) {
	kb := testBase(t)
	current := kb.CurrentExperience()
	if len(current) == 0 {
		t.Fatal("expected at least one current role in the seed data")
	}
	for _, e := range current {
		if !strings.Contains(strings.ToLower(e.Period), "present") {
			t.Fatalf("role at %s is not current: period %q", e.Company, e.Period)
		}
	}
}

func TestSkillsByLevelBounds(t *testing.T) {
	kb := testBase(t)
	for _, s := range kb.SkillsByLevel(80, 100) {
		if s.Level < 80 || s.Level > 100 {
			t.Fatalf("skill %s level %d outside [80,100]", s.Name, s.Level)
		}
	}
}

func TestRelatedSkillsShareCategory(t *testing.T) {
	kb := testBase(t)
	related := kb.RelatedSkills("react", 3)
	if len(related) == 0 || len(related) > 3 {
		t.Fatalf("expected 1 to 3 related skills, got %d", len(related))
	}
	for _, s := range related {
		if s.Category != profile.CategoryFrontend {
			t.Fatalf("expected frontend skills, got %s in %s", s.Name, s.Category)
		}
		if s.Name == "React.js" {
			t.Fatal("related skills must not include the skill itself")
		}
	}
	if kb.RelatedSkills("nonexistent", 3) != nil {
		t.Fatal("unknown skill should have no related skills")
	}
}

func TestSearchRanksNameMatchesFirst(t *testing.T) {
	kb := testBase(t)
	results := kb.Search("React")
	if len(results) == 0 {
		t.Fatal("expected results for 'React'")
	}
	for i := 1; i < len(results); i++ {
		if results[i].RelevanceScore > results[i-1].RelevanceScore {
			t.Fatalf("results not sorted by relevance at index %d", i)
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	kb := testBase(t)
	if results := kb.Search("nonexistent-token-xyz"); len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	kb := testBase(t)
	if results := kb.Search("   "); results != nil {
		t.Fatalf("expected nil results for blank query, got %v", results)
	}
}

func TestStatsAggregates(t *testing.T) {
	kb := testBase(t)
	stats := kb.Stats()
	if stats.TotalSkills == 0 || stats.TotalProjects == 0 || stats.TotalExperience == 0 {
		t.Fatalf("unexpected empty stats: %+v", stats)
	}
	if stats.AverageSkillLevel <= 0 || stats.AverageSkillLevel > 100 {
		t.Fatalf("average skill level out of range: %d", stats.AverageSkillLevel)
	}
}

func TestProjectsByTechnologyMatchesTags(t *testing.T) {
	kb := testBase(t)
	projects := kb.ProjectsByTechnology("react")
	if len(projects) == 0 {
		t.Fatal("expected at least one React project in the seed data")
	}
}
