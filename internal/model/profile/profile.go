package profile

// SkillCategory buckets skills for grouped presentation.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryDatabase SkillCategory = "database"
	CategoryRAG      SkillCategory = "rag"
	CategoryOther    SkillCategory = "other"
)

// PersonalInfo is the singleton biography record.
type PersonalInfo struct {
	Name         string      `json:"name" validate:"required"`
	Title        string      `json:"title" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	Location     string      `json:"location" validate:"required"`
	Availability string      `json:"availability"`
	Bio          string      `json:"bio" validate:"required"`
	Interests    []string    `json:"interests"`
	Education    Education   `json:"education"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

// Education describes the current degree program.
type Education struct {
	Degree         string `json:"degree" validate:"required"`
	Specialization string `json:"specialization"`
	University     string `json:"university" validate:"required"`
	Location       string `json:"location"`
	Status         string `json:"status"`
}

// SocialLinks holds public profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
}

// Skill is one technology with a self-assessed proficiency level.
type Skill struct {
	Name        string        `json:"name" validate:"required"`
	Category    SkillCategory `json:"category" validate:"required,oneof=frontend backend database rag other"`
	Level       int           `json:"level" validate:"min=0,max=100"`
	Description string        `json:"description,omitempty"`
}

// Experience is one professional role.
type Experience struct {
	ID           int      `json:"id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location"`
	Period       string   `json:"period" validate:"required"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Skills       []string `json:"skills"`
}

// Project is one portfolio entry.
type Project struct {
	ID           int      `json:"id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Tags         []string `json:"tags" validate:"min=1"`
	Technologies []string `json:"technologies,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty" validate:"omitempty,url"`
	GitHubURL    string   `json:"githubUrl,omitempty" validate:"omitempty,url"`
}

// Data aggregates the four load-once collections the engine answers from.
type Data struct {
	PersonalInfo PersonalInfo `json:"personalInfo" validate:"required"`
	Skills       []Skill      `json:"skills" validate:"min=1,dive"`
	Experience   []Experience `json:"experience" validate:"min=1,dive"`
	Projects     []Project    `json:"projects" validate:"min=1,dive"`
}
