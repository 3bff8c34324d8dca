package chat

// Intent is the coarse classification of what topic a user message is about.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentSkills     Intent = "skills"
	IntentExperience Intent = "experience"
	IntentProjects   Intent = "projects"
	IntentEducation  Intent = "education"
	IntentContact    Intent = "contact"
	IntentPersonal   Intent = "personal"
	IntentGeneral    Intent = "general"
	IntentUnknown    Intent = "unknown"
)
