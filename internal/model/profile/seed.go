package profile

import "github.com/go-playground/validator/v10"

// Seed returns the static portfolio dataset the assistant answers from. The
// records are fixed for the lifetime of the process; Validate runs once at
// startup so malformed entries fail fast instead of surfacing mid-chat.
func Seed() Data {
	return Data{
		PersonalInfo: PersonalInfo{
			Name:         "Mohd Uwaish",
			Title:        "Full-Stack Developer & AI Engineer",
			Email:        "mohd.uwaish@stud.uni-goettingen.de",
			Location:     "Göttingen, Germany",
			Availability: "open to working student roles and collaborations",
			Bio: "I build web applications end to end and specialize in retrieval-augmented " +
				"generation systems that ground language models in real data. I enjoy turning " +
				"research-grade NLP into products people actually use.",
			Interests: []string{
				"retrieval-augmented generation",
				"full-stack web development",
				"natural language processing",
				"open-source tooling",
			},
			Education: Education{
				Degree:         "M.Sc.",
				Specialization: "Applied Computer Science",
				University:     "Georg-August-Universität Göttingen",
				Location:       "Göttingen, Germany",
				Status:         "in progress",
			},
			SocialLinks: SocialLinks{
				GitHub:   "https://github.com/mohduwaish",
				LinkedIn: "https://www.linkedin.com/in/mohd-uwaish",
			},
		},
		Skills: []Skill{
			{Name: "React.js", Category: CategoryFrontend, Level: 90, Description: "Hooks, context, custom component libraries for production apps."},
			{Name: "Next.js", Category: CategoryFrontend, Level: 85, Description: "App-router sites with server components and API routes."},
			{Name: "JavaScript", Category: CategoryFrontend, Level: 88},
			{Name: "TypeScript", Category: CategoryFrontend, Level: 82},
			{Name: "Tailwind CSS", Category: CategoryFrontend, Level: 85},
			{Name: "HTML/CSS", Category: CategoryFrontend, Level: 92},
			{Name: "Streamlit", Category: CategoryFrontend, Level: 75, Description: "Rapid dashboards for ML experiments."},
			{Name: "Python", Category: CategoryBackend, Level: 92, Description: "Primary language for APIs, data pipelines and ML tooling."},
			{Name: "FastAPI", Category: CategoryBackend, Level: 84},
			{Name: "Django", Category: CategoryBackend, Level: 78},
			{Name: "Node.js", Category: CategoryBackend, Level: 80},
			{Name: "Express.js", Category: CategoryBackend, Level: 76},
			{Name: "GraphQL", Category: CategoryBackend, Level: 70},
			{Name: "REST API", Category: CategoryBackend, Level: 88},
			{Name: "PostgreSQL", Category: CategoryDatabase, Level: 82},
			{Name: "MongoDB", Category: CategoryDatabase, Level: 78},
			{Name: "PL/SQL", Category: CategoryDatabase, Level: 72},
			{Name: "LangChain", Category: CategoryRAG, Level: 86, Description: "Agent and retrieval pipelines over custom corpora."},
			{Name: "LangGraph", Category: CategoryRAG, Level: 75},
			{Name: "LlamaIndex", Category: CategoryRAG, Level: 74},
			{Name: "RAGAS", Category: CategoryRAG, Level: 70, Description: "Evaluation harnesses for retrieval quality."},
			{Name: "HuggingFace", Category: CategoryRAG, Level: 80},
			{Name: "PyTorch", Category: CategoryOther, Level: 76},
			{Name: "Scikit-Learn", Category: CategoryOther, Level: 78},
			{Name: "Docker", Category: CategoryOther, Level: 74},
		},
		Experience: []Experience{
			{
				ID:       1,
				Title:    "Student Assistant - Software Developer",
				Company:  "Niedersächsische Staats- und Universitätsbibliothek Göttingen",
				Location: "Göttingen, Germany",
				Period:   "Sep 2024 - Present",
				Description: "Developing retrieval and search tooling for digitized library collections, " +
					"connecting large language models to curated archival data.",
				Achievements: []string{
					"Built a RAG pipeline over digitized manuscripts that cut curator lookup time significantly",
					"Introduced automated evaluation of retrieval quality with RAGAS",
				},
				Skills: []string{"Python", "LangChain", "PostgreSQL", "FastAPI", "React.js"},
			},
			{
				ID:       2,
				Title:    "Student Assistant - Department of Economics",
				Company:  "Georg-August-Universität Göttingen",
				Location: "Göttingen, Germany",
				Period:   "Feb 2024 - Present",
				Description: "Supporting empirical research with data pipelines, web scrapers and " +
					"interactive dashboards for economic datasets.",
				Achievements: []string{
					"Automated a recurring data-collection workflow that previously took a full day per week",
					"Shipped Streamlit dashboards used in seminar teaching",
				},
				Skills: []string{"Python", "Pandas", "Streamlit", "PostgreSQL"},
			},
			{
				ID:       3,
				Title:    "Software Engineer",
				Company:  "Tata Consultancy Services Private Limited",
				Location: "Mumbai, India",
				Period:   "Sep 2021 - Apr 2023",
				Description: "Full-stack development of enterprise banking applications, from PL/SQL " +
					"backends to React frontends, in an agile delivery team.",
				Achievements: []string{
					"Optimized batch PL/SQL jobs, reducing nightly processing time by over 40%",
					"Led the migration of a legacy UI module to React",
					"Mentored two junior developers through onboarding",
				},
				Skills: []string{"JavaScript", "React.js", "PL/SQL", "REST API", "Oracle"},
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "DocTalk",
				Description: "a chat interface over arbitrary PDF collections using retrieval-augmented generation, with source citations for every answer",
				Tags:        []string{"ai", "rag", "web"},
				Technologies: []string{
					"Python", "LangChain", "FastAPI", "React.js", "PostgreSQL",
				},
				Highlights: []string{
					"Hybrid dense and keyword retrieval keeps answers grounded in the uploaded documents",
					"Streaming responses with per-chunk source attribution",
				},
				GitHubURL: "https://github.com/mohduwaish/doctalk",
			},
			{
				ID:          2,
				Title:       "Portfolio Site with AI Assistant",
				Description: "this portfolio itself: a Next.js site with an embedded conversational assistant that answers questions about my background",
				Tags:        []string{"web", "next", "ai"},
				Technologies: []string{
					"Next.js", "TypeScript", "Tailwind CSS",
				},
				Highlights: []string{
					"Works fully offline from structured data when no model credential is configured",
				},
				LiveURL:   "https://mohduwaish.dev",
				GitHubURL: "https://github.com/mohduwaish/portfolio",
			},
			{
				ID:          3,
				Title:       "PaperScout",
				Description: "a semantic search engine for economics working papers with weekly topic digests",
				Tags:        []string{"ai", "nlp", "search"},
				Technologies: []string{
					"Python", "HuggingFace", "LlamaIndex", "Streamlit",
				},
				Highlights: []string{
					"Sentence-transformer embeddings over 40k abstracts",
				},
				GitHubURL: "https://github.com/mohduwaish/paperscout",
			},
			{
				ID:          4,
				Title:       "NEET Study Tracker",
				Description: "a chapter-wise preparation tracker with MCQ logging and weekly review analytics",
				Tags:        []string{"web", "react"},
				Technologies: []string{
					"Next.js", "React.js", "MongoDB",
				},
				GitHubURL: "https://github.com/mohduwaish/neet-tracker",
			},
		},
	}
}

// Validate checks the dataset once at load time.
func Validate(data Data) error {
	return validator.New().Struct(data)
}
