package analysis

import "regexp"

// Pattern tables are compiled once at package init and never mutated, so every
// extractor can share them across concurrent requests.

// Skill category names, in declaration order.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryDatabases   = "databases"
	CategoryCloud       = "cloud"
	CategoryTools       = "tools"
	CategorySoftSkills  = "softSkills"
)

type skillCategory struct {
	name     string
	patterns []*regexp.Regexp
	pick     func(*SkillSet) *[]string
}

// Keywords are regex fragments; each is wrapped in word boundaries.
var skillCategories = []skillCategory{
	{
		name: CategoryProgramming,
		patterns: wordPatterns(
			"javascript", "typescript", "python", "java", `c\+\+`, "c#", "ruby", "php",
			"swift", "kotlin", "go", "golang", "rust", "scala", `r\b`, "matlab", "perl",
			"shell", "bash", "powershell", "sql", "html", "css", "sass", "less", "xml",
			"json", "yaml",
		),
		pick: func(s *SkillSet) *[]string { return &s.Programming },
	},
	{
		name: CategoryFrameworks,
		patterns: wordPatterns(
			"react", "angular", "vue", "svelte", `next\.?js`, "nuxt", `node\.?js`, "express",
			"django", "flask", "fastapi", "spring", "laravel", "rails", `asp\.net`, `\.net`,
			"flutter", "react native", "electron", "jquery", "bootstrap", "tailwind", "material.?ui",
		),
		pick: func(s *SkillSet) *[]string { return &s.Frameworks },
	},
	{
		name: CategoryDatabases,
		patterns: wordPatterns(
			"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch", "cassandra",
			"oracle", "sql server", "sqlite", "dynamodb", "firebase", "supabase", "neo4j",
		),
		pick: func(s *SkillSet) *[]string { return &s.Databases },
	},
	{
		name: CategoryCloud,
		patterns: wordPatterns(
			"aws", "amazon web services", "azure", "google cloud", "gcp", "heroku", "vercel",
			"netlify", "digitalocean", "cloudflare", "docker", "kubernetes", "k8s", "terraform",
			"jenkins", "ci/cd", "github actions", "gitlab",
		),
		pick: func(s *SkillSet) *[]string { return &s.Cloud },
	},
	{
		name: CategoryTools,
		patterns: wordPatterns(
			"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "figma",
			"sketch", "adobe", "photoshop", "illustrator", "vs code", "intellij", "postman",
			"swagger", "webpack", "babel", "npm", "yarn", "pip",
		),
		pick: func(s *SkillSet) *[]string { return &s.Tools },
	},
	{
		name: CategorySoftSkills,
		patterns: wordPatterns(
			"leadership", "communication", "teamwork", "collaboration", "problem.?solving",
			"analytical", "creative", "innovative", "agile", "scrum", "project management",
			"time management", "critical thinking", "adaptable", "flexible",
		),
		pick: func(s *SkillSet) *[]string { return &s.SoftSkills },
	},
}

// popularSkills is the reference list for recommended skills, in display order.
var popularSkills = []string{
	"React", "Node.js", "Python", "AWS", "Docker", "Kubernetes", "TypeScript",
	"PostgreSQL", "MongoDB", "Git", "CI/CD", "REST APIs", "GraphQL", "Agile",
	"Scrum", "Leadership", "Communication",
}

type actionVerb struct {
	verb    string
	pattern *regexp.Regexp
}

var actionVerbs = buildVerbs(
	"achieved", "accomplished", "administered", "analyzed", "architected", "automated",
	"built", "collaborated", "conducted", "configured", "coordinated", "created",
	"delivered", "deployed", "designed", "developed", "directed", "documented",
	"engineered", "enhanced", "established", "executed", "expanded", "facilitated",
	"formulated", "generated", "guided", "implemented", "improved", "increased",
	"initiated", "integrated", "introduced", "launched", "led", "managed", "maintained",
	"mentored", "migrated", "modeled", "negotiated", "optimized", "orchestrated",
	"organized", "oversaw", "pioneered", "planned", "presented", "prioritized",
	"produced", "programmed", "reduced", "refactored", "researched", "resolved",
	"restructured", "reviewed", "scaled", "simplified", "solved", "spearheaded",
	"standardized", "streamlined", "strengthened", "supervised", "supported", "tested",
	"trained", "transformed", "troubleshot", "upgraded", "utilized", "validated", "wrote",
)

// Section names, in declaration order.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionPublications   = "publications"
	SectionLanguages      = "languages"
	SectionReferences     = "references"
	SectionVolunteer      = "volunteer"
)

type sectionPattern struct {
	name    string
	pattern *regexp.Regexp
	pick    func(*SectionMap) *bool
}

var sectionPatterns = []sectionPattern{
	{SectionSummary, regexp.MustCompile(`(?i)(?:summary|objective|profile|about\s*me)`), func(m *SectionMap) *bool { return &m.Summary }},
	{SectionExperience, regexp.MustCompile(`(?i)(?:experience|employment|work\s*history|professional\s*experience)`), func(m *SectionMap) *bool { return &m.Experience }},
	{SectionEducation, regexp.MustCompile(`(?i)(?:education|academic|qualifications|degree)`), func(m *SectionMap) *bool { return &m.Education }},
	{SectionSkills, regexp.MustCompile(`(?i)(?:skills|technical\s*skills|competencies|expertise)`), func(m *SectionMap) *bool { return &m.Skills }},
	{SectionProjects, regexp.MustCompile(`(?i)(?:projects|portfolio|personal\s*projects)`), func(m *SectionMap) *bool { return &m.Projects }},
	{SectionCertifications, regexp.MustCompile(`(?i)(?:certifications?|certificates?|licenses?|credentials?)`), func(m *SectionMap) *bool { return &m.Certifications }},
	{SectionAwards, regexp.MustCompile(`(?i)(?:awards?|honors?|achievements?|recognition)`), func(m *SectionMap) *bool { return &m.Awards }},
	{SectionPublications, regexp.MustCompile(`(?i)(?:publications?|papers?|research)`), func(m *SectionMap) *bool { return &m.Publications }},
	{SectionLanguages, regexp.MustCompile(`(?i)(?:languages?|linguistic)`), func(m *SectionMap) *bool { return &m.Languages }},
	{SectionReferences, regexp.MustCompile(`(?i)(?:references?|recommendations?)`), func(m *SectionMap) *bool { return &m.References }},
	{SectionVolunteer, regexp.MustCompile(`(?i)(?:volunteer|community|extracurricular)`), func(m *SectionMap) *bool { return &m.Volunteer }},
}

// Contact patterns. The phone pattern is deliberately permissive and also
// matches dates, IDs and other digit runs.
var (
	reEmail    = regexp.MustCompile(`(?i)[\w.-]+@[\w.-]+\.\w+`)
	rePhone    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(?\d{2,4}\)?[-.\s]?)?\d{3,5}[-.\s]?\d{3,5}[-.\s]?\d{0,4}`)
	reLinkedIn = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin:?\s*)[\w-]+`)
	reGitHub   = regexp.MustCompile(`(?i)(?:github\.com/|github:?\s*)[\w-]+`)
	reWebsite  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[\w-]+\.[\w.-]+(?:/[\w.-]*)?`)
	reNameWord = regexp.MustCompile(`^[A-Za-z.-]+$`)
)

// Quantifiable patterns run against original-case text.
var quantifiablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?(?:k|m|b)?`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|months?)`),
	regexp.MustCompile(`(?i)\d+\+?\s*(?:projects?|clients?|users?|customers?|team\s*members?)`),
}

var degreeKeywords = []string{
	"bachelor", "master", "ph.d", "phd", "doctorate", "diploma", "b.s", "bs", "m.s", "ms",
	"b.a", "ba", "m.a", "ma", "mba", "b.tech", "btech", "m.tech", "mtech", "b.e", "be",
	"m.e", "me", "b.sc", "bsc", "m.sc", "msc", "b.com", "bcom", "m.com", "mcom", "bca",
	"mca", "b.eng", "beng", "m.eng", "meng",
}

var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "iit", "nit", "bits", "iiit",
}

// fieldKeywords are matched and reported on each entry but never gate inclusion.
var fieldKeywords = []string{
	"computer science", "engineering", "information technology", "software", "electronics",
	"mechanical", "electrical", "civil", "business", "commerce", "mathematics", "physics",
	"chemistry", "biology", "economics", "finance", "marketing", "management",
}

var (
	reEducationInline = regexp.MustCompile(`(?i)(?:bachelor'?s?|master'?s?|ph\.?d\.?|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|mba|b\.?tech|m\.?tech|b\.?e\.?|m\.?e\.?)\s+(?:in|of)?\s+[\w\s]+`)
	reLeadingBullet   = regexp.MustCompile(`^[•\-–—*|►▪]+\s*`)
)

var (
	reSentenceBreak   = regexp.MustCompile(`[.!?]+`)
	highlightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|grew|saved|generated|delivered|achieved|led|managed)`),
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$[\d,]+`),
		regexp.MustCompile(`(?i)\d+\s*(?:years?|months?|team|people|projects?|clients?|users?)`),
	}
)

func wordPatterns(keywords ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(keywords))
	for i, k := range keywords {
		out[i] = regexp.MustCompile(`(?i)\b` + k + `\b`)
	}
	return out
}

func buildVerbs(verbs ...string) []actionVerb {
	out := make([]actionVerb, len(verbs))
	for i, v := range verbs {
		out[i] = actionVerb{verb: v, pattern: regexp.MustCompile(`(?i)\b` + v + `\b`)}
	}
	return out
}
