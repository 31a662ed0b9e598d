package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxJobSkills = 8

// jobSkillKeywords is matched as plain lowercase substrings, so short keywords
// such as "go" or "ai" also hit inside longer words.
var jobSkillKeywords = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "go", "rust", "scala", "react", "angular", "vue",
	"svelte", "next.js", "nuxt", "node.js", "express", "django", "flask", "spring",
	"laravel", "rails", ".net", "flutter", "react native", "html", "css", "sass",
	"tailwind", "bootstrap", "material ui", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "git",
	"github", "gitlab", "jira", "figma", "agile", "scrum", "rest api", "graphql",
	"sql", "nosql", "machine learning", "ai", "data science", "devops", "ci/cd", "microservices",
}

// ExtractSkills lists known skills mentioned in a job description, in keyword
// order, at most eight, title-cased word by word.
func ExtractSkills(description string) []string {
	lower := strings.ToLower(description)
	out := []string{}
	for _, k := range jobSkillKeywords {
		if len(out) == maxJobSkills {
			break
		}
		if strings.Contains(lower, k) {
			out = append(out, TitleCase(k))
		}
	}
	return out
}

// TitleCase upper-cases the first letter of every space separated word.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
