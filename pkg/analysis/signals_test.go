package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountActionVerbs(t *testing.T) {
	hits := CountActionVerbs("led the team. led again. developed tools. built a thing")
	assert.Equal(t, []VerbHit{
		{Verb: "led", Count: 2},
		{Verb: "built", Count: 1},
		{Verb: "developed", Count: 1},
	}, hits)
}

func TestCountActionVerbs_None(t *testing.T) {
	hits := CountActionVerbs("nothing relevant here")
	assert.NotNil(t, hits)
	assert.Empty(t, hits)
}

func TestDetectSections(t *testing.T) {
	m := DetectSections("experience\neducation\nskills")
	assert.True(t, m.Experience)
	assert.True(t, m.Education)
	assert.True(t, m.Skills)
	assert.False(t, m.Summary)
	assert.False(t, m.Projects)
	assert.Equal(t, []string{SectionExperience, SectionEducation, SectionSkills}, m.Found())
	assert.True(t, m.Has(SectionSkills))
	assert.False(t, m.Has("unknown"))
}

func TestDetectSections_Synonyms(t *testing.T) {
	m := DetectSections("about me\nwork history\nportfolio\nhonors")
	assert.Equal(t, []string{SectionSummary, SectionExperience, SectionProjects, SectionAwards}, m.Found())
}

func TestFindQuantifiables(t *testing.T) {
	got := FindQuantifiables("Increased revenue by 30% and saved $50,000 over 3 years for 200+ users")
	assert.Equal(t, []string{"30%", "$50,000", "3 years", "200+ users"}, got)
}

func TestFindQuantifiables_Deduplicates(t *testing.T) {
	assert.Equal(t, []string{"30%"}, FindQuantifiables("30% faster and 30% cheaper"))
}

func TestExtractEducation(t *testing.T) {
	text := "John Smith\nEducation\nBachelor of Science in Computer Science, Stanford University\n2015 - 2019"
	got := ExtractEducation(text)
	assert.Equal(t, []string{"Bachelor of Science in Computer Science, Stanford University"}, got)
}

func TestExtractEducation_StripsBullets(t *testing.T) {
	got := ExtractEducation("• Stanford University")
	assert.Equal(t, []string{"Stanford University"}, got)
}

func TestExtractEducation_Capped(t *testing.T) {
	text := "Alpha University\nBeta University\nGamma University\nDelta University\nEpsilon University\nZeta University"
	assert.Len(t, ExtractEducation(text), 5)
}

func TestEducationFields(t *testing.T) {
	assert.Equal(t, []string{"computer science"}, EducationFields("Bachelor of Science in Computer Science, Stanford University"))
	assert.Empty(t, EducationFields("Stanford University"))
}

func TestExtractHighlights(t *testing.T) {
	text := "Increased sales by 25% across three regions in one year. Hi. Managed a team of 5 engineers building internal tools."
	assert.Equal(t, []string{
		"Increased sales by 25% across three regions in one year",
		"Managed a team of 5 engineers building internal tools",
	}, ExtractHighlights(text))
}

func TestExtractHighlights_SkipsPlainSentences(t *testing.T) {
	assert.Empty(t, ExtractHighlights("This sentence is long enough but has nothing special in it."))
}
