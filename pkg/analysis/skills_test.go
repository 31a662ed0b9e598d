package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_ByCategory(t *testing.T) {
	set := ExtractSkills("experienced in go, python and react. used docker and kubernetes.")

	assert.Equal(t, []string{"python", "go"}, set.Programming)
	assert.Equal(t, []string{"react"}, set.Frameworks)
	assert.Equal(t, []string{"docker", "kubernetes"}, set.Cloud)
	assert.Empty(t, set.Databases)
	assert.Empty(t, set.Tools)
	assert.Empty(t, set.SoftSkills)
	assert.NotNil(t, set.Databases)
}

func TestExtractSkills_WordBoundaries(t *testing.T) {
	set := ExtractSkills("javascript developer")
	assert.Equal(t, []string{"javascript"}, set.Programming)
}

func TestSkillSet_AllDeduplicatesAcrossCategories(t *testing.T) {
	set := ExtractSkills("pipelines on gitlab")
	assert.Equal(t, []string{"gitlab"}, set.Cloud)
	assert.Equal(t, []string{"gitlab"}, set.Tools)
	assert.Equal(t, []string{"gitlab"}, set.All())
}

func TestRecommendedSkills(t *testing.T) {
	missing := RecommendedSkills("react python")
	assert.Equal(t, []string{
		"Node.js", "AWS", "Docker", "Kubernetes", "TypeScript", "PostgreSQL", "MongoDB", "Git",
	}, missing)
}

func TestRecommendedSkills_AllPresent(t *testing.T) {
	text := "react node.js python aws docker kubernetes typescript postgresql mongodb git ci/cd rest apis graphql agile scrum leadership communication"
	assert.Empty(t, RecommendedSkills(text))
	assert.NotNil(t, RecommendedSkills(text))
}
