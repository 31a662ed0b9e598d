package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	got := ExtractSkills("We use React Native, Node.js and PostgreSQL on AWS.")
	assert.Equal(t, []string{"React", "Node.js", "React Native", "Postgresql", "Aws", "Sql"}, got)
}

func TestExtractSkills_SubstringMatches(t *testing.T) {
	// "go" and "ai" match inside other words
	got := ExtractSkills("Good email skills")
	assert.Equal(t, []string{"Go", "Ai"}, got)
}

func TestExtractSkills_CapsAtEight(t *testing.T) {
	got := ExtractSkills("javascript typescript python ruby php swift kotlin rust scala")
	assert.Len(t, got, 8)
	assert.Equal(t, "Javascript", got[0])
}

func TestExtractSkills_Empty(t *testing.T) {
	got := ExtractSkills("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Machine Learning", TitleCase("machine learning"))
	assert.Equal(t, ".net", TitleCase(".net"))
	assert.Equal(t, "C++", TitleCase("c++"))
	assert.Equal(t, "", TitleCase(""))
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		job, user []string
		want      int
	}{
		{name: "no job skills", job: nil, user: []string{"Go"}, want: 50},
		{name: "no user skills", job: []string{"Go"}, user: nil, want: 50},
		{name: "full overlap", job: []string{"React", "Go"}, user: []string{"react", "go"}, want: 99},
		{name: "half overlap", job: []string{"React", "Docker"}, user: []string{"react", "python"}, want: 75},
		{name: "no overlap", job: []string{"Java"}, user: []string{"Haskell", "Elm"}, want: 50},
		{name: "containment", job: []string{"Node.js"}, user: []string{"node"}, want: 99},
		{name: "diluted by long user list", job: []string{"React"}, user: []string{"react", "a1", "b2", "c3", "d4"}, want: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchScore(tt.job, tt.user))
		})
	}
}
