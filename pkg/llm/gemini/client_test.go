package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dharunkumar-sh/career-lens/pkg/llm"
)

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), "  ", "")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestAsk_NilClient(t *testing.T) {
	var c *Client
	_, err := c.Ask(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Empty(t, c.Model())
}

func TestJoinPrompt(t *testing.T) {
	assert.Equal(t, "sys\n\nuser", joinPrompt("sys", "user"))
	assert.Equal(t, "user", joinPrompt("", "user"))
	assert.Equal(t, "sys", joinPrompt("sys", ""))
}

func TestCollectText(t *testing.T) {
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		nil,
		{Content: &genai.Content{Parts: []*genai.Part{{Text: "# Jane Doe"}, nil, {Text: "  "}, {Text: "## Summary"}}}},
	}}
	out, err := collectText(resp)
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe\n## Summary", out)

	_, err = collectText(&genai.GenerateContentResponse{})
	assert.Error(t, err)
	_, err = collectText(nil)
	assert.Error(t, err)
}
