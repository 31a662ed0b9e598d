package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_RejectsUnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text resume"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", path})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"analyze", filepath.Join(t.TempDir(), "nope.pdf")})
	err := rootCmd.Execute()
	assert.Error(t, err)
}
