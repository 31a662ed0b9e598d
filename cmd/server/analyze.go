package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dharunkumar-sh/career-lens/pkg/resume"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf|file.docx>",
	Short: "Analyze a resume file and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		out, err := resume.NewAnalysisService(nil, nil, nil, nil, 0).Analyze(cmd.Context(), resume.Upload{
			Filename: filepath.Base(path),
			Data:     data,
		})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out.Result)
	},
}
