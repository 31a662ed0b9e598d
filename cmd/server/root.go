package main

import (
	"github.com/spf13/cobra"
)

const appName = "career-lens"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "career-lens scores resumes, matches jobs and drafts cover letters",
	// serve is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, analyzeCmd)
}
