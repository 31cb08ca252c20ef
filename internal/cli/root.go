package cli

import (
	"fmt"

	"ats-resume-scorer/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Global flags
	logLevel string
)

// SetVersion sets version information from main
func SetVersion(v string) {
	version = v
}

// NewRootCommand builds the atsscore command tree. Tests build a fresh tree
// per case so flag state never leaks between runs.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "atsscore",
		Short: "Score resumes the way applicant tracking systems do",
		Long: `atsscore runs the ATS scoring rubric offline.

Examples:
  atsscore score --resume resume.pdf --job job.txt
  atsscore score --resume resume.json --job-text "Go, Kubernetes" -o json
  atsscore extract resume.docx`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newScoreCommand())
	root.AddCommand(newExtractCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "atsscore %s\n", version)
		},
	})
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
