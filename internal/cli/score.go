package cli

import (
	"context"
	"fmt"
	"log/slog"

	"ats-resume-scorer/config"
	"ats-resume-scorer/internal/ai"
	"ats-resume-scorer/internal/ai/gemini"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/resume"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/logger"

	"github.com/spf13/cobra"
)

type scoreOptions struct {
	resumePath string
	jobPath    string
	jobText    string
	format     string
	output     string
	suggest    bool
}

func newScoreCommand() *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a resume against a job description",
		Long: `Score a resume file (JSON record, PDF, DOCX or TXT) against a job description.

Suggestions come from the deterministic rubric unless --suggest is given and
GEMINI_API_KEY is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.resumePath, "resume", "", "resume file (.json, .pdf, .docx, .txt)")
	cmd.Flags().StringVar(&opts.jobPath, "job", "", "job description file (.pdf, .docx, .txt)")
	cmd.Flags().StringVar(&opts.jobText, "job-text", "", "job description text")
	cmd.Flags().StringVar(&opts.format, "format", "", "resume format (structured, freeform); inferred from the extension when empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", false, "generate suggestions with Gemini")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}

func runScore(cmd *cobra.Command, opts *scoreOptions) error {
	ctx := cmd.Context()

	if opts.format != "" && opts.format != domain.FormatStructured && opts.format != domain.FormatFreeform {
		return fmt.Errorf("unknown format %q (use structured or freeform)", opts.format)
	}
	if opts.output != outputTable && opts.output != outputJSON {
		return fmt.Errorf("unknown output format: %s", opts.output)
	}

	content, format, err := loadResume(ctx, opts.resumePath, opts.format)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobDescription, err := loadJobDescription(ctx, opts.jobPath, opts.jobText)
	if err != nil {
		return err
	}

	var generator domain.ContentGenerator
	if opts.suggest {
		generator = suggestionGenerator(ctx)
	}

	analysisUC := usecase.NewAnalysisUsecase(resume.NewNormalizer(), scoring.NewEngine(), usecase.NewSuggestionEnricher(generator))
	report, err := analysisUC.Analyze(ctx, domain.AnalyzeRequest{
		ResumeContent:  content,
		JobDescription: jobDescription,
		Format:         format,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), opts.output, report)
}

// suggestionGenerator returns nil when Gemini cannot be used; the enricher
// then falls back to rubric suggestions.
func suggestionGenerator(ctx context.Context) domain.ContentGenerator {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Warn("config not loaded, using rubric suggestions", "error", err)
		return nil
	}
	if !cfg.AIEnabled() {
		logger.Log.Warn("GEMINI_API_KEY not set, using rubric suggestions")
		return nil
	}

	gen, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Warn("Gemini unavailable, using rubric suggestions", slog.Any("error", err))
		return nil
	}
	return ai.Guard(gen.WithTemperature(0.3), cfg.AITimeout)
}
