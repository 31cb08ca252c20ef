package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/usecase"

	"github.com/olekukonko/tablewriter"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func writeReport(w io.Writer, format string, report *domain.AnalysisResponse) error {
	if format == outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Category", "Weight", "Score", "Issue")
	for _, row := range usecase.ReportRows(report) {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(report.MissingKeywords) > 0 {
		fmt.Fprintln(w, "\nMissing keywords:")
		for _, kw := range report.MissingKeywords {
			fmt.Fprintf(w, "  - %s\n", kw)
		}
	}

	fmt.Fprintln(w, "\nSuggestions:")
	for i, s := range report.Suggestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	return nil
}
