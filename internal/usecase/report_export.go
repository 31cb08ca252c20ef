package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	ExportXLSX = "xlsx"
	ExportCSV  = "csv"

	scoresSheet      = "Scores"
	suggestionsSheet = "Suggestions"
)

var scoreHeaders = []string{"CATEGORY", "WEIGHT (%)", "SCORE", "ISSUE"}

// ExportReport analyzes the request and renders the result as a spreadsheet.
func (u *analysisUsecase) ExportReport(ctx context.Context, req domain.AnalyzeRequest, format string) ([]byte, string, error) {
	if format != "" && format != ExportXLSX && format != ExportCSV {
		return nil, "", apperror.BadRequest("Unsupported export format: " + format)
	}

	report, err := u.Analyze(ctx, req)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case ExportCSV:
		return exportReportCSV(report)
	default:
		return exportReportExcel(report)
	}
}

// ReportRows lists one row per rubric category followed by the overall score.
func ReportRows(report *domain.AnalysisResponse) [][]string {
	rows := make([][]string, 0, len(scoring.Categories)+1)
	for _, c := range scoring.Categories {
		score, ok := report.CategoryScores[c.Name]
		scoreText, issue := "", ""
		if ok {
			scoreText = strconv.Itoa(score)
			if score < 100 {
				issue = c.Issue
			}
		}
		rows = append(rows, []string{c.Label, strconv.Itoa(c.Weight), scoreText, issue})
	}
	return append(rows, []string{"OVERALL", "100", strconv.Itoa(report.ATSScore), ""})
}

func exportReportExcel(report *domain.AnalysisResponse) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scoresSheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare sheet: %w", err)
	}
	if _, err := f.NewSheet(suggestionsSheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	writeRow := func(sheet string, row int, values []string) {
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if n, err := strconv.Atoi(v); err == nil {
				f.SetCellValue(sheet, cell, n)
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	writeRow(scoresSheet, 1, scoreHeaders)
	endCell, _ := excelize.CoordinatesToCellName(len(scoreHeaders), 1)
	f.SetCellStyle(scoresSheet, "A1", endCell, headerStyle)
	for i, row := range ReportRows(report) {
		writeRow(scoresSheet, i+2, row)
	}
	f.SetColWidth(scoresSheet, "A", "C", 24)
	f.SetColWidth(scoresSheet, "D", "D", 70)

	writeRow(suggestionsSheet, 1, []string{"#", "SUGGESTION"})
	f.SetCellStyle(suggestionsSheet, "A1", "B1", headerStyle)
	for i, s := range report.Suggestions {
		writeRow(suggestionsSheet, i+2, []string{strconv.Itoa(i + 1), s})
	}
	row := len(report.Suggestions) + 3
	writeRow(suggestionsSheet, row, []string{"", "MISSING KEYWORDS"})
	f.SetCellStyle(suggestionsSheet, "B"+strconv.Itoa(row), "B"+strconv.Itoa(row), headerStyle)
	for i, kw := range report.MissingKeywords {
		writeRow(suggestionsSheet, row+i+1, []string{"", kw})
	}
	f.SetColWidth(suggestionsSheet, "A", "A", 6)
	f.SetColWidth(suggestionsSheet, "B", "B", 100)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("ats_report_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportReportCSV(report *domain.AnalysisResponse) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{scoreHeaders}
	records = append(records, ReportRows(report)...)
	records = append(records, []string{}, []string{"SUGGESTION"})
	for _, s := range report.Suggestions {
		records = append(records, []string{s})
	}
	records = append(records, []string{}, []string{"MISSING KEYWORD"})
	for _, kw := range report.MissingKeywords {
		records = append(records, []string{kw})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	filename := fmt.Sprintf("ats_report_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
