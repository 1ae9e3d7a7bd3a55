package excel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// Exporter renders a comparison report as an xlsx workbook with summary,
// clause alignment and recommendation sheets.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(ctx context.Context, cmp *domain.Comparison, w io.Writer) error {
	if cmp == nil || cmp.Report == nil {
		return domain.WrapError(domain.ErrInvalidInput, "export report", fmt.Errorf("comparison has no report"))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := writeSummary(f, cmp); err != nil {
		return err
	}
	if err := writeAlignments(f, cmp.Report.Alignments); err != nil {
		return err
	}
	if err := writeRecommendations(f, cmp.Report.Recommendations); err != nil {
		return err
	}

	// The default sheet excelize creates becomes the summary sheet, so only
	// the extra sheets needed creation above.
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, cmp *domain.Comparison) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	s := cmp.Report.Summary
	rows := [][]any{
		{"Comparison ID", cmp.ID},
		{"Expected Document", cmp.ExpectedDocumentID},
		{"Contract Document", cmp.ContractDocumentID},
		{"Created At", cmp.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{},
		{"Overall Similarity", s.OverallSimilarity},
		{"Status", s.Status},
		{"Matches", s.MatchCount},
		{"Partial Matches", s.PartialMatchCount},
		{"Mismatches", s.MismatchCount},
		{"Critical Issues", s.CriticalIssuesCount},
		{"Risk Score", cmp.Report.RiskScore},
		{"Risk Level", string(s.RiskLevel)},
		{},
		{"Legal Term Score", cmp.Report.ComponentScores.LegalTerm},
		{"Numeric Score", cmp.Report.ComponentScores.Numeric},
		{"Obligation Score", cmp.Report.ComponentScores.Obligation},
		{"Semantic Score", cmp.Report.ComponentScores.Semantic},
		{},
		{"Change Summary", s.ChangeSummary},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return fmt.Errorf("summary col width: %w", err)
	}
	return f.SetColWidth(sheet, "B", "B", 60)
}

func writeAlignments(f *excelize.File, alignments []domain.Alignment) error {
	const sheet = "Clauses"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create clauses sheet: %w", err)
	}

	header := []any{
		"Expected #", "Expected Title", "Matched #", "Matched Title",
		"Bucket", "Similarity", "Legal", "Numeric", "Obligation", "Semantic", "Critical Types",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("clauses header: %w", err)
	}

	for i, a := range alignments {
		matchedNumber, matchedTitle := "", ""
		if a.Matched != nil {
			matchedNumber, matchedTitle = a.Matched.Number, a.Matched.Title
		}
		row := []any{
			a.Expected.Number, a.Expected.Title, matchedNumber, matchedTitle,
			string(a.Bucket), a.Similarity.OverallScore,
			a.Similarity.ComponentScores.LegalTerm,
			a.Similarity.ComponentScores.Numeric,
			a.Similarity.ComponentScores.Obligation,
			a.Similarity.ComponentScores.Semantic,
			criticalTypesCell(a.Expected.CriticalTypes),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("clauses cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("clauses row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(sheet, "B", "D", 32)
}

func writeRecommendations(f *excelize.File, recs []domain.Recommendation) error {
	const sheet = "Recommendations"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create recommendations sheet: %w", err)
	}

	header := []any{"Priority", "Category", "Title", "Description", "Action", "Impact"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("recommendations header: %w", err)
	}

	for i, r := range recs {
		row := []any{string(r.Priority), r.Category, r.Title, r.Description, r.Action, r.Impact}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("recommendations cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("recommendations row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(sheet, "C", "F", 48)
}

func criticalTypesCell(types []domain.CriticalClauseType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
