package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

func sampleComparison() *domain.Comparison {
	matched := domain.Clause{Number: "1", Title: "Payment Terms", Text: "Client shall pay $500."}
	return &domain.Comparison{
		ID:                 "cmp-1",
		ExpectedDocumentID: "doc-a",
		ContractDocumentID: "doc-b",
		CreatedAt:          time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Report: &domain.ComparisonReport{
			Summary: domain.ReportSummary{
				MatchCount:        1,
				OverallSimilarity: 100,
				RiskLevel:         domain.RiskLow,
				Status:            "Nearly Identical",
				ChangeSummary:     "1 of 1 clauses matched",
			},
			Alignments: []domain.Alignment{
				{
					Expected:   domain.Clause{Number: "1", Title: "Payment Terms", Text: "Client shall pay $500.", CriticalTypes: []domain.CriticalClauseType{domain.CriticalPayment}},
					Matched:    &matched,
					Similarity: domain.SimilarityResult{OverallScore: 100},
					Bucket:     domain.BucketMatch,
				},
			},
			RiskLevel: domain.RiskLow,
			Recommendations: []domain.Recommendation{
				{Priority: domain.ImportanceLow, Category: "General", Title: "Minor Changes", Description: "No significant changes detected", Action: "Review summary", Impact: "Low"},
			},
		},
	}
}

func TestExportProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().Export(context.Background(), sampleComparison(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": false, "Clauses": false, "Recommendations": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("sheet %s missing (got %v)", name, sheets)
		}
	}

	title, err := f.GetCellValue("Clauses", "B2")
	if err != nil {
		t.Fatalf("read clause title: %v", err)
	}
	if title != "Payment Terms" {
		t.Errorf("Clauses!B2 = %q, want Payment Terms", title)
	}

	status, err := f.GetCellValue("Summary", "B7")
	if err != nil {
		t.Fatalf("read status: %v", err)
	}
	if status != "Nearly Identical" {
		t.Errorf("Summary!B7 = %q, want Nearly Identical", status)
	}
}

func TestExportRejectsMissingReport(t *testing.T) {
	var buf bytes.Buffer
	err := NewExporter().Export(context.Background(), &domain.Comparison{ID: "cmp-1"}, &buf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
