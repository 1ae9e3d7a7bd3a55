package analysis

import (
	"testing"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

func TestRiskScoreAccumulatesPoints(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	diffs := domain.Differences{
		LegalTerms: domain.LegalTermDiff{
			Removed:  []domain.LegalTermRef{{Term: "indemnify"}},
			Modified: []domain.ModifiedTerm{{Term: "shall"}},
		},
		NumericValues: []domain.NumericDiff{
			{Change: domain.ChangeRemoved, ValueType: domain.NumericAmount},
			{Change: domain.ChangeAdded, ValueType: domain.NumericPercentage},
			{Change: domain.ChangeAdded, ValueType: domain.NumericQuantity},
		},
		Obligations: []domain.ObligationDiff{
			{Change: domain.ChangeRemoved, Obligation: "shall pay"},
			{Change: domain.ChangeAdded, Obligation: "must report"},
		},
	}
	critical := domain.CriticalAnalysis{
		Missing:  []domain.CriticalFinding{{ExpectedNumber: "4"}},
		Modified: []domain.CriticalFinding{{ExpectedNumber: "5"}},
	}

	score, level := a.RiskScore(diffs, critical)
	// 30 + 20 critical, 10 + 8 legal, 15 + 10 + 5 numeric, 12 + 5 obligations.
	if score != 115 {
		t.Fatalf("score = %v, want 115", score)
	}
	if level != domain.RiskHigh {
		t.Errorf("level = %v, want High", level)
	}
}

func TestRiskLevelTiers(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	cases := []struct {
		score float64
		want  domain.RiskLevel
	}{
		{0, domain.RiskLow},
		{39.9, domain.RiskLow},
		{40, domain.RiskMedium},
		{69.9, domain.RiskMedium},
		{70, domain.RiskHigh},
		{250, domain.RiskHigh},
	}
	for _, c := range cases {
		if got := a.riskLevel(c.score); got != c.want {
			t.Errorf("riskLevel(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestAnalyzeCriticalBucketsFindings(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	payment := domain.Clause{Number: "1", Title: "Payment Terms", Text: "The Client shall pay $500."}
	liability := domain.Clause{Number: "2", Title: "Liability", Text: "Liability is capped at fees paid."}
	general := domain.Clause{Number: "3", Title: "Notices", Text: "Notices go to the listed address."}

	alignments := []domain.Alignment{
		{Expected: payment, Bucket: domain.BucketMatch, Matched: &payment,
			Similarity: domain.SimilarityResult{OverallScore: 100}},
		{Expected: liability, Bucket: domain.BucketPartialMatch,
			Similarity: domain.SimilarityResult{OverallScore: 75}},
		{Expected: general, Bucket: domain.BucketMismatch},
	}

	critical := a.AnalyzeCritical(alignments)
	if len(critical.Matched) != 1 || critical.Matched[0].ExpectedNumber != "1" {
		t.Errorf("matched = %+v", critical.Matched)
	}
	if len(critical.Modified) != 1 || critical.Modified[0].ExpectedNumber != "2" {
		t.Errorf("modified = %+v", critical.Modified)
	}
	if len(critical.Missing) != 0 {
		t.Errorf("non-critical mismatch must not count as missing critical: %+v", critical.Missing)
	}
}

func TestAnalyzeCriticalMissing(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	termination := domain.Clause{Number: "9", Title: "Termination", Text: "Either party may terminate with notice."}
	alignments := []domain.Alignment{{Expected: termination, Bucket: domain.BucketMismatch}}

	critical := a.AnalyzeCritical(alignments)
	if len(critical.Missing) != 1 {
		t.Fatalf("missing = %+v, want one finding", critical.Missing)
	}
	found := false
	for _, typ := range critical.Missing[0].Types {
		if typ == domain.CriticalTermination {
			found = true
		}
	}
	if !found {
		t.Errorf("types = %v, want termination", critical.Missing[0].Types)
	}
}
