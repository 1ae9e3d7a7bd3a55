package analysis

import (
	"context"
	"fmt"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// CompareContracts runs the full pipeline over two clause lists: alignment,
// difference aggregation, critical analysis, risk scoring and review
// recommendations. It always returns a well-formed report; degraded oracle
// components surface as lower scores, not as errors.
func (a *Analyzer) CompareContracts(ctx context.Context, expected, contract []domain.Clause) (*domain.ComparisonReport, error) {
	alignments := a.Align(ctx, expected, contract)

	var diffs domain.Differences
	var matches, partials, mismatches int
	for _, al := range alignments {
		switch al.Bucket {
		case domain.BucketMatch:
			matches++
		case domain.BucketPartialMatch:
			partials++
		default:
			mismatches++
		}
		mergeDifferences(&diffs, al.Similarity.Differences)
	}

	critical := a.AnalyzeCritical(alignments)
	riskScore, riskLevel := a.RiskScore(diffs, critical)

	overall := overallSimilarity(matches, partials, len(alignments))
	report := &domain.ComparisonReport{
		Summary: domain.ReportSummary{
			MatchCount:          matches,
			PartialMatchCount:   partials,
			MismatchCount:       mismatches,
			OverallSimilarity:   overall,
			RiskLevel:           riskLevel,
			CriticalIssuesCount: len(critical.Missing) + len(critical.Modified),
			Status:              comparisonStatus(overall),
			ChangeSummary:       changeSummary(matches, partials, mismatches, riskLevel),
		},
		ComponentScores: averageComponents(alignments),
		Alignments:      alignments,
		Differences:     diffs,
		Critical:        critical,
		RiskScore:       riskScore,
		RiskLevel:       riskLevel,
		Recommendations: a.Recommend(diffs, critical, riskLevel),
	}
	return report, nil
}

func mergeDifferences(dst *domain.Differences, src domain.Differences) {
	dst.LegalTerms.Added = append(dst.LegalTerms.Added, src.LegalTerms.Added...)
	dst.LegalTerms.Removed = append(dst.LegalTerms.Removed, src.LegalTerms.Removed...)
	dst.LegalTerms.Modified = append(dst.LegalTerms.Modified, src.LegalTerms.Modified...)
	dst.NumericValues = append(dst.NumericValues, src.NumericValues...)
	dst.Obligations = append(dst.Obligations, src.Obligations...)
}

// overallSimilarity weighs full matches 1.0 and partial matches 0.5 against
// the expected clause count.
func overallSimilarity(matches, partials, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2((float64(matches) + 0.5*float64(partials)) / float64(total) * 100)
}

func averageComponents(alignments []domain.Alignment) domain.ComponentScores {
	if len(alignments) == 0 {
		return domain.ComponentScores{}
	}
	var sum domain.ComponentScores
	for _, al := range alignments {
		sum.LegalTerm += al.Similarity.ComponentScores.LegalTerm
		sum.Numeric += al.Similarity.ComponentScores.Numeric
		sum.Obligation += al.Similarity.ComponentScores.Obligation
		sum.Semantic += al.Similarity.ComponentScores.Semantic
	}
	n := float64(len(alignments))
	return domain.ComponentScores{
		LegalTerm:  round2(sum.LegalTerm / n),
		Numeric:    round2(sum.Numeric / n),
		Obligation: round2(sum.Obligation / n),
		Semantic:   round2(sum.Semantic / n),
	}
}

func comparisonStatus(overall float64) string {
	switch {
	case overall >= 95:
		return "Nearly Identical"
	case overall >= 85:
		return "Very Similar"
	case overall >= 70:
		return "Similar with Notable Changes"
	case overall >= 50:
		return "Significantly Different"
	default:
		return "Substantially Different"
	}
}

func changeSummary(matches, partials, mismatches int, risk domain.RiskLevel) string {
	total := matches + partials + mismatches
	if total == 0 {
		return "No expected clauses to compare."
	}
	return fmt.Sprintf("Compared %d expected clauses: %d matched, %d partially matched, %d missing or changed. Risk level: %s.",
		total, matches, partials, mismatches, risk)
}
