package analysis

import (
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// AnalyzeCritical re-derives criticality from each expected clause's text and
// sorts the critical ones into matched, modified and missing by alignment
// bucket. Stored classification flags are ignored so callers can pass bare
// clauses.
func (a *Analyzer) AnalyzeCritical(alignments []domain.Alignment) domain.CriticalAnalysis {
	var out domain.CriticalAnalysis
	for _, al := range alignments {
		lower := strings.ToLower(al.Expected.Title + " " + al.Expected.Text)
		types, _ := a.criticalTypes(lower)
		if len(types) == 0 {
			continue
		}

		finding := domain.CriticalFinding{
			Types:          types,
			ExpectedNumber: al.Expected.Number,
			ExpectedText:   al.Expected.Text,
			Similarity:     al.Similarity.OverallScore,
		}
		if al.Matched != nil {
			finding.ActualText = al.Matched.Text
		}

		switch al.Bucket {
		case domain.BucketMatch:
			out.Matched = append(out.Matched, finding)
		case domain.BucketPartialMatch:
			out.Modified = append(out.Modified, finding)
		default:
			out.Missing = append(out.Missing, finding)
		}
	}
	return out
}

// RiskScore accumulates additive points over the aggregated differences and
// critical findings, then tiers the total. The score is not capped; only the
// tier thresholds matter downstream.
func (a *Analyzer) RiskScore(diffs domain.Differences, critical domain.CriticalAnalysis) (float64, domain.RiskLevel) {
	p := a.rules.set.RiskPoints

	score := float64(len(critical.Missing)) * p.MissingCritical
	score += float64(len(critical.Modified)) * p.ModifiedCritical

	score += float64(len(diffs.LegalTerms.Removed)) * p.RemovedLegalTerm
	score += float64(len(diffs.LegalTerms.Modified)) * p.ModifiedLegalTerm
	score += float64(len(diffs.LegalTerms.Added)) * p.AddedLegalTerm

	for _, nd := range diffs.NumericValues {
		switch nd.ValueType {
		case domain.NumericAmount:
			score += p.NumericHigh
		case domain.NumericPercentage:
			score += p.NumericMedium
		default:
			score += p.NumericLow
		}
	}

	for _, od := range diffs.Obligations {
		switch od.Change {
		case domain.ChangeRemoved:
			score += p.RemovedObligation
		case domain.ChangeModified:
			score += p.ModifiedObligation
		default:
			score += p.AddedObligation
		}
	}

	return score, a.riskLevel(score)
}

func (a *Analyzer) riskLevel(score float64) domain.RiskLevel {
	t := a.rules.set.Thresholds
	switch {
	case score >= t.RiskHigh:
		return domain.RiskHigh
	case score >= t.RiskMedium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
