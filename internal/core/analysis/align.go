package analysis

import (
	"context"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// Align pairs each expected clause with its best-scoring contract clause.
// Assignment is independent per expected clause, so one contract clause may
// back several expected clauses. With no contract clauses at all every
// expected clause is a mismatch with a nil counterpart.
func (a *Analyzer) Align(ctx context.Context, expected, contract []domain.Clause) []domain.Alignment {
	alignments := make([]domain.Alignment, 0, len(expected))
	for _, exp := range expected {
		al := domain.Alignment{Expected: exp, Bucket: domain.BucketMismatch}

		bestIdx := -1
		for i := range contract {
			res := a.CompareTexts(ctx, exp.Text, contract[i].Text)
			if bestIdx < 0 || res.OverallScore > al.Similarity.OverallScore {
				bestIdx = i
				al.Similarity = res
			}
		}
		if bestIdx >= 0 {
			al.Matched = &contract[bestIdx]
			al.Bucket = a.bucketFor(al.Similarity.OverallScore)
		}
		alignments = append(alignments, al)
	}
	return alignments
}

func (a *Analyzer) bucketFor(score float64) domain.MatchBucket {
	t := a.rules.set.Thresholds
	switch {
	case score >= t.Match:
		return domain.BucketMatch
	case score >= t.PartialMatch:
		return domain.BucketPartialMatch
	default:
		return domain.BucketMismatch
	}
}
