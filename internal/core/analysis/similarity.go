package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// CompareTexts runs the four-signal similarity pipeline over a clause pair.
// A failing component contributes zero and is logged; the comparison itself
// never fails. Scores are clamped to [0,100] and the blend is rounded to two
// decimals.
func (a *Analyzer) CompareTexts(ctx context.Context, text1, text2 string) domain.SimilarityResult {
	var res domain.SimilarityResult

	res.ComponentScores.LegalTerm, res.Differences.LegalTerms = a.legalTermScore(text1, text2)
	res.ComponentScores.Obligation, res.Differences.Obligations = a.obligationScore(text1, text2)
	res.ComponentScores.Numeric, res.Differences.NumericValues = a.numericScore(text1, text2)

	semantic, err := a.semanticScore(ctx, text1, text2)
	if err != nil {
		a.logger.Warn("semantic scoring degraded", "error", err)
		semantic = 0
	}
	res.ComponentScores.Semantic = semantic

	w := a.rules.set.Weights
	overall := res.ComponentScores.LegalTerm*w.LegalTerm +
		res.ComponentScores.Obligation*w.Obligation +
		res.ComponentScores.Numeric*w.Numeric +
		res.ComponentScores.Semantic*w.Semantic
	res.OverallScore = round2(clampScore(overall))
	return res
}

// semanticScore is cosine similarity between the embedding oracle's vectors,
// scaled to [0,100].
func (a *Analyzer) semanticScore(ctx context.Context, text1, text2 string) (float64, error) {
	vecs, err := a.embedder.Embed(ctx, []string{text1, text2})
	if err != nil {
		return 0, domain.WrapError(domain.ErrOracle, "embed clause pair", err)
	}
	if len(vecs) != 2 {
		return 0, domain.WrapError(domain.ErrOracle, "embed clause pair",
			fmt.Errorf("expected 2 vectors, got %d", len(vecs)))
	}
	return round2(clampScore(cosine(vecs[0], vecs[1]) * 100)), nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
