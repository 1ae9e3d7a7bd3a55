package analysis

import (
	"context"
	"testing"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

func TestAlignNoContractClauses(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	expected := []domain.Clause{{Number: "1", Text: "The Client shall pay $100."}}
	alignments := a.Align(context.Background(), expected, nil)
	if len(alignments) != 1 {
		t.Fatalf("expected one alignment, got %d", len(alignments))
	}
	al := alignments[0]
	if al.Bucket != domain.BucketMismatch {
		t.Errorf("bucket = %v, want mismatch", al.Bucket)
	}
	if al.Matched != nil {
		t.Errorf("matched = %+v, want nil", al.Matched)
	}
}

func TestAlignPicksBestCounterpart(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	expected := []domain.Clause{
		{Number: "1", Text: "The Client shall pay the Contractor $500 within 30 days."},
	}
	contract := []domain.Clause{
		{Number: "7", Text: "All disputes go to arbitration in Delaware."},
		{Number: "2", Text: "The Client shall pay the Contractor $500 within 30 days."},
	}

	alignments := a.Align(context.Background(), expected, contract)
	al := alignments[0]
	if al.Matched == nil || al.Matched.Number != "2" {
		t.Fatalf("matched clause = %+v, want number 2", al.Matched)
	}
	if al.Bucket != domain.BucketMatch {
		t.Errorf("bucket = %v, want match (score %v)", al.Bucket, al.Similarity.OverallScore)
	}
}

func TestBucketThresholds(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	cases := []struct {
		score float64
		want  domain.MatchBucket
	}{
		{95, domain.BucketMatch},
		{90, domain.BucketMatch},
		{89.99, domain.BucketPartialMatch},
		{70, domain.BucketPartialMatch},
		{69.99, domain.BucketMismatch},
		{0, domain.BucketMismatch},
	}
	for _, c := range cases {
		if got := a.bucketFor(c.score); got != c.want {
			t.Errorf("bucketFor(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}
