package analysis

import (
	"testing"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

func TestNumericMentionsTyping(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	mentions := a.numericMentions("Pay $1,500.00 plus 4.5% interest on 12/31/2024 for 30 units.")
	byType := make(map[domain.NumericValueType][]string)
	for _, m := range mentions {
		byType[m.typ] = append(byType[m.typ], m.raw)
	}

	if len(byType[domain.NumericAmount]) != 1 {
		t.Errorf("amounts = %v, want one", byType[domain.NumericAmount])
	}
	if len(byType[domain.NumericPercentage]) != 1 {
		t.Errorf("percentages = %v, want one", byType[domain.NumericPercentage])
	}
	if len(byType[domain.NumericDate]) != 1 {
		t.Errorf("dates = %v, want one", byType[domain.NumericDate])
	}
	// The digits of the amount, percentage and date must not re-surface as
	// bare quantities; only the standalone 30 qualifies.
	if len(byType[domain.NumericQuantity]) != 1 || byType[domain.NumericQuantity][0] != "30" {
		t.Errorf("quantities = %v, want [30]", byType[domain.NumericQuantity])
	}
}

func TestNumericScoreIdentical(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	text := "A fee of $500 is due within 30 days."
	score, diffs := a.numericScore(text, text)
	if score != 100 {
		t.Fatalf("score = %v, want 100", score)
	}
	if len(diffs) != 0 {
		t.Errorf("identical texts must produce no numeric diffs: %+v", diffs)
	}
}

func TestNumericScoreVacuousAndOneSided(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	if score, _ := a.numericScore("no numbers here", "none here either"); score != 100 {
		t.Fatalf("two number-free texts = %v, want 100", score)
	}
	if score, _ := a.numericScore("a fee of $500", "no numbers here"); score != 0 {
		t.Fatalf("one-sided numbers = %v, want 0", score)
	}
}

func TestNumericScorePartialCloseness(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	score, diffs := a.numericScore("a fee of $500 applies", "a fee of $450 applies")
	// 1 - 50/500 = 0.9 closeness on the only weighted mention.
	if score != 90 {
		t.Fatalf("score = %v, want 90", score)
	}

	var removed, added bool
	for _, d := range diffs {
		if d.ValueType != domain.NumericAmount || d.Severity != domain.SeverityHigh {
			t.Errorf("unexpected diff: %+v", d)
		}
		switch d.Change {
		case domain.ChangeRemoved:
			removed = true
		case domain.ChangeAdded:
			added = true
		}
	}
	if !removed || !added {
		t.Errorf("expected removed and added amount diffs, got %+v", diffs)
	}
}

func TestNumericDateExactMatchOnly(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	same, _ := a.numericScore("due on 12/31/2024", "due on 12/31/2024")
	if same != 100 {
		t.Fatalf("identical dates = %v, want 100", same)
	}

	moved, diffs := a.numericScore("due on 12/31/2024", "due on 01/15/2025")
	if moved >= 100 {
		t.Fatalf("shifted date = %v, want < 100", moved)
	}
	if len(diffs) != 2 {
		t.Errorf("expected removed+added date diffs, got %+v", diffs)
	}
	for _, d := range diffs {
		if d.Severity != domain.SeverityMedium {
			t.Errorf("date diffs are medium severity, got %+v", d)
		}
	}
}
