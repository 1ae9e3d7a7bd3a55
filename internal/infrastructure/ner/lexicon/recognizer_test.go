package lexicon

import (
	"context"
	"testing"
)

func TestRecognizeEmploymentEntities(t *testing.T) {
	r, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := "The Employee receives a salary of $90,000 with 20 vacation days and a term of 2 years."
	entities, err := r.Recognize(context.Background(), text)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	labels := make(map[string]int)
	for _, e := range entities {
		labels[e.Label]++
	}
	if labels["SALARY"] != 1 {
		t.Errorf("SALARY hits = %d, want 1 (entities %v)", labels["SALARY"], entities)
	}
	if labels["TERM"] != 1 {
		t.Errorf("TERM hits = %d, want 1", labels["TERM"])
	}
	if labels["DURATION"] == 0 {
		t.Errorf("expected DURATION hit for '2 years'")
	}
}

func TestRecognizeOrderedByPosition(t *testing.T) {
	r, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entities, err := r.Recognize(context.Background(),
		"rent of $2,000 is due; the security deposit of $4,000 is refundable")
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(entities) < 2 {
		t.Fatalf("expected at least two entities, got %v", entities)
	}
	if entities[0].Label != "RENT" {
		t.Errorf("first entity = %+v, want RENT", entities[0])
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(PatternSet{"X": {"("}})
	if err == nil {
		t.Fatalf("expected compile error")
	}
}
