package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

const structuredContract = `1. Payment Terms
The Client shall pay $5,000 within 30 days.
● Late Fee: A 1.5% monthly charge applies to overdue balances.
● Currency: All amounts are in USD.
2. Termination
Either party may terminate this agreement with 30 days notice.
10. Governing Law
This agreement is governed by the laws of Delaware.
3. Confidentiality
Both parties shall keep confidential information secret.`

func TestExtractClausesStructured(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	clauses, err := a.ExtractClausesForDomain(context.Background(), structuredContract, "vendor")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(clauses) != 4 {
		t.Fatalf("expected 4 clauses, got %d", len(clauses))
	}

	wantOrder := []string{"1", "2", "3", "10"}
	for i, w := range wantOrder {
		if clauses[i].Number != w {
			t.Fatalf("clause order = %v..., want %v", clauses[i].Number, wantOrder)
		}
	}
	if clauses[0].Title != "Payment Terms" {
		t.Errorf("clause 1 title = %q", clauses[0].Title)
	}
	if len(clauses[0].SubClauses) != 2 {
		t.Fatalf("expected 2 sub-clauses under clause 1, got %d", len(clauses[0].SubClauses))
	}
	if clauses[0].SubClauses[0].Number != "1.1" || clauses[0].SubClauses[0].Title != "Late Fee" {
		t.Errorf("first sub-clause = %q %q", clauses[0].SubClauses[0].Number, clauses[0].SubClauses[0].Title)
	}
	if !clauses[0].IsCritical {
		t.Errorf("payment clause must be critical")
	}
}

func TestExtractClausesDiscardsEmptySections(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	text := "1. Definitions\n2. Payment\nThe Client shall pay $100."
	clauses, err := a.ExtractClausesForDomain(context.Background(), text, "general")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("expected heading-only section discarded, got %d clauses", len(clauses))
	}
	if clauses[0].Number != "2" {
		t.Errorf("surviving clause = %q, want 2", clauses[0].Number)
	}
}

func TestSegmentationRoundTripIsStable(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)

	first, err := a.ExtractClausesForDomain(context.Background(), structuredContract, "vendor")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(first) == 0 {
		t.Fatal("structured contract must segment")
	}

	// Rebuild the document from the segmented clauses in order. A clause
	// boundary is its heading line plus its body, so the rebuilt text must
	// segment to the exact same clauses.
	var rebuilt strings.Builder
	for _, c := range first {
		fmt.Fprintf(&rebuilt, "%s. %s\n%s\n", c.Number, c.Title, c.Text)
	}

	second, err := a.ExtractClausesForDomain(context.Background(), rebuilt.String(), "vendor")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() round trip error = %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("round trip clause count = %d, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Number != first[i].Number || second[i].Title != first[i].Title {
			t.Errorf("clause %d boundary changed: got %s %q, want %s %q",
				i, second[i].Number, second[i].Title, first[i].Number, first[i].Title)
		}
		if second[i].Text != first[i].Text {
			t.Errorf("clause %s text changed on round trip:\n got %q\nwant %q",
				first[i].Number, second[i].Text, first[i].Text)
		}
		if len(second[i].SubClauses) != len(first[i].SubClauses) {
			t.Errorf("clause %s sub-clause count = %d, want %d",
				first[i].Number, len(second[i].SubClauses), len(first[i].SubClauses))
		}
	}
}

func TestExtractClausesModelFallback(t *testing.T) {
	completion := &completionFake{
		response: "```json\n[{\"number\": \"1\", \"title\": \"Payment\", \"text\": \"The vendor shall invoice monthly.\"}]\n```",
	}
	a := newTestAnalyzer(t, nil, nil, completion)

	clauses, err := a.ExtractClausesForDomain(context.Background(), "freeform agreement text without numbering", "vendor")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(completion.prompts) != 1 {
		t.Fatalf("expected one completion call, got %d", len(completion.prompts))
	}
	if len(clauses) != 1 || clauses[0].Title != "Payment" {
		t.Fatalf("unexpected fallback clauses: %+v", clauses)
	}
}

func TestExtractClausesFallbackRecoversBrokenJSON(t *testing.T) {
	// Literal newline inside a JSON string value, the most common model slip.
	completion := &completionFake{
		response: "[{\"number\": \"1\", \"title\": \"Scope\", \"text\": \"line one\nline two\"}]",
	}
	a := newTestAnalyzer(t, nil, nil, completion)

	clauses, err := a.ExtractClausesForDomain(context.Background(), "unstructured scope description", "general")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(clauses) != 1 {
		t.Fatalf("expected recovered clause, got %d", len(clauses))
	}
	if clauses[0].Text != "line one\nline two" {
		t.Errorf("recovered text = %q", clauses[0].Text)
	}
}

func TestExtractClausesEmptyWhenModelFails(t *testing.T) {
	completion := &completionFake{err: errors.New("model unavailable")}
	a := newTestAnalyzer(t, nil, nil, completion)

	clauses, err := a.ExtractClausesForDomain(context.Background(), "plain unstructured text about services", "general")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(clauses) != 0 {
		t.Fatalf("expected no clauses when both passes find nothing, got %d", len(clauses))
	}
}

func TestExtractClausesEmptyText(t *testing.T) {
	a := newTestAnalyzer(t, nil, nil, nil)
	clauses, err := a.ExtractClausesForDomain(context.Background(), "   \n ", "general")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(clauses) != 0 {
		t.Fatalf("expected no clauses for blank input, got %d", len(clauses))
	}
}

func TestExtractClausesUsesDomainHints(t *testing.T) {
	completion := &completionFake{response: "[]"}
	a := newTestAnalyzer(t, nil, nil, completion)

	_, err := a.ExtractClausesForDomain(context.Background(), "unstructured employment agreement body", "employment")
	if err != nil {
		t.Fatalf("ExtractClausesForDomain() error = %v", err)
	}
	if len(completion.prompts) != 1 {
		t.Fatalf("expected one completion call, got %d", len(completion.prompts))
	}
	hints := a.domainHints("employment")
	if hints == "" || !strings.Contains(completion.prompts[0], hints) {
		t.Errorf("prompt must carry employment hints, got %q", completion.prompts[0])
	}
}
