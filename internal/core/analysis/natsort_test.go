package analysis

import (
	"sort"
	"testing"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

func TestNaturalLessOrdersNumbersNumerically(t *testing.T) {
	numbers := []string{"2", "10", "3.1", "3.2", "1"}
	sort.SliceStable(numbers, func(i, j int) bool { return naturalLess(numbers[i], numbers[j]) })

	want := []string{"1", "2", "3.1", "3.2", "10"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("order = %v, want %v", numbers, want)
		}
	}
}

func TestNaturalLessDottedDepth(t *testing.T) {
	if !naturalLess("3", "3.1") {
		t.Errorf("3 must sort before 3.1")
	}
	if !naturalLess("3.2", "3.10") {
		t.Errorf("3.2 must sort before 3.10")
	}
	if naturalLess("10", "9") {
		t.Errorf("10 must sort after 9")
	}
}

func TestSortClauses(t *testing.T) {
	clauses := []domain.Clause{{Number: "10"}, {Number: "2"}, {Number: "3.1"}}
	sortClauses(clauses)
	if clauses[0].Number != "2" || clauses[1].Number != "3.1" || clauses[2].Number != "10" {
		t.Fatalf("unexpected order: %v %v %v", clauses[0].Number, clauses[1].Number, clauses[2].Number)
	}
}
