package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// naturalLess compares clause numbers chunk-wise so that "10" sorts after
// "2" and "3.1" sorts between "3" and "4".
func naturalLess(a, b string) bool {
	ca, cb := splitChunks(a), splitChunks(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		na, errA := strconv.Atoi(ca[i])
		nb, errB := strconv.Atoi(cb[i])
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				return na < nb
			}
		case errA == nil:
			return true // numbers before text
		case errB == nil:
			return false
		default:
			if ca[i] != cb[i] {
				return ca[i] < cb[i]
			}
		}
	}
	return len(ca) < len(cb)
}

// splitChunks breaks a string into maximal digit and non-digit runs,
// dropping separator dots so "3.10" compares as [3 10].
func splitChunks(s string) []string {
	var chunks []string
	var cur strings.Builder
	curDigit := false
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		d := r >= '0' && r <= '9'
		if r == '.' {
			flush()
			continue
		}
		if cur.Len() > 0 && d != curDigit {
			flush()
		}
		curDigit = d
		cur.WriteRune(r)
	}
	flush()
	return chunks
}

func sortClauses(clauses []domain.Clause) {
	sort.SliceStable(clauses, func(i, j int) bool {
		return naturalLess(clauses[i].Number, clauses[j].Number)
	})
}
