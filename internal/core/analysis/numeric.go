package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

type numericMention struct {
	raw     string
	typ     domain.NumericValueType
	context string
	value   float64
	numeric bool
}

// numericMentions extracts money amounts, percentages, dates and bare
// quantities with their spans. Rules earlier in the table claim spans first,
// so a quantity never double-reports the digits inside "$500" or "4.5%".
func (a *Analyzer) numericMentions(text string) []numericMention {
	var claimed [][]int
	var out []numericMention
	for _, cn := range a.rules.numeric {
		for _, loc := range cn.pattern.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, loc) {
				continue
			}
			claimed = append(claimed, loc)
			raw := text[loc[0]:loc[1]]
			val, ok := parseNumeric(raw)
			out = append(out, numericMention{
				raw:     raw,
				typ:     cn.rule.Type,
				context: charWindow(text, loc[0], loc[1], 50),
				value:   val,
				numeric: ok,
			})
		}
	}
	return out
}

func overlapsAny(claimed [][]int, loc []int) bool {
	for _, c := range claimed {
		if loc[0] < c[1] && c[0] < loc[1] {
			return true
		}
	}
	return false
}

// parseNumeric strips currency and grouping noise and parses the remainder.
func parseNumeric(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numericScore compares the numeric content of the two texts. Each mention on
// the expected side is scored against its best same-type counterpart, weighted
// by the type's configured weight. Two texts without numbers agree trivially;
// numbers on only one side score zero.
func (a *Analyzer) numericScore(text1, text2 string) (float64, []domain.NumericDiff) {
	m1 := a.numericMentions(text1)
	m2 := a.numericMentions(text2)
	diffs := numericDiffs(m1, m2)

	if len(m1) == 0 && len(m2) == 0 {
		return 100, diffs
	}
	if len(m1) == 0 || len(m2) == 0 {
		return 0, diffs
	}

	weights := make(map[domain.NumericValueType]float64, len(a.rules.numeric))
	for _, cn := range a.rules.numeric {
		weights[cn.rule.Type] = cn.rule.Weight
	}

	var achieved, total float64
	for _, v1 := range m1 {
		w := weights[v1.typ]
		var best float64
		for _, v2 := range m2 {
			if v2.typ != v1.typ {
				continue
			}
			if s := mentionMatch(v1, v2); s > best {
				best = s
			}
		}
		achieved += best * w
		total += w
	}
	if total == 0 {
		return 0, diffs
	}
	return round2(clampScore(achieved / total * 100)), diffs
}

// mentionMatch grades one candidate pairing: exact text is a perfect match,
// otherwise closeness is one minus the relative numeric difference.
func mentionMatch(v1, v2 numericMention) float64 {
	if v1.typ == domain.NumericDate && v1.raw == v2.raw {
		return 1
	}
	if !v1.numeric || !v2.numeric {
		if v1.raw == v2.raw {
			return 1
		}
		return 0
	}
	if v1.value == v2.value {
		return 1
	}
	larger := math.Max(math.Abs(v1.value), math.Abs(v2.value))
	if larger == 0 {
		return 0
	}
	s := 1 - math.Abs(v1.value-v2.value)/larger
	if s < 0 {
		return 0
	}
	return s
}

// numericDiffs reports mentions whose exact (type, text) pair exists on only
// one side. Financial types are high severity.
func numericDiffs(m1, m2 []numericMention) []domain.NumericDiff {
	key := func(m numericMention) string { return string(m.typ) + "\x00" + m.raw }
	in2 := make(map[string]struct{}, len(m2))
	for _, m := range m2 {
		in2[key(m)] = struct{}{}
	}
	in1 := make(map[string]struct{}, len(m1))
	for _, m := range m1 {
		in1[key(m)] = struct{}{}
	}

	var diffs []domain.NumericDiff
	for _, m := range m1 {
		if _, ok := in2[key(m)]; !ok {
			diffs = append(diffs, domain.NumericDiff{
				Change:    domain.ChangeRemoved,
				Value:     m.raw,
				ValueType: m.typ,
				Context:   m.context,
				Severity:  numericSeverity(m.typ),
			})
		}
	}
	for _, m := range m2 {
		if _, ok := in1[key(m)]; !ok {
			diffs = append(diffs, domain.NumericDiff{
				Change:    domain.ChangeAdded,
				Value:     m.raw,
				ValueType: m.typ,
				Context:   m.context,
				Severity:  numericSeverity(m.typ),
			})
		}
	}
	return diffs
}

func numericSeverity(t domain.NumericValueType) domain.Severity {
	if t == domain.NumericAmount || t == domain.NumericPercentage {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}
