package analysis

import (
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

type obligation struct {
	text    string
	context string
}

// obligationsOf extracts every obligation phrase ("shall pay", "agrees to
// deliver", ...) with the word window around it.
func (a *Analyzer) obligationsOf(text string) []obligation {
	lower := strings.ToLower(text)
	var out []obligation
	seen := make(map[string]struct{})
	for _, re := range a.rules.obligations {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			phrase := lower[loc[0]:loc[1]]
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			out = append(out, obligation{
				text:    phrase,
				context: charWindow(lower, loc[0], loc[1], 50),
			})
		}
	}
	return out
}

// obligationScore is the fraction of obligation phrases shared verbatim,
// relative to whichever side carries more of them.
func (a *Analyzer) obligationScore(text1, text2 string) (float64, []domain.ObligationDiff) {
	obs1 := a.obligationsOf(text1)
	obs2 := a.obligationsOf(text2)
	diffs := a.obligationDiff(obs1, obs2)

	if len(obs1) == 0 && len(obs2) == 0 {
		return 100, diffs
	}

	set2 := make(map[string]struct{}, len(obs2))
	for _, o := range obs2 {
		set2[o.text] = struct{}{}
	}
	var shared int
	for _, o := range obs1 {
		if _, ok := set2[o.text]; ok {
			shared++
		}
	}

	total := len(obs1)
	if len(obs2) > total {
		total = len(obs2)
	}
	return round2(clampScore(float64(shared) / float64(total) * 100)), diffs
}

func (a *Analyzer) obligationDiff(obs1, obs2 []obligation) []domain.ObligationDiff {
	by2 := make(map[string]obligation, len(obs2))
	for _, o := range obs2 {
		by2[o.text] = o
	}
	by1 := make(map[string]obligation, len(obs1))
	for _, o := range obs1 {
		by1[o.text] = o
	}

	var diffs []domain.ObligationDiff
	for _, o := range obs1 {
		other, ok := by2[o.text]
		if !ok {
			diffs = append(diffs, domain.ObligationDiff{
				Change:          domain.ChangeRemoved,
				Obligation:      o.text,
				OriginalContext: o.context,
			})
			continue
		}
		if contextSimilarity(o.context, other.context) <= a.rules.set.Thresholds.ContextMatch {
			diffs = append(diffs, domain.ObligationDiff{
				Change:          domain.ChangeModified,
				Obligation:      o.text,
				OriginalContext: o.context,
				NewContext:      other.context,
			})
		}
	}
	for _, o := range obs2 {
		if _, ok := by1[o.text]; !ok {
			diffs = append(diffs, domain.ObligationDiff{
				Change:     domain.ChangeAdded,
				Obligation: o.text,
				NewContext: o.context,
			})
		}
	}
	return diffs
}
