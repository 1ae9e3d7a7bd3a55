package analysis

import (
	"sort"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// normalizeLegalText lowercases and rewrites every known synonym to its
// canonical legal term. Longer variants replace first so that "must not"
// becomes "shall not" before "must" becomes "shall".
func (a *Analyzer) normalizeLegalText(text string) string {
	lower := strings.ToLower(text)

	type replacement struct{ from, to string }
	var reps []replacement
	for _, lt := range a.rules.set.LegalTerms {
		for _, v := range lt.Variants {
			reps = append(reps, replacement{from: strings.ToLower(v), to: lt.Canonical})
		}
	}
	sort.SliceStable(reps, func(i, j int) bool {
		return len(reps[i].from) > len(reps[j].from)
	})
	for _, r := range reps {
		lower = strings.ReplaceAll(lower, r.from, r.to)
	}
	return lower
}

// legalTermRefs finds each canonical term present in the normalized text and
// captures the word window around its last occurrence.
func (a *Analyzer) legalTermRefs(text string) []domain.LegalTermRef {
	normalized := a.normalizeLegalText(text)
	var refs []domain.LegalTermRef
	for _, lt := range a.rules.set.LegalTerms {
		if !strings.Contains(normalized, lt.Canonical) {
			continue
		}
		ctx := wordWindow(normalized, lt.Canonical, a.rules.set.ContextWords)
		if ctx == "" {
			continue
		}
		refs = append(refs, domain.LegalTermRef{Term: lt.Canonical, Context: ctx})
	}
	return refs
}

// legalTermScore measures how much of the shared legal vocabulary survives
// with a comparable context. A term only counts as matched when its context
// similarity clears the configured threshold, and it contributes that
// similarity rather than a flat hit.
func (a *Analyzer) legalTermScore(text1, text2 string) (float64, domain.LegalTermDiff) {
	refs1 := a.legalTermRefs(text1)
	refs2 := a.legalTermRefs(text2)
	diff := a.legalTermDiff(text1, text2)

	if len(refs1) == 0 && len(refs2) == 0 {
		return 100, diff
	}

	var matched float64
	for _, r1 := range refs1 {
		for _, r2 := range refs2 {
			if r1.Term != r2.Term {
				continue
			}
			if sim := contextSimilarity(r1.Context, r2.Context); sim > a.rules.set.Thresholds.ContextMatch {
				matched += sim
			}
		}
	}

	total := len(refs1)
	if len(refs2) > total {
		total = len(refs2)
	}
	return round2(clampScore(matched / float64(total) * 100)), diff
}

// contextSimilarity is Jaccard over word sets with partial credit for
// containment between longer words.
func contextSimilarity(c1, c2 string) float64 {
	set1 := wordSet(c1)
	set2 := wordSet(c2)
	if len(set1) == 0 && len(set2) == 0 {
		return 1
	}

	var inter, union float64
	seen := make(map[string]struct{}, len(set1)+len(set2))
	for w := range set1 {
		seen[w] = struct{}{}
		if _, ok := set2[w]; ok {
			inter++
		}
	}
	for w := range set2 {
		seen[w] = struct{}{}
	}
	union = float64(len(seen))
	if union == 0 {
		return 0
	}

	var partial float64
	for w1 := range set1 {
		if _, ok := set2[w1]; ok {
			continue
		}
		for w2 := range set2 {
			if _, ok := set1[w2]; ok {
				continue
			}
			short := w1
			if len(w2) < len(short) {
				short = w2
			}
			if len(short) > 3 && (strings.Contains(w1, w2) || strings.Contains(w2, w1)) {
				partial += 0.5
			}
		}
	}

	sim := inter/union + partial/union
	if sim > 1 {
		sim = 1
	}
	return sim
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range words(text) {
		set[w] = struct{}{}
	}
	return set
}

// termOccurrence is one positioned hit of a canonical term with character
// context, used for difference attribution rather than scoring.
type termOccurrence struct {
	term    string
	context string
}

func (a *Analyzer) termOccurrences(text string) []termOccurrence {
	normalized := a.normalizeLegalText(text)
	var occs []termOccurrence
	for _, lt := range a.rules.set.LegalTerms {
		re := a.rules.termBoundary[lt.Canonical]
		for _, loc := range re.FindAllStringIndex(normalized, -1) {
			occs = append(occs, termOccurrence{
				term:    lt.Canonical,
				context: charWindow(normalized, loc[0], loc[1], 50),
			})
		}
	}
	return occs
}

// legalTermDiff attributes term-level changes between the two texts: terms
// present only on one side, and shared terms whose surrounding context moved.
func (a *Analyzer) legalTermDiff(text1, text2 string) domain.LegalTermDiff {
	occs1 := a.termOccurrences(text1)
	occs2 := a.termOccurrences(text2)

	terms1 := make(map[string][]termOccurrence)
	for _, o := range occs1 {
		terms1[o.term] = append(terms1[o.term], o)
	}
	terms2 := make(map[string][]termOccurrence)
	for _, o := range occs2 {
		terms2[o.term] = append(terms2[o.term], o)
	}

	var diff domain.LegalTermDiff
	seenRemoved := make(map[string]struct{})
	seenModified := make(map[string]struct{})
	for _, o := range occs1 {
		if _, ok := terms2[o.term]; !ok {
			if _, dup := seenRemoved[o.term]; dup {
				continue
			}
			seenRemoved[o.term] = struct{}{}
			diff.Removed = append(diff.Removed, domain.LegalTermRef{Term: o.term, Context: o.context})
			continue
		}
		if _, dup := seenModified[o.term]; dup {
			continue
		}
		for _, other := range terms2[o.term] {
			if contextSimilarity(o.context, other.context) <= a.rules.set.Thresholds.ContextMatch {
				seenModified[o.term] = struct{}{}
				diff.Modified = append(diff.Modified, domain.ModifiedTerm{
					Term:            o.term,
					OriginalContext: o.context,
					NewContext:      other.context,
				})
				break
			}
		}
	}

	seenAdded := make(map[string]struct{})
	for _, o := range occs2 {
		if _, ok := terms1[o.term]; ok {
			continue
		}
		if _, dup := seenAdded[o.term]; dup {
			continue
		}
		seenAdded[o.term] = struct{}{}
		diff.Added = append(diff.Added, domain.LegalTermRef{Term: o.term, Context: o.context})
	}

	return diff
}
