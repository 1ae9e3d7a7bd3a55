package analysis

import (
	"context"
	"strings"
)

// DetectDomain scores the text against every configured contract domain and
// returns the winner with a normalized confidence. Entity labels from the
// recognizer weigh 1.0, keyword occurrences 0.5. A text that matches nothing
// comes back as "general" with zero confidence.
func (a *Analyzer) DetectDomain(ctx context.Context, text string) (string, float64) {
	lower := strings.ToLower(text)

	entities, err := a.ner.Recognize(ctx, text)
	if err != nil {
		a.logger.Warn("entity recognition failed, falling back to keywords", "error", err)
		entities = nil
	}

	labelCounts := make(map[string]int)
	for _, e := range entities {
		labelCounts[e.Label]++
	}

	scores := make([]float64, len(a.rules.set.Domains))
	var total float64
	for i, d := range a.rules.set.Domains {
		var s float64
		for _, label := range d.EntityLabels {
			s += float64(labelCounts[label])
		}
		for _, kw := range d.Keywords {
			s += 0.5 * float64(strings.Count(lower, kw))
		}
		scores[i] = s
		total += s
	}

	if total == 0 {
		return "general", 0
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return a.rules.set.Domains[best].Name, scores[best] / total
}
