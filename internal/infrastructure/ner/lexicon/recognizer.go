package lexicon

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// Recognizer is a pattern-lexicon entity oracle: label-tagged regular
// expressions over the raw text. It trades recall for zero external
// dependencies and fully deterministic output.
type Recognizer struct {
	patterns []labeledPattern
}

type labeledPattern struct {
	label   string
	pattern *regexp.Regexp
}

type PatternSet map[string][]string

func New(set PatternSet) (*Recognizer, error) {
	if set == nil {
		set = DefaultPatterns()
	}

	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	r := &Recognizer{}
	for _, label := range labels {
		for _, p := range set[label] {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("entity pattern %q for %s: %w", p, label, err)
			}
			r.patterns = append(r.patterns, labeledPattern{label: label, pattern: re})
		}
	}
	return r, nil
}

func (r *Recognizer) Recognize(_ context.Context, text string) ([]domain.Entity, error) {
	type hit struct {
		entity domain.Entity
		start  int
	}
	var hits []hit
	for _, lp := range r.patterns {
		for _, loc := range lp.pattern.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{
				entity: domain.Entity{Text: text[loc[0]:loc[1]], Label: lp.label},
				start:  loc[0],
			})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	entities := make([]domain.Entity, 0, len(hits))
	for _, h := range hits {
		entities = append(entities, h.entity)
	}
	return entities, nil
}

// DefaultPatterns covers the labels the domain rule tables reference.
func DefaultPatterns() PatternSet {
	return PatternSet{
		"POSITION": {
			`\b(?:software engineer|developer|manager|director|analyst|consultant|officer|administrator)\b`,
		},
		"SALARY": {
			`(?:salary|compensation)\s+of\s+\$[\d,]+`,
			`\$[\d,]+\s*per\s+(?:year|annum|month)`,
		},
		"BONUS": {
			`bonus(?:es)?\s+(?:of\s+)?(?:up\s+to\s+)?\$[\d,]+`,
		},
		"DURATION": {
			`\b\d+\s+(?:days?|weeks?|months?|years?)\b`,
		},
		"BENEFIT": {
			`\b(?:health insurance|dental coverage|vision coverage|pension|paid time off|vacation days)\b`,
		},
		"PROPERTY": {
			`\b(?:premises|building|suite|unit)\s+(?:at|located at|no\.?\s*\d+)`,
		},
		"PROPERTY_TYPE": {
			`\b(?:office space|retail space|warehouse|apartment|commercial property)\b`,
		},
		"RENT": {
			`(?:rent|rental)\s+of\s+\$[\d,]+`,
			`\$[\d,]+\s*per\s+month`,
		},
		"DEPOSIT": {
			`(?:security\s+)?deposit\s+of\s+\$[\d,]+`,
		},
		"TERM": {
			`term\s+of\s+\d+\s+(?:months?|years?)`,
		},
		"AREA": {
			`\d[\d,]*\s*(?:square\s+feet|sq\.?\s*ft)`,
		},
		"CONFIDENTIAL_INFO": {
			`\b(?:trade secrets?|proprietary information|confidential information)\b`,
		},
		"PARTY": {
			`\b(?:disclosing party|receiving party)\b`,
		},
		"SERVICE_LEVEL": {
			`\d+(?:\.\d+)?\s*%\s*(?:uptime|availability)`,
		},
		"RESPONSE_TIME": {
			`response\s+time\s+of\s+\d+\s+(?:minutes?|hours?)`,
		},
		"PENALTY": {
			`(?:penalty|service credit)\s+of\s+\$?[\d,]+`,
		},
		"TIMELINE": {
			`\b(?:within|by)\s+\d+\s+(?:business\s+)?days\b`,
		},
		"DELIVERABLE": {
			`\b(?:deliverables?|milestones?)\b`,
		},
		"PAYMENT": {
			`payment\s+of\s+\$[\d,]+`,
		},
		"STRUCTURE": {
			`\b(?:general|limited)\s+partnership\b`,
			`joint\s+venture`,
		},
		"CONTRIBUTION": {
			`(?:capital\s+)?contribution\s+of\s+\$[\d,]+`,
		},
		"PROFIT_LOSS": {
			`(?:profit|loss)\s+(?:sharing|allocation)`,
		},
	}
}
