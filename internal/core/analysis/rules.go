package analysis

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// RuleSet is the declarative heuristic configuration for the analyzer:
// domain vocabularies, legal-term synonym tables, critical-clause patterns,
// obligation patterns and numeric mention patterns. It is loaded once at
// analyzer construction and never mutated afterwards.
type RuleSet struct {
	Domains      []DomainRule     `yaml:"domains"`
	LegalTerms   []LegalTermRule  `yaml:"legal_terms"`
	Critical     []CriticalRule   `yaml:"critical_clauses"`
	Obligations  []string         `yaml:"obligation_patterns"`
	Numeric      []NumericRule    `yaml:"numeric_patterns"`
	Categories   []CategoryRule   `yaml:"categories"`
	Importance   ImportanceRule   `yaml:"importance"`
	Weights      ComponentWeights `yaml:"weights"`
	Thresholds   Thresholds       `yaml:"thresholds"`
	RiskPoints   RiskPoints       `yaml:"risk_points"`
	ContextWords int              `yaml:"context_words"`
}

type DomainRule struct {
	Name         string   `yaml:"name"`
	Keywords     []string `yaml:"keywords"`
	EntityLabels []string `yaml:"entity_labels"`
	PromptHints  string   `yaml:"prompt_hints"`
}

type LegalTermRule struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

type CriticalRule struct {
	Type       domain.CriticalClauseType `yaml:"type"`
	Importance domain.Importance         `yaml:"importance"`
	Category   domain.Category           `yaml:"category"`
	Patterns   []string                  `yaml:"patterns"`
}

type NumericRule struct {
	Type    domain.NumericValueType `yaml:"type"`
	Pattern string                  `yaml:"pattern"`
	Weight  float64                 `yaml:"weight"`
}

type CategoryRule struct {
	Category domain.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

type ImportanceRule struct {
	High []string `yaml:"high"`
	Low  []string `yaml:"low"`
}

type ComponentWeights struct {
	LegalTerm  float64 `yaml:"legal_term"`
	Obligation float64 `yaml:"obligation"`
	Numeric    float64 `yaml:"numeric"`
	Semantic   float64 `yaml:"semantic"`
}

type Thresholds struct {
	Match        float64 `yaml:"match"`
	PartialMatch float64 `yaml:"partial_match"`
	ContextMatch float64 `yaml:"context_match"`
	RiskHigh     float64 `yaml:"risk_high"`
	RiskMedium   float64 `yaml:"risk_medium"`
}

type RiskPoints struct {
	MissingCritical    float64 `yaml:"missing_critical"`
	ModifiedCritical   float64 `yaml:"modified_critical"`
	RemovedLegalTerm   float64 `yaml:"removed_legal_term"`
	ModifiedLegalTerm  float64 `yaml:"modified_legal_term"`
	AddedLegalTerm     float64 `yaml:"added_legal_term"`
	NumericHigh        float64 `yaml:"numeric_high"`
	NumericMedium      float64 `yaml:"numeric_medium"`
	NumericLow         float64 `yaml:"numeric_low"`
	RemovedObligation  float64 `yaml:"removed_obligation"`
	ModifiedObligation float64 `yaml:"modified_obligation"`
	AddedObligation    float64 `yaml:"added_obligation"`
}

// LoadRuleSet reads a YAML override file on top of the defaults. Only the
// sections present in the file replace their default counterparts.
func LoadRuleSet(path string) (RuleSet, error) {
	rs := DefaultRuleSet()
	if path == "" {
		return rs, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rules file: %w", err)
	}
	var override RuleSet
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return RuleSet{}, fmt.Errorf("parse rules file: %w", err)
	}
	rs.merge(override)
	return rs, nil
}

func (rs *RuleSet) merge(o RuleSet) {
	if len(o.Domains) > 0 {
		rs.Domains = o.Domains
	}
	if len(o.LegalTerms) > 0 {
		rs.LegalTerms = o.LegalTerms
	}
	if len(o.Critical) > 0 {
		rs.Critical = o.Critical
	}
	if len(o.Obligations) > 0 {
		rs.Obligations = o.Obligations
	}
	if len(o.Numeric) > 0 {
		rs.Numeric = o.Numeric
	}
	if len(o.Categories) > 0 {
		rs.Categories = o.Categories
	}
	if len(o.Importance.High) > 0 {
		rs.Importance.High = o.Importance.High
	}
	if len(o.Importance.Low) > 0 {
		rs.Importance.Low = o.Importance.Low
	}
	if o.Weights != (ComponentWeights{}) {
		rs.Weights = o.Weights
	}
	if o.Thresholds != (Thresholds{}) {
		rs.Thresholds = o.Thresholds
	}
	if o.RiskPoints != (RiskPoints{}) {
		rs.RiskPoints = o.RiskPoints
	}
	if o.ContextWords > 0 {
		rs.ContextWords = o.ContextWords
	}
}

// rules is the compiled, ready-to-match form of a RuleSet.
type rules struct {
	set RuleSet

	critical     []compiledCritical
	obligations  []*regexp.Regexp
	numeric      []compiledNumeric
	termBoundary map[string]*regexp.Regexp

	mainSection *regexp.Regexp
	subSection  *regexp.Regexp
}

type compiledCritical struct {
	rule     CriticalRule
	patterns []*regexp.Regexp
}

type compiledNumeric struct {
	rule    NumericRule
	pattern *regexp.Regexp
}

func compileRules(rs RuleSet) (*rules, error) {
	r := &rules{set: rs}

	for _, cr := range rs.Critical {
		cc := compiledCritical{rule: cr}
		for _, p := range cr.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("critical pattern %q for %s: %w", p, cr.Type, err)
			}
			cc.patterns = append(cc.patterns, re)
		}
		r.critical = append(r.critical, cc)
	}

	r.termBoundary = make(map[string]*regexp.Regexp, len(rs.LegalTerms))
	for _, lt := range rs.LegalTerms {
		r.termBoundary[lt.Canonical] = regexp.MustCompile(`\b` + regexp.QuoteMeta(lt.Canonical) + `\b`)
	}

	for _, p := range rs.Obligations {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("obligation pattern %q: %w", p, err)
		}
		r.obligations = append(r.obligations, re)
	}

	for _, nr := range rs.Numeric {
		re, err := regexp.Compile("(?i)" + nr.Pattern)
		if err != nil {
			return nil, fmt.Errorf("numeric pattern %q for %s: %w", nr.Pattern, nr.Type, err)
		}
		r.numeric = append(r.numeric, compiledNumeric{rule: nr, pattern: re})
	}

	// Section headings are "<number>. <title>" on their own line; sub-items
	// are bullet "label: content" entries within the section body.
	r.mainSection = regexp.MustCompile(`(?m)^\s*(\d+)\.\s+([A-Z][^\n●•]*)`)
	r.subSection = regexp.MustCompile(`[●•]\s*([^:●•\n]+):\s*([^●•]*)`)

	return r, nil
}

func (r *rules) domainRule(name string) (DomainRule, bool) {
	for _, d := range r.set.Domains {
		if d.Name == name {
			return d, true
		}
	}
	return DomainRule{}, false
}
