package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// Recommend turns the aggregated differences and the risk tier into review
// guidance. The list is never empty: absent any findings it degrades to a
// single low-priority entry.
func (a *Analyzer) Recommend(diffs domain.Differences, critical domain.CriticalAnalysis, risk domain.RiskLevel) []domain.Recommendation {
	var recs []domain.Recommendation

	// Every missing or modified critical clause gets its own entry naming the
	// clause, independent of the overall risk tier.
	for _, f := range critical.Missing {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceHigh,
			Category:    "Critical",
			Title:       "Missing Critical Clause",
			Description: fmt.Sprintf("Add missing critical clause: %s (expected clause %s).", criticalTypesLabel(f), f.ExpectedNumber),
			Action:      "Restore the clause or obtain sign-off on its removal",
			Impact:      "Removes a protection the expected terms rely on",
		})
	}
	for _, f := range critical.Modified {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceHigh,
			Category:    "Critical",
			Title:       "Modified Critical Clause",
			Description: fmt.Sprintf("Review modifications in critical clause: %s (expected clause %s).", criticalTypesLabel(f), f.ExpectedNumber),
			Action:      "Compare both versions line by line before accepting",
			Impact:      "Alters a clause marked critical for this agreement",
		})
	}

	if len(diffs.LegalTerms.Modified) > 0 || len(diffs.LegalTerms.Removed) > 0 {
		recs = append(recs, domain.Recommendation{
			Priority: domain.ImportanceHigh,
			Category: "Legal",
			Title:    "Legal Term Modifications",
			Description: fmt.Sprintf("Modified %d legal terms. Removed %d legal terms.",
				len(diffs.LegalTerms.Modified), len(diffs.LegalTerms.Removed)),
			Action: "Review with legal counsel",
			Impact: "May affect legal obligations and rights",
		})
	}

	if n := countNumeric(diffs.NumericValues, domain.NumericAmount, domain.NumericPercentage); n > 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceHigh,
			Category:    "Financial",
			Title:       "Financial Term Changes",
			Description: financialDescription(diffs.NumericValues, n),
			Action:      "Verify financial calculations and budget impact",
			Impact:      "Direct impact on financial obligations",
		})
	}

	if n := countNumeric(diffs.NumericValues, domain.NumericDate, domain.NumericQuantity); n > 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceMedium,
			Category:    "Timeline",
			Title:       "Timeline Modifications",
			Description: fmt.Sprintf("%d timeline or schedule values changed.", n),
			Action:      "Confirm new dates and deadlines are achievable",
			Impact:      "May affect project schedules and deliverables",
		})
	}

	if len(diffs.Obligations) > 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceHigh,
			Category:    "Obligations",
			Title:       "Changed Obligations",
			Description: fmt.Sprintf("%d obligations were added, removed or modified.", len(diffs.Obligations)),
			Action:      "Review each obligation change for acceptability",
			Impact:      "Changes what each party must do under the agreement",
		})
	}

	if risk == domain.RiskHigh {
		recs = append(recs, domain.Recommendation{
			Priority: domain.ImportanceHigh,
			Category: "Risk",
			Title:    "High Risk Changes Detected",
			Description: fmt.Sprintf("Critical clause analysis found %d missing and %d modified critical clauses.",
				len(critical.Missing), len(critical.Modified)),
			Action: "Do not execute without a full legal review",
			Impact: "Material risk to the party relying on the expected terms",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.ImportanceLow,
			Category:    "General",
			Title:       "Minor Changes",
			Description: "No significant changes detected",
			Action:      "Proceed with standard review process",
			Impact:      "Low impact on overall agreement",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() > recs[j].Priority.Rank()
	})
	return recs
}

func criticalTypesLabel(f domain.CriticalFinding) string {
	if len(f.Types) == 0 {
		return "Unknown"
	}
	parts := make([]string, len(f.Types))
	for i, t := range f.Types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func countNumeric(diffs []domain.NumericDiff, types ...domain.NumericValueType) int {
	var n int
	for _, d := range diffs {
		for _, t := range types {
			if d.ValueType == t {
				n++
				break
			}
		}
	}
	return n
}

// financialDescription pairs removed amounts with added ones to state the net
// percentage movement when both sides of a change are visible.
func financialDescription(diffs []domain.NumericDiff, count int) string {
	var removed, added []float64
	for _, d := range diffs {
		if d.ValueType != domain.NumericAmount {
			continue
		}
		if v, ok := parseNumeric(d.Value); ok {
			if d.Change == domain.ChangeRemoved {
				removed = append(removed, v)
			} else if d.Change == domain.ChangeAdded {
				added = append(added, v)
			}
		}
	}

	var net float64
	pairs := len(removed)
	if len(added) < pairs {
		pairs = len(added)
	}
	for i := 0; i < pairs; i++ {
		if removed[i] != 0 {
			net += (added[i] - removed[i]) / removed[i] * 100
		}
	}
	if pairs == 0 {
		return fmt.Sprintf("%d financial terms changed.", count)
	}
	return fmt.Sprintf("%d financial terms changed with net %+.1f%% impact.", count, net)
}
