package analysis

import (
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// classify fills category, importance and criticality on a clause from its
// combined title and text. Criticality can raise importance but never lower it.
func (a *Analyzer) classify(c *domain.Clause) {
	text := strings.ToLower(c.Title + " " + c.Text)

	c.Category = a.categoryOf(text)
	c.Importance = a.importanceOf(text)

	types, highest := a.criticalTypes(text)
	c.CriticalTypes = types
	c.IsCritical = len(types) > 0
	if c.IsCritical && highest.Rank() > c.Importance.Rank() {
		c.Importance = highest
	}
}

func (a *Analyzer) categoryOf(lower string) domain.Category {
	for _, cr := range a.rules.set.Categories {
		for _, kw := range cr.Keywords {
			if strings.Contains(lower, kw) {
				return cr.Category
			}
		}
	}
	return domain.CategoryGeneral
}

func (a *Analyzer) importanceOf(lower string) domain.Importance {
	for _, kw := range a.rules.set.Importance.High {
		if strings.Contains(lower, kw) {
			return domain.ImportanceHigh
		}
	}
	for _, kw := range a.rules.set.Importance.Low {
		if strings.Contains(lower, kw) {
			return domain.ImportanceLow
		}
	}
	return domain.ImportanceMedium
}

// criticalTypes returns every critical clause type whose pattern list matches,
// in rule-table order, plus the highest importance among the matched rules.
func (a *Analyzer) criticalTypes(lower string) ([]domain.CriticalClauseType, domain.Importance) {
	var types []domain.CriticalClauseType
	var highest domain.Importance
	for _, cc := range a.rules.critical {
		for _, re := range cc.patterns {
			if re.MatchString(lower) {
				types = append(types, cc.rule.Type)
				if cc.rule.Importance.Rank() > highest.Rank() {
					highest = cc.rule.Importance
				}
				break
			}
		}
	}
	return types, highest
}
