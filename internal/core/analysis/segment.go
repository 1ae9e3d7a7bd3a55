package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

var numberedHeading = regexp.MustCompile(`(\d+\.\s+[A-Z])`)

// ExtractClauses segments raw contract text into classified clauses. It
// detects the contract domain first so the model fallback can use a
// domain-aware prompt.
func (a *Analyzer) ExtractClauses(ctx context.Context, text string) ([]domain.Clause, error) {
	contractDomain, _ := a.DetectDomain(ctx, text)
	return a.ExtractClausesForDomain(ctx, text, contractDomain)
}

// ExtractClausesForDomain runs structural segmentation and falls back to the
// completion oracle when the text carries no recognizable numbered structure.
// The result is ordered by natural clause number.
func (a *Analyzer) ExtractClausesForDomain(ctx context.Context, text, contractDomain string) ([]domain.Clause, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	clauses := a.segment(ctx, text)
	if len(clauses) == 0 {
		var err error
		clauses, err = a.extractWithModel(ctx, text, contractDomain)
		if err != nil {
			// Extraction never raises: callers get an empty list and decide
			// for themselves whether that is a failure.
			a.logger.Warn("model extraction fallback failed", "error", err)
			clauses = nil
		}
	}

	sortClauses(clauses)
	return clauses, nil
}

// segment finds "N. Title" sections and bullet sub-items inside each section
// body. Headings glued to preceding text are split onto their own line first.
func (a *Analyzer) segment(ctx context.Context, text string) []domain.Clause {
	prepared := numberedHeading.ReplaceAllString(text, "\n$1")

	headings := a.rules.mainSection.FindAllStringSubmatchIndex(prepared, -1)
	var clauses []domain.Clause
	for i, h := range headings {
		number := prepared[h[2]:h[3]]
		title := strings.TrimSpace(prepared[h[4]:h[5]])

		bodyStart := h[1]
		bodyEnd := len(prepared)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1][0]
		}
		body := strings.TrimSpace(prepared[bodyStart:bodyEnd])
		if body == "" {
			// A heading with no content carries nothing to compare.
			continue
		}

		clause := domain.Clause{
			Number:     number,
			Title:      title,
			Text:       body,
			SubClauses: a.subClauses(number, body),
		}
		a.classify(&clause)
		a.attachEntities(ctx, &clause)
		clauses = append(clauses, clause)
	}
	return clauses
}

func (a *Analyzer) subClauses(parentNumber, body string) []domain.Clause {
	matches := a.rules.subSection.FindAllStringSubmatch(body, -1)
	var subs []domain.Clause
	for _, m := range matches {
		label := strings.TrimSpace(m[1])
		content := strings.TrimSpace(m[2])
		if content == "" {
			continue
		}
		sub := domain.Clause{
			Number: fmt.Sprintf("%s.%d", parentNumber, len(subs)+1),
			Title:  label,
			Text:   content,
		}
		a.classify(&sub)
		subs = append(subs, sub)
	}
	return subs
}

func (a *Analyzer) attachEntities(ctx context.Context, c *domain.Clause) {
	entities, err := a.ner.Recognize(ctx, c.Text)
	if err != nil {
		a.logger.Warn("entity recognition failed for clause", "clause", c.Number, "error", err)
		return
	}
	c.Entities = entities
}
