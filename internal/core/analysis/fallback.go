package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

const extractionSystemPrompt = `You are a contract analysis assistant. Split the contract into its ` +
	`distinct clauses. Respond with a JSON array only, no prose. Each element must have the fields ` +
	`"number" (string), "title" (string) and "text" (string). Preserve the original wording of each clause.`

// extractWithModel asks the completion oracle to segment text that carries no
// numbered structure. The response is treated as untrusted: the JSON array is
// located inside whatever surrounds it and parsed through recovery passes.
func (a *Analyzer) extractWithModel(ctx context.Context, text, contractDomain string) ([]domain.Clause, error) {
	prompt := fmt.Sprintf("Split this contract into clauses.\n\n%s\n\nContract text:\n%s",
		a.domainHints(contractDomain), text)

	raw, err := a.completion.CompleteJSON(ctx, extractionSystemPrompt, prompt)
	if err != nil {
		return nil, domain.WrapError(domain.ErrOracle, "model clause extraction", err)
	}

	parsed, err := parseClauseArray(raw)
	if err != nil {
		return nil, domain.WrapError(domain.ErrOracle, "model clause extraction", err)
	}

	var clauses []domain.Clause
	for i, p := range parsed {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		number := strings.TrimSpace(p.Number)
		if number == "" {
			number = fmt.Sprintf("%d", i+1)
		}
		clause := domain.Clause{
			Number: number,
			Title:  strings.TrimSpace(p.Title),
			Text:   strings.TrimSpace(p.Text),
		}
		a.classify(&clause)
		a.attachEntities(ctx, &clause)
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

func (a *Analyzer) domainHints(contractDomain string) string {
	if d, ok := a.rules.domainRule(contractDomain); ok && d.PromptHints != "" {
		return d.PromptHints
	}
	return "Focus on the substantive terms of the agreement."
}

type rawClause struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// parseClauseArray runs up to three recovery passes over a model response:
// the raw array slice, an escape-normalized copy, and a copy with markdown
// fences stripped.
func parseClauseArray(raw string) ([]rawClause, error) {
	candidate := sliceJSONArray(raw)
	if candidate == "" {
		return nil, fmt.Errorf("no JSON array in response")
	}

	attempts := []string{
		candidate,
		normalizeEscapes(candidate),
		sliceJSONArray(stripFences(raw)),
	}
	var lastErr error
	for _, attempt := range attempts {
		if attempt == "" {
			continue
		}
		var parsed []rawClause
		if err := json.Unmarshal([]byte(attempt), &parsed); err != nil {
			lastErr = err
			continue
		}
		return parsed, nil
	}
	return nil, fmt.Errorf("parse model response: %w", lastErr)
}

// sliceJSONArray cuts from the first '[' to the matching final ']'.
func sliceJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// normalizeEscapes repairs the common model failure of emitting literal
// newlines and stray backslashes inside JSON string values.
func normalizeEscapes(s string) string {
	var b strings.Builder
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
			b.WriteByte(c)
		case inString && c == '\n':
			b.WriteString(`\n`)
		case inString && c == '\t':
			b.WriteString(`\t`)
		case inString && c == '\\':
			if i+1 < len(s) && strings.ContainsRune(`"\/bfnrtu`, rune(s[i+1])) {
				b.WriteByte(c)
			} else {
				b.WriteString(`\\`)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	return strings.ReplaceAll(s, "```", "")
}
