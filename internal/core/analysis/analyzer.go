package analysis

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/kirillkom/contract-term-analyzer/internal/core/ports"
)

// Analyzer bundles the rule tables with the external language oracles.
// It is stateless across calls: every comparison builds its results from
// scratch, so one instance is safe for concurrent use.
type Analyzer struct {
	rules      *rules
	embedder   ports.Embedder
	ner        ports.EntityRecognizer
	completion ports.CompletionClient
	logger     *slog.Logger
}

func NewAnalyzer(
	rs RuleSet,
	embedder ports.Embedder,
	ner ports.EntityRecognizer,
	completion ports.CompletionClient,
	logger *slog.Logger,
) (*Analyzer, error) {
	compiled, err := compileRules(rs)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		rules:      compiled,
		embedder:   embedder,
		ner:        ner,
		completion: completion,
		logger:     logger,
	}, nil
}

// words splits on unicode whitespace after lowercasing.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), unicode.IsSpace)
}

// wordWindow returns n words on each side of the last occurrence of target
// within text, target included. Empty string when target does not occur as
// a whole token sequence.
func wordWindow(text, target string, n int) string {
	ws := words(text)
	ts := words(target)
	if len(ts) == 0 || len(ws) < len(ts) {
		return ""
	}
	found := -1
	for i := 0; i+len(ts) <= len(ws); i++ {
		match := true
		for j, t := range ts {
			if ws[i+j] != t {
				match = false
				break
			}
		}
		if match {
			found = i
		}
	}
	if found < 0 {
		return ""
	}
	start := found - n
	if start < 0 {
		start = 0
	}
	end := found + len(ts) + n
	if end > len(ws) {
		end = len(ws)
	}
	return strings.Join(ws[start:end], " ")
}

// charWindow returns up to n characters of context on each side of [start,end).
func charWindow(text string, start, end, n int) string {
	lo := start - n
	if lo < 0 {
		lo = 0
	}
	hi := end + n
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
