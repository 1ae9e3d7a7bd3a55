package ports

import (
	"context"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// ClauseAnalyzer is the comparison engine the use cases drive: domain
// detection, clause extraction and full contract comparison.
type ClauseAnalyzer interface {
	DetectDomain(ctx context.Context, text string) (string, float64)
	ExtractClausesForDomain(ctx context.Context, text, contractDomain string) ([]domain.Clause, error)
	CompareContracts(ctx context.Context, expected, contract []domain.Clause) (*domain.ComparisonReport, error)
}
