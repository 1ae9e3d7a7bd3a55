package ports

import (
	"context"
	"io"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, docType domain.DocumentType, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous clause extraction.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// ClauseExtractor segments raw contract text into structured clauses.
type ClauseExtractor interface {
	ExtractClauses(ctx context.Context, text string) ([]domain.Clause, error)
}

// ContractComparator runs the full comparison pipeline. CompareContracts
// always returns a well-formed report, degraded rather than failed.
type ContractComparator interface {
	CompareContracts(ctx context.Context, expected, contract []domain.Clause) (*domain.ComparisonReport, error)
	CompareDocuments(ctx context.Context, expectedID, contractID string) (*domain.Comparison, error)
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// ComparisonReader is the inbound read model for stored comparisons.
type ComparisonReader interface {
	GetComparison(ctx context.Context, id string) (*domain.Comparison, error)
}
