package ports

import (
	"context"
	"io"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveExtraction(ctx context.Context, id string, docDomain string, confidence float64, clauses []domain.Clause) error
}

// ComparisonRepository persists comparison runs with their reports.
type ComparisonRepository interface {
	Create(ctx context.Context, cmp *domain.Comparison) error
	GetByID(ctx context.Context, id string) (*domain.Comparison, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes extraction events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// Embedder is the embedding oracle: deterministic fixed-length vectors for
// identical input, tuned for legal text where available.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// EntityRecognizer is the named-entity oracle. Labels include generic entity
// types plus the domain-specific labels the rule tables reference.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]domain.Entity, error)
}

// CompletionClient is the text-completion oracle used by the segmentation
// fallback. The response is expected to contain a JSON array but carries no
// validity guarantee; callers must run recovery passes.
type CompletionClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ReportExporter renders a stored comparison to a flat file format.
type ReportExporter interface {
	Export(ctx context.Context, cmp *domain.Comparison, w io.Writer) error
}
