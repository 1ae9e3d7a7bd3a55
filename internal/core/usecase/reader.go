package usecase

import (
	"context"
	"fmt"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
	"github.com/kirillkom/contract-term-analyzer/internal/core/ports"
)

// DocumentQueryUseCase is the read side for document metadata and clauses.
type DocumentQueryUseCase struct {
	repo ports.DocumentRepository
}

func NewDocumentQueryUseCase(repo ports.DocumentRepository) *DocumentQueryUseCase {
	return &DocumentQueryUseCase{repo: repo}
}

func (uc *DocumentQueryUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	return doc, nil
}
