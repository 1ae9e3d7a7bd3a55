package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
	"github.com/kirillkom/contract-term-analyzer/internal/core/ports"
)

// CompareContractsUseCase runs comparisons between an expected-terms document
// and a received contract, and persists the resulting report.
type CompareContractsUseCase struct {
	docs        ports.DocumentRepository
	comparisons ports.ComparisonRepository
	analyzer    ports.ClauseAnalyzer
}

func NewCompareContractsUseCase(
	docs ports.DocumentRepository,
	comparisons ports.ComparisonRepository,
	analyzer ports.ClauseAnalyzer,
) *CompareContractsUseCase {
	return &CompareContractsUseCase{
		docs:        docs,
		comparisons: comparisons,
		analyzer:    analyzer,
	}
}

// CompareContracts compares two already-extracted clause lists without
// touching persistence.
func (uc *CompareContractsUseCase) CompareContracts(ctx context.Context, expected, contract []domain.Clause) (*domain.ComparisonReport, error) {
	report, err := uc.analyzer.CompareContracts(ctx, expected, contract)
	if err != nil {
		return nil, fmt.Errorf("compare contracts: %w", err)
	}
	return report, nil
}

// CompareDocuments loads both stored documents, requires them to be fully
// processed, runs the comparison over their clauses and persists the report.
func (uc *CompareContractsUseCase) CompareDocuments(ctx context.Context, expectedID, contractID string) (*domain.Comparison, error) {
	expected, err := uc.loadReady(ctx, expectedID)
	if err != nil {
		return nil, err
	}
	contract, err := uc.loadReady(ctx, contractID)
	if err != nil {
		return nil, err
	}

	report, err := uc.analyzer.CompareContracts(ctx, expected.Clauses, contract.Clauses)
	if err != nil {
		return nil, fmt.Errorf("compare documents: %w", err)
	}

	cmp := &domain.Comparison{
		ID:                 uuid.NewString(),
		ExpectedDocumentID: expectedID,
		ContractDocumentID: contractID,
		Report:             report,
		CreatedAt:          time.Now().UTC(),
	}
	if err := uc.comparisons.Create(ctx, cmp); err != nil {
		return nil, fmt.Errorf("persist comparison: %w", err)
	}
	return cmp, nil
}

// GetComparison returns a stored comparison with its report.
func (uc *CompareContractsUseCase) GetComparison(ctx context.Context, id string) (*domain.Comparison, error) {
	cmp, err := uc.comparisons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch comparison by id: %w", err)
	}
	return cmp, nil
}

func (uc *CompareContractsUseCase) loadReady(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := uc.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document by id: %w", err)
	}
	if doc.Status != domain.StatusReady {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compare documents",
			fmt.Errorf("document %s has status %s, want %s", documentID, doc.Status, domain.StatusReady))
	}
	return doc, nil
}
