package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

type compareDocsFake struct {
	docs map[string]*domain.Document
}

func (f *compareDocsFake) Create(context.Context, *domain.Document) error { return nil }

func (f *compareDocsFake) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "fetch document", errors.New(id))
	}
	copyDoc := *doc
	return &copyDoc, nil
}

func (f *compareDocsFake) UpdateStatus(context.Context, string, domain.DocumentStatus, string) error {
	return errors.New("not implemented")
}
func (f *compareDocsFake) SaveExtraction(context.Context, string, string, float64, []domain.Clause) error {
	return errors.New("not implemented")
}

type comparisonRepoFake struct {
	created *domain.Comparison
	stored  *domain.Comparison
	err     error
}

func (f *comparisonRepoFake) Create(_ context.Context, cmp *domain.Comparison) error {
	if f.err != nil {
		return f.err
	}
	copyCmp := *cmp
	f.created = &copyCmp
	return nil
}

func (f *comparisonRepoFake) GetByID(context.Context, string) (*domain.Comparison, error) {
	if f.stored == nil {
		return nil, domain.WrapError(domain.ErrComparisonNotFound, "fetch comparison", errors.New("missing"))
	}
	return f.stored, nil
}

func readyDoc(id string, clauses ...domain.Clause) *domain.Document {
	return &domain.Document{ID: id, Status: domain.StatusReady, Clauses: clauses}
}

func TestCompareDocumentsSuccess(t *testing.T) {
	docs := &compareDocsFake{docs: map[string]*domain.Document{
		"exp": readyDoc("exp", domain.Clause{Number: "1", Text: "The Client shall pay $500."}),
		"con": readyDoc("con", domain.Clause{Number: "1", Text: "The Client shall pay $450."}),
	}}
	repo := &comparisonRepoFake{}
	analyzer := &analyzerFake{report: &domain.ComparisonReport{
		Summary: domain.ReportSummary{OverallSimilarity: 90},
	}}
	uc := NewCompareContractsUseCase(docs, repo, analyzer)

	cmp, err := uc.CompareDocuments(context.Background(), "exp", "con")
	if err != nil {
		t.Fatalf("CompareDocuments() error = %v", err)
	}
	if cmp.ID == "" {
		t.Fatalf("expected comparison id")
	}
	if cmp.ExpectedDocumentID != "exp" || cmp.ContractDocumentID != "con" {
		t.Fatalf("unexpected document ids: %+v", cmp)
	}
	if cmp.Report == nil || cmp.Report.Summary.OverallSimilarity != 90 {
		t.Fatalf("report not attached: %+v", cmp.Report)
	}
	if repo.created == nil {
		t.Fatalf("expected comparison persisted")
	}
}

func TestCompareDocumentsRejectsUnprocessed(t *testing.T) {
	docs := &compareDocsFake{docs: map[string]*domain.Document{
		"exp": {ID: "exp", Status: domain.StatusUploaded},
		"con": readyDoc("con"),
	}}
	uc := NewCompareContractsUseCase(docs, &comparisonRepoFake{}, &analyzerFake{})

	_, err := uc.CompareDocuments(context.Background(), "exp", "con")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input kind, got %v", err)
	}
}

func TestCompareDocumentsMissingDocument(t *testing.T) {
	docs := &compareDocsFake{docs: map[string]*domain.Document{}}
	uc := NewCompareContractsUseCase(docs, &comparisonRepoFake{}, &analyzerFake{})

	_, err := uc.CompareDocuments(context.Background(), "exp", "con")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected document not found, got %v", err)
	}
}

func TestGetComparisonNotFound(t *testing.T) {
	uc := NewCompareContractsUseCase(&compareDocsFake{}, &comparisonRepoFake{}, &analyzerFake{})

	_, err := uc.GetComparison(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrComparisonNotFound) {
		t.Fatalf("expected comparison not found, got %v", err)
	}
}
