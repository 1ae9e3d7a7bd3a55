package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kirillkom/contract-term-analyzer/internal/core/domain"
)

type ComparisonRepository struct {
	db *sql.DB
}

func NewComparisonRepository(db *sql.DB) *ComparisonRepository {
	return &ComparisonRepository{db: db}
}

func (r *ComparisonRepository) Create(ctx context.Context, cmp *domain.Comparison) error {
	reportJSON, err := json.Marshal(cmp.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO comparisons (
	id, expected_document_id, contract_document_id, report, created_at
) VALUES ($1,$2,$3,$4,$5)
`,
		cmp.ID, cmp.ExpectedDocumentID, cmp.ContractDocumentID, reportJSON, cmp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comparison: %w", err)
	}
	return nil
}

func (r *ComparisonRepository) GetByID(ctx context.Context, id string) (*domain.Comparison, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, expected_document_id, contract_document_id, report, created_at
FROM comparisons
WHERE id = $1
`, id)

	var cmp domain.Comparison
	var reportRaw []byte

	err := row.Scan(&cmp.ID, &cmp.ExpectedDocumentID, &cmp.ContractDocumentID, &reportRaw, &cmp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrComparisonNotFound, "get comparison", fmt.Errorf("id %s", id))
		}
		return nil, fmt.Errorf("scan comparison: %w", err)
	}

	if err := json.Unmarshal(reportRaw, &cmp.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &cmp, nil
}
