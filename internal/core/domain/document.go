package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

type DocumentType string

const (
	DocumentExpected DocumentType = "expected"
	DocumentContract DocumentType = "contract"
)

type Document struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	MimeType    string         `json:"mime_type"`
	StoragePath string         `json:"storage_path"`
	Type        DocumentType   `json:"type"`
	Domain      string         `json:"domain,omitempty"`
	Confidence  float64        `json:"confidence,omitempty"`
	Clauses     []Clause       `json:"clauses,omitempty"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Comparison struct {
	ID                 string            `json:"id"`
	ExpectedDocumentID string            `json:"expected_document_id"`
	ContractDocumentID string            `json:"contract_document_id"`
	Report             *ComparisonReport `json:"report,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}
