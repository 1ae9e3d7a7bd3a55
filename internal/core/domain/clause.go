package domain

type Category string

const (
	CategoryFinancial   Category = "Financial"
	CategoryLegal       Category = "Legal"
	CategoryOperational Category = "Operational"
	CategoryGeneral     Category = "General"
)

type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

// Rank orders importance levels for comparisons (High > Medium > Low).
func (i Importance) Rank() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	case ImportanceLow:
		return 1
	default:
		return 0
	}
}

type CriticalClauseType string

const (
	CriticalPayment              CriticalClauseType = "payment"
	CriticalTermination          CriticalClauseType = "termination"
	CriticalLiability            CriticalClauseType = "liability"
	CriticalConfidentiality      CriticalClauseType = "confidentiality"
	CriticalIntellectualProperty CriticalClauseType = "intellectual_property"
	CriticalDisputeResolution    CriticalClauseType = "dispute_resolution"
	CriticalForceMajeure         CriticalClauseType = "force_majeure"
)

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Clause is one titled, numbered unit of contract text. Immutable once
// extracted; the number is unique within its document.
type Clause struct {
	Number        string               `json:"number"`
	Title         string               `json:"title"`
	Text          string               `json:"text"`
	Category      Category             `json:"category"`
	Importance    Importance           `json:"importance"`
	IsCritical    bool                 `json:"is_critical"`
	CriticalTypes []CriticalClauseType `json:"critical_types,omitempty"`
	Entities      []Entity             `json:"entities,omitempty"`
	SubClauses    []Clause             `json:"sub_clauses,omitempty"`
}
