package domain

type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

type NumericValueType string

const (
	NumericAmount     NumericValueType = "amount"
	NumericPercentage NumericValueType = "percentage"
	NumericQuantity   NumericValueType = "quantity"
	NumericDate       NumericValueType = "date"
)

// LegalTermRef is a canonical legal term together with the word window it
// was found in.
type LegalTermRef struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

type ModifiedTerm struct {
	Term            string `json:"term"`
	OriginalContext string `json:"original_context"`
	NewContext      string `json:"new_context"`
}

type LegalTermDiff struct {
	Added    []LegalTermRef `json:"added"`
	Removed  []LegalTermRef `json:"removed"`
	Modified []ModifiedTerm `json:"modified"`
}

func (d LegalTermDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

type NumericDiff struct {
	Change    ChangeType       `json:"change"`
	Value     string           `json:"value"`
	ValueType NumericValueType `json:"value_type"`
	Context   string           `json:"context,omitempty"`
	Severity  Severity         `json:"severity"`
}

type ObligationDiff struct {
	Change          ChangeType `json:"change"`
	Obligation      string     `json:"obligation"`
	OriginalContext string     `json:"original_context,omitempty"`
	NewContext      string     `json:"new_context,omitempty"`
}

// Differences carries everything the scorer could attribute between two
// clause texts, or the aggregate across a whole comparison.
type Differences struct {
	LegalTerms    LegalTermDiff    `json:"legal_terms"`
	NumericValues []NumericDiff    `json:"numeric_values"`
	Obligations   []ObligationDiff `json:"obligations"`
}

func (d Differences) Empty() bool {
	return d.LegalTerms.Empty() && len(d.NumericValues) == 0 && len(d.Obligations) == 0
}

type ComponentScores struct {
	LegalTerm  float64 `json:"legal_term_score"`
	Numeric    float64 `json:"numeric_score"`
	Obligation float64 `json:"obligation_score"`
	Semantic   float64 `json:"semantic_score"`
}

// SimilarityResult is the outcome of one clause-pair comparison. Produced
// fresh per pair and never mutated afterwards.
type SimilarityResult struct {
	OverallScore    float64         `json:"similarity_score"`
	ComponentScores ComponentScores `json:"component_scores"`
	Differences     Differences     `json:"differences"`
}

type MatchBucket string

const (
	BucketMatch        MatchBucket = "match"
	BucketPartialMatch MatchBucket = "partial_match"
	BucketMismatch     MatchBucket = "mismatch"
)

// Alignment pairs one expected clause with its best-scoring counterpart.
// Matched is nil when no contract clause was adequate.
type Alignment struct {
	Expected   Clause           `json:"expected_clause"`
	Matched    *Clause          `json:"matched_clause,omitempty"`
	Similarity SimilarityResult `json:"similarity"`
	Bucket     MatchBucket      `json:"bucket"`
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

type CriticalFinding struct {
	Types          []CriticalClauseType `json:"types"`
	ExpectedNumber string               `json:"expected_number"`
	ExpectedText   string               `json:"expected_text"`
	ActualText     string               `json:"actual_text,omitempty"`
	Similarity     float64              `json:"similarity,omitempty"`
}

type CriticalAnalysis struct {
	Matched  []CriticalFinding `json:"matched_critical"`
	Modified []CriticalFinding `json:"modified_critical"`
	Missing  []CriticalFinding `json:"missing_critical"`
}

type Recommendation struct {
	Priority    Importance `json:"priority"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Action      string     `json:"action"`
	Impact      string     `json:"impact"`
}

type ReportSummary struct {
	MatchCount          int       `json:"match_count"`
	PartialMatchCount   int       `json:"partial_match_count"`
	MismatchCount       int       `json:"mismatch_count"`
	OverallSimilarity   float64   `json:"overall_similarity"`
	RiskLevel           RiskLevel `json:"risk_level"`
	CriticalIssuesCount int       `json:"critical_issues_count"`
	Status              string    `json:"status"`
	ChangeSummary       string    `json:"change_summary"`
}

// ComparisonReport is the aggregate outcome of one comparison run.
// Stateless and safe for the caller to serialize and persist.
type ComparisonReport struct {
	Summary         ReportSummary    `json:"summary"`
	ComponentScores ComponentScores  `json:"component_scores"`
	Alignments      []Alignment      `json:"alignments"`
	Differences     Differences      `json:"differences"`
	Critical        CriticalAnalysis `json:"critical_analysis"`
	RiskScore       float64          `json:"risk_score"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	Recommendations []Recommendation `json:"recommendations"`
}
