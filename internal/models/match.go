package models

// MatchConfidence tags how a payer name was resolved.
type MatchConfidence string

const (
	ConfidenceExact MatchConfidence = "exact"
	ConfidenceFuzzy MatchConfidence = "fuzzy"
	ConfidenceNone  MatchConfidence = "none"
)

// MatchAction is the treatment the orchestrator applies for a payer name.
type MatchAction string

const (
	ActionUseExisting MatchAction = "use_existing"
	ActionCreateNew   MatchAction = "create_new"
)

// PayerMatch resolves one distinct payer name from the import against the
// user's existing payers. Exactly one exists per distinct source name; it is
// created once and read-only afterward.
type PayerMatch struct {
	SourceName   string          `json:"sourceName" yaml:"source_name"`
	ExistingID   string          `json:"existingId,omitempty" yaml:"existing_id,omitempty"`
	ExistingName string          `json:"existingName,omitempty" yaml:"existing_name,omitempty"`
	Confidence   MatchConfidence `json:"confidence" yaml:"confidence"`
	Action       MatchAction     `json:"action" yaml:"action"`
	Score        float64         `json:"score,omitempty" yaml:"score,omitempty"`
}

// DuplicateConfidence grades a duplicate finding.
type DuplicateConfidence string

const (
	DuplicateHigh   DuplicateConfidence = "high"
	DuplicateMedium DuplicateConfidence = "medium"
)

// DuplicateGroup is a finding, not an entity: it pairs import rows with an
// existing record they likely duplicate. Multiple groups may reference the
// same row when the match is ambiguous.
type DuplicateGroup struct {
	RowIndexes []int               `json:"rowIndexes" yaml:"row_indexes"`
	ExistingID string              `json:"existingId,omitempty" yaml:"existing_id,omitempty"`
	Key        string              `json:"key" yaml:"key"`
	Confidence DuplicateConfidence `json:"confidence" yaml:"confidence"`
}
