package document

import (
	"encoding/json"
	"time"

	"github.com/lexdesk/lexdesk/internal/api"
)

// RiskLevel is the backend's ordinal severity label.
type RiskLevel string

const (
	RiskLow      RiskLevel = "낮음"
	RiskMedium   RiskLevel = "중간"
	RiskHigh     RiskLevel = "높음"
	RiskCritical RiskLevel = "치명적"
)

// RiskLevels lists the known levels from least to most severe.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// Known reports whether l is one of RiskLevels.
func (l RiskLevel) Known() bool {
	for _, k := range RiskLevels {
		if l == k {
			return true
		}
	}
	return false
}

// DefaultSource is the issuing authority credited for glossary terms.
const DefaultSource = "MOLEG"

// ViewModel is the normalized document consumed by every renderer.
type ViewModel struct {
	DocumentID  string      `json:"document_id"`
	Meta        Meta        `json:"meta"`
	Summary     Summary     `json:"summary"`
	RiskProfile RiskProfile `json:"risk_profile"`
	Clauses     []Clause    `json:"clauses"`
	CausalGraph []Causality `json:"causal_graph"`
	Terms       []Term      `json:"terms"`
	CreatedAt   *time.Time  `json:"created_at,omitempty"`
}

type Meta struct {
	Language     string   `json:"language"`
	DomainTags   []string `json:"domain_tags"`
	Parties      []string `json:"parties"`
	GoverningLaw *string  `json:"governing_law"`
}

type Summary struct {
	Title              *string  `json:"title"`
	OverallSummary     string   `json:"overall_summary"`
	OneLineSummary     string   `json:"one_line_summary"`
	KeyPoints          []string `json:"key_points"`
	MainRisks          []string `json:"main_risks"`
	MainProtections    []string `json:"main_protections"`
	RecommendedActions []string `json:"recommended_actions"`
}

type RiskProfile struct {
	OverallRiskLevel RiskLevel      `json:"overall_risk_level"`
	OverallRiskScore int            `json:"overall_risk_score"`
	RiskDimensions   api.Dimensions `json:"risk_dimensions"`
	Comments         string         `json:"comments"`
}

// Clause is one structured contract segment. Clauses rebuilt from the
// saved-document endpoints always carry empty enrichment lists and tags;
// only fresh analysis results fill them.
type Clause struct {
	ClauseID     string    `json:"clause_id"`
	Title        *string   `json:"title"`
	RawText      string    `json:"raw_text"`
	Summary      *string   `json:"summary"`
	RiskLevel    RiskLevel `json:"risk_level"`
	RiskScore    int       `json:"risk_score"`
	RiskFactors  []string  `json:"risk_factors"`
	Protections  []string  `json:"protections"`
	RedFlags     []string  `json:"red_flags"`
	ActionGuides []string  `json:"action_guides"`
	KeyPoints    []string  `json:"key_points"`
	Tags         Tags      `json:"tags"`
}

type Tags struct {
	Domain  []string `json:"domain"`
	Risk    []string `json:"risk"`
	Parties []string `json:"parties"`
}

// Empty reports whether no tag group has entries.
func (t Tags) Empty() bool {
	return len(t.Domain) == 0 && len(t.Risk) == 0 && len(t.Parties) == 0
}

type Causality struct {
	From         string `json:"from_clause_id"`
	To           string `json:"to_clause_id"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
}

type Term struct {
	Term    string  `json:"term"`
	Korean  string  `json:"korean"`
	English *string `json:"english"`
	Source  string  `json:"source"`
}

// JSON renders the model as indented JSON for the raw view.
func (m ViewModel) JSON() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
