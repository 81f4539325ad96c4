package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString decodes a JSON string or number into a string. The backend
// uses integer primary keys in some payloads and string ids in others.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// User is the profile returned by GET /auth/me.
type User struct {
	ID          FlexString `json:"id"`
	OpenID      string     `json:"open_id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
	LoginMethod string     `json:"login_method,omitempty"`
	Role        string     `json:"role,omitempty"`
}

// ContractMeta is the document row returned by GET /contracts/{id}.
// List-valued fields are stored comma-joined or as embedded JSON strings,
// so they are kept raw here and normalized by the document package.
type ContractMeta struct {
	ID                 FlexString      `json:"id"`
	Title              *string         `json:"title"`
	Summary            *string         `json:"summary"`
	Language           *string         `json:"language"`
	DomainTags         *string         `json:"domain_tags"`
	Parties            *string         `json:"parties"`
	GoverningLaw       *string         `json:"governing_law"`
	KeyPoints          json.RawMessage `json:"key_points"`
	MainRisks          json.RawMessage `json:"main_risks"`
	MainProtections    json.RawMessage `json:"main_protections"`
	RecommendedActions json.RawMessage `json:"recommended_actions"`
	RiskLevel          *string         `json:"risk_level"`
	RiskScore          *int            `json:"risk_score"`
	RiskDimensions     json.RawMessage `json:"risk_dimensions"`
	RiskComments       *string         `json:"risk_comments"`
	IsFavorite         bool            `json:"is_favorite"`
	CreatedAt          *string         `json:"created_at"`
}

// ClauseRow is one entry of GET /contracts/{id}/clauses.
type ClauseRow struct {
	ClauseID  FlexString `json:"clause_id"`
	Title     *string    `json:"title"`
	RawText   string     `json:"raw_text"`
	Summary   *string    `json:"summary"`
	RiskLevel string     `json:"risk_level"`
	RiskScore int        `json:"risk_score"`
}

// TermRow is one entry of GET /contracts/{id}/terms.
type TermRow struct {
	Term    string  `json:"term"`
	Korean  string  `json:"korean"`
	English *string `json:"english"`
	Source  string  `json:"source"`
}

// ContractSummary is one entry of GET /contracts/list.
type ContractSummary struct {
	ID         FlexString `json:"id"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	RiskLevel  string     `json:"risk_level"`
	RiskScore  *int       `json:"risk_score"`
	IsFavorite bool       `json:"is_favorite"`
	CreatedAt  string     `json:"created_at"`
}

// ExtractResult is the response of POST /api/files/extract-text.
type ExtractResult struct {
	Filename string `json:"filename"`
	Preview  string `json:"preview"`
	Length   int    `json:"length"`
}

// AskResult is the response of POST /api/ask.
type AskResult struct {
	ID       FlexString `json:"id"`
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
}

// Dimension is one named risk-dimension score.
type Dimension struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Dimensions is a JSON object of name→score that keeps the key order the
// backend sent.
type Dimensions []Dimension

func (d *Dimensions) UnmarshalJSON(data []byte) error {
	out, err := DecodeDimensions(data)
	if err != nil {
		return err
	}
	*d = out
	return nil
}

func (d Dimensions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, dim := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(dim.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(dim.Score))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeDimensions reads an ordered name→score object. null or empty input
// yields an empty result. Non-integer scores are truncated.
func DecodeDimensions(data []byte) (Dimensions, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return Dimensions{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("risk dimensions: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("risk dimensions: expected object")
	}

	out := Dimensions{}
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("risk dimensions: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("risk dimensions: expected key")
		}
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("risk dimensions %q: %w", name, err)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("risk dimensions %q: %w", name, err)
		}
		// Later duplicates overwrite in place, like a JSON object would.
		if i, dup := seen[name]; dup {
			out[i].Score = int(f)
			continue
		}
		seen[name] = len(out)
		out = append(out, Dimension{Name: name, Score: int(f)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("risk dimensions: %w", err)
	}
	return out, nil
}

// AnalysisDocument is the full analysis returned by
// POST /api/files/full-interpret under the "document" key.
type AnalysisDocument struct {
	DocumentID  FlexString        `json:"document_id"`
	Meta        AnalysisMeta      `json:"meta"`
	Summary     AnalysisSummary   `json:"summary"`
	RiskProfile AnalysisRisk      `json:"risk_profile"`
	Clauses     []AnalysisClause  `json:"clauses"`
	CausalGraph []ClauseCausality `json:"causal_graph"`
	Terms       []TermRow         `json:"terms"`
	CreatedAt   *string           `json:"created_at,omitempty"`
}

type AnalysisMeta struct {
	Language     string   `json:"language"`
	DomainTags   []string `json:"domain_tags"`
	Parties      []string `json:"parties"`
	GoverningLaw *string  `json:"governing_law"`
}

type AnalysisSummary struct {
	Title              *string  `json:"title"`
	OverallSummary     string   `json:"overall_summary"`
	OneLineSummary     string   `json:"one_line_summary"`
	KeyPoints          []string `json:"key_points"`
	MainRisks          []string `json:"main_risks"`
	MainProtections    []string `json:"main_protections"`
	RecommendedActions []string `json:"recommended_actions"`
}

type AnalysisRisk struct {
	OverallRiskLevel string     `json:"overall_risk_level"`
	OverallRiskScore *int       `json:"overall_risk_score"`
	RiskDimensions   Dimensions `json:"risk_dimensions"`
	Comments         string     `json:"comments"`
}

type AnalysisClause struct {
	ClauseID     FlexString `json:"clause_id"`
	Title        *string    `json:"title"`
	RawText      string     `json:"raw_text"`
	Summary      string     `json:"summary"`
	RiskLevel    string     `json:"risk_level"`
	RiskScore    int        `json:"risk_score"`
	RiskFactors  []string   `json:"risk_factors"`
	Protections  []string   `json:"protections"`
	RedFlags     []string   `json:"red_flags"`
	ActionGuides []string   `json:"action_guides"`
	KeyPoints    []string   `json:"key_points"`
	Tags         ClauseTags `json:"tags"`
}

type ClauseTags struct {
	Domain  []string `json:"domain"`
	Risk    []string `json:"risk"`
	Parties []string `json:"parties"`
}

// ClauseCausality links two clauses of an analysis result.
type ClauseCausality struct {
	FromClauseID string `json:"from_clause_id"`
	ToClauseID   string `json:"to_clause_id"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
}
