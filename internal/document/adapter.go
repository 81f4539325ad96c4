package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lexdesk/lexdesk/internal/api"
)

// Defaults applied when the backend omits a field.
const (
	DefaultLanguage  = "ko"
	DefaultRiskLevel = RiskMedium
	DefaultRiskScore = 50
)

// Source bundles the three backend payloads a saved document is rebuilt from.
type Source struct {
	Meta    *api.ContractMeta
	Clauses []api.ClauseRow
	Terms   []api.TermRow
	// NavCreatedAt is the timestamp handed over by the referring page, used
	// when the metadata has none.
	NavCreatedAt *time.Time
}

// FromBackend builds the view model for document id. It never fails:
// every absent or malformed field degrades to its documented default.
func FromBackend(id string, src Source) ViewModel {
	meta := src.Meta
	if meta == nil {
		meta = &api.ContractMeta{}
	}

	summary := deref(meta.Summary)
	vm := ViewModel{
		DocumentID: id,
		Meta: Meta{
			Language:     orDefault(deref(meta.Language), DefaultLanguage),
			DomainTags:   SplitList(deref(meta.DomainTags)),
			Parties:      SplitList(deref(meta.Parties)),
			GoverningLaw: nonEmpty(meta.GoverningLaw),
		},
		Summary: Summary{
			Title:              nonEmpty(meta.Title),
			OverallSummary:     summary,
			OneLineSummary:     summary,
			KeyPoints:          EmbeddedList(meta.KeyPoints),
			MainRisks:          EmbeddedList(meta.MainRisks),
			MainProtections:    EmbeddedList(meta.MainProtections),
			RecommendedActions: EmbeddedList(meta.RecommendedActions),
		},
		RiskProfile: RiskProfile{
			OverallRiskLevel: RiskLevel(orDefault(deref(meta.RiskLevel), string(DefaultRiskLevel))),
			OverallRiskScore: clampScore(meta.RiskScore),
			RiskDimensions:   EmbeddedDimensions(meta.RiskDimensions),
			Comments:         deref(meta.RiskComments),
		},
		Clauses:     make([]Clause, 0, len(src.Clauses)),
		CausalGraph: []Causality{},
		Terms:       make([]Term, 0, len(src.Terms)),
		CreatedAt:   createdAt(meta.CreatedAt, src.NavCreatedAt),
	}

	ids := newClauseIDs()
	for _, c := range src.Clauses {
		vm.Clauses = append(vm.Clauses, Clause{
			ClauseID:     ids.next(c.ClauseID.String()),
			Title:        nonEmpty(c.Title),
			RawText:      c.RawText,
			Summary:      nonEmpty(c.Summary),
			RiskLevel:    RiskLevel(c.RiskLevel),
			RiskScore:    c.RiskScore,
			RiskFactors:  []string{},
			Protections:  []string{},
			RedFlags:     []string{},
			ActionGuides: []string{},
			KeyPoints:    []string{},
			Tags:         emptyTags(),
		})
	}
	for _, t := range src.Terms {
		vm.Terms = append(vm.Terms, termFrom(t))
	}
	return vm
}

// SplitList splits a comma-joined field into trimmed, non-empty entries.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EmbeddedList decodes a list of strings stored as a JSON-encoded string
// (or, tolerantly, as a bare JSON array). null, empty, or malformed input
// yields an empty list.
func EmbeddedList(raw json.RawMessage) []string {
	data, ok := unwrapEmbedded(raw)
	if !ok {
		return []string{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		if text := strings.TrimSpace(string(item)); text != "null" {
			out = append(out, text)
		}
	}
	return out
}

// EmbeddedDimensions decodes the risk-dimension object the same way as
// EmbeddedList, keeping key order.
func EmbeddedDimensions(raw json.RawMessage) api.Dimensions {
	data, ok := unwrapEmbedded(raw)
	if !ok {
		return api.Dimensions{}
	}
	dims, err := api.DecodeDimensions(data)
	if err != nil {
		return api.Dimensions{}
	}
	return dims
}

// unwrapEmbedded returns the JSON document inside raw. A JSON string is
// unquoted once; any other JSON value is returned as is.
func unwrapEmbedded(raw json.RawMessage) ([]byte, bool) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || string(data) == "null" {
		return nil, false
	}
	if data[0] != '"' {
		return data, true
	}
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, false
	}
	inner = strings.TrimSpace(inner)
	if inner == "" || inner == "null" {
		return nil, false
	}
	return []byte(inner), true
}

// timestampLayouts are the formats the backend has been seen to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp, reporting false when no
// known layout matches.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func createdAt(raw *string, fallback *time.Time) *time.Time {
	if raw != nil {
		if t, ok := ParseTimestamp(*raw); ok {
			return &t
		}
	}
	if fallback != nil && !fallback.IsZero() {
		t := *fallback
		return &t
	}
	return nil
}

// clauseIDs keeps clause ids unique within a document: the accordion keys
// its open state on them.
type clauseIDs struct {
	seen map[string]int
	n    int
}

func newClauseIDs() *clauseIDs { return &clauseIDs{seen: make(map[string]int)} }

func (c *clauseIDs) next(id string) string {
	c.n++
	id = strings.TrimSpace(id)
	if id == "" {
		id = fmt.Sprintf("clause_%d", c.n)
	}
	c.seen[id]++
	if count := c.seen[id]; count > 1 {
		return fmt.Sprintf("%s~%d", id, count)
	}
	return id
}

func termFrom(t api.TermRow) Term {
	return Term{
		Term:    t.Term,
		Korean:  t.Korean,
		English: nonEmpty(t.English),
		Source:  orDefault(t.Source, DefaultSource),
	}
}

func clampScore(score *int) int {
	if score == nil {
		return DefaultRiskScore
	}
	switch {
	case *score < 0:
		return 0
	case *score > 100:
		return 100
	}
	return *score
}

func emptyTags() Tags {
	return Tags{Domain: []string{}, Risk: []string{}, Parties: []string{}}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
