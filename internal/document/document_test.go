package document

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdesk/lexdesk/internal/api"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

type fakeBackend struct {
	meta    *api.ContractMeta
	clauses []api.ClauseRow
	terms   []api.TermRow

	metaErr, clauseErr, termErr error
	calls                       atomic.Int32
}

func (f *fakeBackend) GetContract(ctx context.Context, id string) (*api.ContractMeta, error) {
	f.calls.Add(1)
	return f.meta, f.metaErr
}

func (f *fakeBackend) GetClauses(ctx context.Context, id string) ([]api.ClauseRow, error) {
	f.calls.Add(1)
	return f.clauses, f.clauseErr
}

func (f *fakeBackend) GetTerms(ctx context.Context, id string) ([]api.TermRow, error) {
	f.calls.Add(1)
	return f.terms, f.termErr
}

func TestLoadScenario(t *testing.T) {
	b := &fakeBackend{
		meta: &api.ContractMeta{
			ID:         "42",
			DomainTags: strPtr("IP,Employment"),
			IsFavorite: true,
		},
		clauses: []api.ClauseRow{{ClauseID: "C1", RiskLevel: "높음", RiskScore: 80}},
		terms:   []api.TermRow{},
	}

	got, err := Load(t.Context(), b, "42", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, b.calls.Load())

	vm := got.Model
	assert.Equal(t, "42", vm.DocumentID)
	assert.Equal(t, []string{"IP", "Employment"}, vm.Meta.DomainTags)
	require.Len(t, vm.Clauses, 1)
	assert.Equal(t, RiskHigh, vm.Clauses[0].RiskLevel)
	assert.Equal(t, 80, vm.Clauses[0].RiskScore)
	assert.Empty(t, vm.Terms)
	assert.NotNil(t, vm.Terms)
	assert.True(t, got.IsFavorite)
}

func TestLoadFailureIsDocumentLevel(t *testing.T) {
	netErr := errors.New("dial tcp: connection refused")
	tests := []struct {
		name string
		b    *fakeBackend
	}{
		{name: "metadata", b: &fakeBackend{metaErr: netErr}},
		{name: "clauses", b: &fakeBackend{meta: &api.ContractMeta{}, clauseErr: netErr}},
		{name: "terms", b: &fakeBackend{meta: &api.ContractMeta{}, termErr: netErr}},
		{name: "nil metadata", b: &fakeBackend{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(t.Context(), tt.b, "42", nil)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}

	_, err := Load(t.Context(), &fakeBackend{metaErr: netErr}, "42", nil)
	assert.ErrorIs(t, err, netErr)
}

func TestFromBackendDefaults(t *testing.T) {
	vm := FromBackend("7", Source{Meta: &api.ContractMeta{}})

	assert.Equal(t, "ko", vm.Meta.Language)
	assert.Equal(t, []string{}, vm.Meta.DomainTags)
	assert.Equal(t, []string{}, vm.Meta.Parties)
	assert.Nil(t, vm.Meta.GoverningLaw)
	assert.Nil(t, vm.Summary.Title)
	assert.Equal(t, "", vm.Summary.OverallSummary)
	assert.Equal(t, RiskMedium, vm.RiskProfile.OverallRiskLevel)
	assert.Equal(t, 50, vm.RiskProfile.OverallRiskScore)
	assert.Equal(t, api.Dimensions{}, vm.RiskProfile.RiskDimensions)
	assert.Equal(t, []Clause{}, vm.Clauses)
	assert.Nil(t, vm.CreatedAt)

	// A nil metadata pointer is treated like an empty row.
	assert.Equal(t, vm, FromBackend("7", Source{}))
}

func TestEmbeddedListNeverFails(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "absent", raw: ``, want: []string{}},
		{name: "null", raw: `null`, want: []string{}},
		{name: "empty string", raw: `""`, want: []string{}},
		{name: "encoded null", raw: `"null"`, want: []string{}},
		{name: "malformed", raw: `"[\"a\", "`, want: []string{}},
		{name: "not a list", raw: `"{\"a\":1}"`, want: []string{}},
		{name: "not json", raw: `"just text"`, want: []string{}},
		{name: "encoded list", raw: `"[\"a\",\"b\"]"`, want: []string{"a", "b"}},
		{name: "bare list", raw: `["a"]`, want: []string{"a"}},
		{name: "mixed items", raw: `"[\"a\", 3, null]"`, want: []string{"a", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, EmbeddedList(json.RawMessage(tt.raw)))
			})
		})
	}
}

func TestFromBackendSummaryFields(t *testing.T) {
	meta := &api.ContractMeta{
		Title:              strPtr("용역 계약서"),
		Summary:            strPtr("요약"),
		KeyPoints:          json.RawMessage(`"[\"기간 1년\"]"`),
		MainRisks:          json.RawMessage(`"broken`),
		MainProtections:    json.RawMessage(`null`),
		RecommendedActions: json.RawMessage(`"[\"검토\",\"협상\"]"`),
		RiskLevel:          strPtr("치명적"),
		RiskScore:          intPtr(0),
		RiskDimensions:     json.RawMessage(`"{\"해지\": 60, \"지급/대금\": 80}"`),
		RiskComments:       strPtr("주의"),
		GoverningLaw:       strPtr("대한민국 법"),
		Parties:            strPtr(" 갑 , 을 ,"),
	}
	vm := FromBackend("1", Source{Meta: meta})

	assert.Equal(t, "용역 계약서", *vm.Summary.Title)
	assert.Equal(t, "요약", vm.Summary.OverallSummary)
	assert.Equal(t, "요약", vm.Summary.OneLineSummary)
	assert.Equal(t, []string{"기간 1년"}, vm.Summary.KeyPoints)
	assert.Equal(t, []string{}, vm.Summary.MainRisks)
	assert.Equal(t, []string{}, vm.Summary.MainProtections)
	assert.Equal(t, []string{"검토", "협상"}, vm.Summary.RecommendedActions)
	assert.Equal(t, RiskCritical, vm.RiskProfile.OverallRiskLevel)
	assert.Equal(t, 0, vm.RiskProfile.OverallRiskScore)
	assert.Equal(t, api.Dimensions{{Name: "해지", Score: 60}, {Name: "지급/대금", Score: 80}}, vm.RiskProfile.RiskDimensions)
	assert.Equal(t, "주의", vm.RiskProfile.Comments)
	assert.Equal(t, "대한민국 법", *vm.Meta.GoverningLaw)
	assert.Equal(t, []string{"갑", "을"}, vm.Meta.Parties)
}

func TestFromBackendClausesStayUnenriched(t *testing.T) {
	vm := FromBackend("1", Source{
		Meta: &api.ContractMeta{},
		Clauses: []api.ClauseRow{
			{ClauseID: "제1조", Title: strPtr(""), RawText: "원문", Summary: strPtr("요약"), RiskLevel: "낮음", RiskScore: 10},
		},
	})
	c := vm.Clauses[0]
	assert.Nil(t, c.Title)
	assert.Equal(t, "요약", *c.Summary)
	assert.Equal(t, []string{}, c.RiskFactors)
	assert.Equal(t, []string{}, c.Protections)
	assert.Equal(t, []string{}, c.RedFlags)
	assert.Equal(t, []string{}, c.ActionGuides)
	assert.Equal(t, []string{}, c.KeyPoints)
	assert.True(t, c.Tags.Empty())

	raw := vm.JSON()
	assert.Contains(t, raw, `"risk_factors": []`)
	assert.Contains(t, raw, `"domain": []`)
}

func TestClauseIDsAreUnique(t *testing.T) {
	vm := FromBackend("1", Source{Clauses: []api.ClauseRow{
		{ClauseID: "C1"}, {ClauseID: "C1"}, {ClauseID: ""}, {ClauseID: "C2"},
	}})
	var ids []string
	for _, c := range vm.Clauses {
		ids = append(ids, c.ClauseID)
	}
	assert.Equal(t, []string{"C1", "C1~2", "clause_3", "C2"}, ids)
}

func TestTermsDefaultSource(t *testing.T) {
	vm := FromBackend("1", Source{Terms: []api.TermRow{
		{Term: "해지", Korean: "계약을 장래에 향하여 소멸시키는 것"},
		{Term: "위약금", Korean: "…", English: strPtr("penalty"), Source: "KLRI"},
	}})
	assert.Equal(t, DefaultSource, vm.Terms[0].Source)
	assert.Nil(t, vm.Terms[0].English)
	assert.Equal(t, "KLRI", vm.Terms[1].Source)
	assert.Equal(t, "penalty", *vm.Terms[1].English)
}

func TestCreatedAtFallback(t *testing.T) {
	nav := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	vm := FromBackend("1", Source{Meta: &api.ContractMeta{CreatedAt: strPtr("2025-01-02T03:04:05.123456")}, NavCreatedAt: &nav})
	require.NotNil(t, vm.CreatedAt)
	assert.Equal(t, 2025, vm.CreatedAt.Year())
	assert.Equal(t, time.January, vm.CreatedAt.Month())

	vm = FromBackend("1", Source{Meta: &api.ContractMeta{CreatedAt: strPtr("garbage")}, NavCreatedAt: &nav})
	require.NotNil(t, vm.CreatedAt)
	assert.True(t, vm.CreatedAt.Equal(nav))

	vm = FromBackend("1", Source{Meta: &api.ContractMeta{}})
	assert.Nil(t, vm.CreatedAt)
}

func TestFromAnalysisKeepsEnrichment(t *testing.T) {
	doc := &api.AnalysisDocument{
		DocumentID: "99",
		Meta:       api.AnalysisMeta{DomainTags: []string{"임대차"}},
		Summary:    api.AnalysisSummary{OverallSummary: "o", KeyPoints: []string{"k"}},
		RiskProfile: api.AnalysisRisk{
			OverallRiskLevel: "높음",
			OverallRiskScore: intPtr(140),
		},
		Clauses: []api.AnalysisClause{{
			ClauseID:     "제7조",
			Summary:      "해지",
			RiskLevel:    "치명적",
			RiskFactors:  []string{"일방 해지"},
			ActionGuides: []string{"통지 기간 협상"},
			Tags:         api.ClauseTags{Risk: []string{"해지"}},
		}},
		CausalGraph: []api.ClauseCausality{{FromClauseID: "제7조", ToClauseID: "제9조", Relationship: "triggers"}},
	}
	vm := FromAnalysis(doc)

	assert.Equal(t, "99", vm.DocumentID)
	assert.Equal(t, "ko", vm.Meta.Language)
	assert.Equal(t, 100, vm.RiskProfile.OverallRiskScore)
	assert.Equal(t, []string{"일방 해지"}, vm.Clauses[0].RiskFactors)
	assert.Equal(t, []string{"통지 기간 협상"}, vm.Clauses[0].ActionGuides)
	assert.Equal(t, []string{}, vm.Clauses[0].RedFlags)
	assert.False(t, vm.Clauses[0].Tags.Empty())
	assert.Equal(t, "triggers", vm.CausalGraph[0].Relationship)
	assert.Equal(t, []Term{}, vm.Terms)
}

func TestRiskLevelKnown(t *testing.T) {
	for _, l := range RiskLevels {
		assert.True(t, l.Known(), l)
	}
	assert.False(t, RiskLevel("unknown").Known())
	assert.False(t, RiskLevel("").Known())
}

func TestFilterSummaries(t *testing.T) {
	docs := []api.ContractSummary{
		{ID: "1", Title: "Lease", Summary: "office", RiskLevel: "높음"},
		{ID: "2", Title: "NDA", Summary: "Confidential LEASE terms", RiskLevel: "낮음"},
		{ID: "3", Title: "Loan", RiskLevel: "중간"},
	}
	tests := []struct {
		query, risk string
		want        []string
	}{
		{"", "", []string{"1", "2", "3"}},
		{"", "all", []string{"1", "2", "3"}},
		{"lease", "", []string{"1", "2"}},
		{"lease", "낮음", []string{"2"}},
		{"  ", "중간", []string{"3"}},
		{"missing", "", []string{}},
	}
	for _, tt := range tests {
		ids := []string{}
		for _, d := range FilterSummaries(docs, tt.query, tt.risk) {
			ids = append(ids, d.ID.String())
		}
		assert.Equal(t, tt.want, ids, "query=%q risk=%q", tt.query, tt.risk)
	}
}
