package detail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/i18n"
)

func textModel() document.ViewModel {
	title := "Office Lease"
	english := "termination"
	return document.ViewModel{
		DocumentID: "42",
		Meta:       document.Meta{Language: "en", Parties: []string{"Landlord", "Tenant"}, DomainTags: []string{}},
		Summary: document.Summary{
			Title:          &title,
			OneLineSummary: "Two-year lease",
			KeyPoints:      []string{"Deposit is refundable"},
			MainRisks:      []string{},
		},
		RiskProfile: document.RiskProfile{
			OverallRiskLevel: document.RiskHigh,
			OverallRiskScore: 80,
			RiskDimensions:   api.Dimensions{{Name: "Payment", Score: 50}},
		},
		Clauses: []document.Clause{{
			ClauseID:    "C1",
			RawText:     "line one\nline two",
			RiskLevel:   document.RiskLow,
			RiskScore:   10,
			RiskFactors: []string{"Auto renewal"},
			RedFlags:    []string{},
		}},
		Terms: []document.Term{{Term: "해지", Korean: "계약 소멸", English: &english, Source: "MOLEG"}},
	}
}

func render(t *testing.T, tab Tab) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, textModel(), tab, i18n.For("en")))
	return buf.String()
}

func TestWriteTextSummary(t *testing.T) {
	out := render(t, TabSummary)
	assert.Contains(t, out, "Office Lease\n============\n")
	assert.Contains(t, out, "Parties: Landlord, Tenant")
	assert.NotContains(t, out, "Domains:")
	assert.Contains(t, out, "Risk level: High  Risk score 80  [###############-----]")
	assert.Contains(t, out, "  - Deposit is refundable")
	assert.NotContains(t, out, "Payment", "dimensions belong to the risk tab")
}

func TestWriteTextRisk(t *testing.T) {
	out := render(t, TabRisk)
	assert.Contains(t, out, "Risk by dimension")
	assert.Contains(t, out, "[##########----------] 50")
	assert.Contains(t, out, "Main risks\n  None")
}

func TestWriteTextClauses(t *testing.T) {
	out := render(t, TabClauses)
	assert.Contains(t, out, "[C1] · Low 10")
	assert.Contains(t, out, "Risk factors\n    - Auto renewal")
	assert.NotContains(t, out, "Red flags")
	assert.Contains(t, out, "    line one\n    line two\n")
}

func TestWriteTextTermsAndRaw(t *testing.T) {
	assert.Equal(t, "해지 (termination): 계약 소멸 [MOLEG]\n", render(t, TabTerms))
	assert.Contains(t, render(t, TabRaw), `"document_id": "42"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteTextReportsWriteError(t *testing.T) {
	err := WriteText(failingWriter{}, textModel(), TabSummary, i18n.For("en"))
	assert.EqualError(t, err, "closed pipe")
}

func TestBarClamps(t *testing.T) {
	assert.Equal(t, "[--------------------]", bar(-5))
	assert.Equal(t, "[####################]", bar(140))
}
