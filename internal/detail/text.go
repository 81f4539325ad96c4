package detail

import (
	"fmt"
	"io"
	"strings"

	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/i18n"
)

const barWidth = 20

// WriteText renders one tab of vm as plain text for the terminal. Every
// clause is expanded.
func WriteText(w io.Writer, vm document.ViewModel, tab Tab, tr i18n.Translator) error {
	tw := &textWriter{w: w, tr: tr}
	switch tab {
	case TabRisk:
		tw.gauge(NewGauge(vm.RiskProfile, true))
		if vm.RiskProfile.Comments != "" {
			tw.heading("detail.comments")
			tw.line(vm.RiskProfile.Comments)
		}
		tw.list("detail.main_risks", vm.Summary.MainRisks)
		tw.list("detail.main_protections", vm.Summary.MainProtections)
		tw.list("detail.recommended_actions", vm.Summary.RecommendedActions)
	case TabClauses:
		if len(vm.Clauses) == 0 {
			tw.line(tr.T("detail.no_clauses"))
		}
		for _, c := range vm.Clauses {
			tw.clause(c)
		}
	case TabTerms:
		if len(vm.Terms) == 0 {
			tw.line(tr.T("detail.no_terms"))
		}
		for _, t := range vm.Terms {
			english := ""
			if t.English != nil {
				english = " (" + *t.English + ")"
			}
			tw.printf("%s%s: %s [%s]\n", t.Term, english, t.Korean, t.Source)
		}
	case TabRaw:
		tw.line(vm.JSON())
	default:
		tw.summary(vm)
	}
	return tw.err
}

type textWriter struct {
	w   io.Writer
	tr  i18n.Translator
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) line(s string) { t.printf("%s\n", s) }

func (t *textWriter) heading(key string) { t.printf("\n%s\n", t.tr.T(key)) }

func (t *textWriter) field(key, value string) {
	if value != "" {
		t.printf("%s: %s\n", t.tr.T(key), value)
	}
}

func (t *textWriter) list(key string, items []string) {
	t.heading(key)
	if len(items) == 0 {
		t.printf("  %s\n", t.tr.T("detail.none"))
		return
	}
	for _, item := range items {
		t.printf("  - %s\n", item)
	}
}

func (t *textWriter) summary(vm document.ViewModel) {
	title := t.tr.T("detail.untitled")
	if vm.Summary.Title != nil {
		title = *vm.Summary.Title
	}
	t.line(title)
	t.line(strings.Repeat("=", len([]rune(title))))
	if vm.CreatedAt != nil {
		t.field("detail.created", t.tr.FormatDate(*vm.CreatedAt))
	}
	t.field("detail.language", vm.Meta.Language)
	t.field("detail.parties", strings.Join(vm.Meta.Parties, ", "))
	if vm.Meta.GoverningLaw != nil {
		t.field("detail.governing_law", *vm.Meta.GoverningLaw)
	}
	t.field("detail.domain_tags", strings.Join(vm.Meta.DomainTags, ", "))
	t.printf("\n")
	t.gauge(NewGauge(vm.RiskProfile, false))
	t.heading("detail.one_line")
	t.line(vm.Summary.OneLineSummary)
	t.heading("detail.overall")
	t.line(vm.Summary.OverallSummary)
	t.list("detail.key_points", vm.Summary.KeyPoints)
}

func (t *textWriter) gauge(g Gauge) {
	t.printf("%s: %s  %s %d  %s\n",
		t.tr.T("detail.risk_level"), t.tr.Risk(string(g.Level)),
		t.tr.T("detail.risk_score"), g.Score, bar(g.Percent))
	if !g.Big || len(g.Dimensions) == 0 {
		return
	}
	t.heading("detail.dimensions")
	for _, d := range g.Dimensions {
		t.printf("  %-16s %s %d\n", d.Name, bar(d.Score), d.Score)
	}
}

func (t *textWriter) clause(c document.Clause) {
	title := ""
	if c.Title != nil {
		title = " " + *c.Title
	}
	t.printf("\n[%s]%s · %s %d\n", c.ClauseID, title, t.tr.Risk(string(c.RiskLevel)), c.RiskScore)
	if c.Summary != nil {
		t.printf("  %s: %s\n", t.tr.T("clause.summary"), *c.Summary)
	}
	for _, s := range ClauseSections(c) {
		t.printf("  %s\n", t.tr.T("clause."+s.Key))
		for _, item := range s.Items {
			t.printf("    - %s\n", item)
		}
	}
	if !c.Tags.Empty() {
		tags := append(append(append([]string{}, c.Tags.Domain...), c.Tags.Risk...), c.Tags.Parties...)
		t.printf("  %s: %s\n", t.tr.T("clause.tags"), strings.Join(tags, ", "))
	}
	if c.RawText != "" {
		t.printf("  %s:\n", t.tr.T("clause.raw_text"))
		for _, l := range strings.Split(c.RawText, "\n") {
			t.printf("    %s\n", l)
		}
	}
}

// bar draws a fixed-width meter for a 0..100 value.
func bar(percent int) string {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
