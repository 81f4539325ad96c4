package detail

import "github.com/lexdesk/lexdesk/internal/document"

// Accordion tracks the single expanded clause. Openness is one "current id"
// rather than a flag per clause, so opening a clause closes the previous one.
type Accordion struct {
	openID string
	open   bool
}

// NewAccordion expands the first clause, or nothing when there are none.
func NewAccordion(clauses []document.Clause) *Accordion {
	if len(clauses) == 0 {
		return &Accordion{}
	}
	return &Accordion{openID: clauses[0].ClauseID, open: true}
}

// OpenID returns the expanded clause id and whether one is expanded.
func (a *Accordion) OpenID() (string, bool) { return a.openID, a.open }

func (a *Accordion) IsOpen(id string) bool { return a.open && a.openID == id }

// Toggle collapses id if it is expanded, otherwise expands it.
func (a *Accordion) Toggle(id string) {
	if a.IsOpen(id) {
		a.openID, a.open = "", false
		return
	}
	a.openID, a.open = id, true
}

// Risk colours used by clause headers.
const (
	ColorLow      = "#15803d"
	ColorMedium   = "#d97706"
	ColorHigh     = "#b91c1c"
	ColorCritical = "#7f1d1d"
	ColorUnknown  = "#6b7280"
)

// RiskColor maps a risk level to its display colour.
func RiskColor(level document.RiskLevel) string {
	switch level {
	case document.RiskLow:
		return ColorLow
	case document.RiskMedium:
		return ColorMedium
	case document.RiskHigh:
		return ColorHigh
	case document.RiskCritical:
		return ColorCritical
	default:
		return ColorUnknown
	}
}

// Section is a titled list inside an expanded clause.
type Section struct {
	Key   string
	Items []string
}

// ClauseSections returns the clause's non-empty sub-sections in display
// order. Empty lists are omitted entirely.
func ClauseSections(c document.Clause) []Section {
	candidates := []Section{
		{Key: "key_points", Items: c.KeyPoints},
		{Key: "risk_factors", Items: c.RiskFactors},
		{Key: "red_flags", Items: c.RedFlags},
		{Key: "protections", Items: c.Protections},
		{Key: "action_guides", Items: c.ActionGuides},
	}
	var out []Section
	for _, s := range candidates {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// ClauseView is a clause prepared for the accordion template.
type ClauseView struct {
	document.Clause
	Open     bool
	Color    string
	Sections []Section
	ShowTags bool
}

// ClauseViews pairs each clause with its accordion state.
func ClauseViews(clauses []document.Clause, a *Accordion) []ClauseView {
	out := make([]ClauseView, 0, len(clauses))
	for _, c := range clauses {
		out = append(out, ClauseView{
			Clause:   c,
			Open:     a != nil && a.IsOpen(c.ClauseID),
			Color:    RiskColor(c.RiskLevel),
			Sections: ClauseSections(c),
			ShowTags: !c.Tags.Empty(),
		})
	}
	return out
}
