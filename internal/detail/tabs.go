package detail

import "github.com/lexdesk/lexdesk/internal/document"

// Tab identifies one of the mutually exclusive detail panels.
type Tab string

const (
	TabSummary Tab = "summary"
	TabRisk    Tab = "risk"
	TabClauses Tab = "clauses"
	TabTerms   Tab = "terms"
	TabRaw     Tab = "raw"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabSummary, TabRisk, TabClauses, TabTerms, TabRaw}

// ParseTab maps a query value to a Tab. Unknown values select the summary.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return TabSummary, false
}

// TabState is the active-tab selector. Any tab may be selected at any time,
// including ones whose collection is empty.
type TabState struct {
	active Tab
}

// NewTabState starts on the summary tab.
func NewTabState() *TabState { return &TabState{active: TabSummary} }

func (s *TabState) Active() Tab { return s.active }

// Select makes tab active and reports whether anything changed.
func (s *TabState) Select(tab Tab) bool {
	if s.active == tab {
		return false
	}
	s.active = tab
	return true
}

// TabItem is one rendered tab button.
type TabItem struct {
	ID     Tab
	Label  string
	Active bool
	// HasBadge is set for tabs that show a count; Badge is that count.
	HasBadge bool
	Badge    int
}

// TabItems builds the tab bar for vm. The clauses and terms tabs carry the
// size of their collection as a badge.
func TabItems(active Tab, vm document.ViewModel, label func(Tab) string) []TabItem {
	items := make([]TabItem, 0, len(Tabs))
	for _, t := range Tabs {
		item := TabItem{ID: t, Label: string(t), Active: t == active}
		if label != nil {
			item.Label = label(t)
		}
		switch t {
		case TabClauses:
			item.HasBadge, item.Badge = true, len(vm.Clauses)
		case TabTerms:
			item.HasBadge, item.Badge = true, len(vm.Terms)
		}
		items = append(items, item)
	}
	return items
}
