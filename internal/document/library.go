package document

import (
	"strings"

	"github.com/lexdesk/lexdesk/internal/api"
)

// LibraryFilters are the risk levels the library can be narrowed to.
var LibraryFilters = []RiskLevel{RiskLow, RiskMedium, RiskHigh}

// FilterSummaries keeps documents whose title or summary contains query
// (case-insensitive) and whose risk level equals risk. An empty query
// matches everything, as does an empty or "all" risk.
func FilterSummaries(docs []api.ContractSummary, query, risk string) []api.ContractSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]api.ContractSummary, 0, len(docs))
	for _, d := range docs {
		if risk != "" && risk != "all" && d.RiskLevel != risk {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(d.Title), query) &&
			!strings.Contains(strings.ToLower(d.Summary), query) {
			continue
		}
		out = append(out, d)
	}
	return out
}
