package sessions

import (
	"time"

	"github.com/lexdesk/lexdesk/internal/api"
)

// Step is the analyze page progression.
type Step string

const (
	StepIdle       Step = "idle"
	StepExtracting Step = "extracting"
	StepAnalyzing  Step = "analyzing"
	StepDone       Step = "done"
)

// Steps lists the progression in order.
var Steps = []Step{StepIdle, StepExtracting, StepAnalyzing, StepDone}

// Percent is the progress shown for s.
func (s Step) Percent() int {
	switch s {
	case StepExtracting:
		return 33
	case StepAnalyzing:
		return 66
	case StepDone:
		return 100
	default:
		return 0
	}
}

// Nav is the state the analyze page hands to the pages it links to.
type Nav struct {
	Step     Step                  `json:"step"`
	Preview  *api.ExtractResult    `json:"preview,omitempty"`
	Analysis *api.AnalysisDocument `json:"analysis,omitempty"`
	// DocumentID and CreatedAt identify the last analyzed document so its
	// detail page can fall back to this creation time.
	DocumentID string     `json:"document_id,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// CreatedAtFor returns the handed-over creation time if nav refers to id.
func (n *Nav) CreatedAtFor(id string) *time.Time {
	if n == nil || n.DocumentID == "" || n.DocumentID != id {
		return nil
	}
	return n.CreatedAt
}

// Record is one browser session row.
type Record struct {
	ID         string
	Credential string
	User       *api.User
	Nav        *Nav
	CreatedAt  time.Time
	LastSeen   time.Time
}
