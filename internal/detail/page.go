package detail

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/document"
)

// Status is the lifecycle phase of a mounted detail page.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNotFound:
		return "not_found"
	default:
		return "idle"
	}
}

// Backend is everything a detail page reads or mutates.
type Backend interface {
	document.Backend
	FavoriteBackend
}

// Page is the per-session detail page state. It owns exactly one document at
// a time; mounting a different id starts a new generation and any load still
// running for an older generation is discarded when it returns.
type Page struct {
	backend Backend
	log     logrus.FieldLogger

	mu        sync.Mutex
	gen       uint64
	id        string
	status    Status
	err       error
	model     *document.ViewModel
	tabs      *TabState
	accordion *Accordion
	favorite  *Favorite
	raw       bool // raw JSON collapsed
}

func NewPage(backend Backend, log logrus.FieldLogger) *Page {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Page{backend: backend, log: log}
}

// Snapshot is an immutable copy of the page state for rendering.
type Snapshot struct {
	ID           string
	Status       Status
	Err          error
	Model        document.ViewModel
	Tab          Tab
	OpenClause   string
	HasOpen      bool
	Favorite     bool
	RawCollapsed bool
}

// Clauses returns the clauses with their accordion state applied.
func (s Snapshot) Clauses() []ClauseView {
	a := &Accordion{openID: s.OpenClause, open: s.HasOpen}
	return ClauseViews(s.Model.Clauses, a)
}

// Mount shows document id. When id is already resident and ready the model is
// reused without refetching; otherwise the three document endpoints are
// loaded. navCreatedAt is the creation time handed over by the referring
// page, if any.
func (p *Page) Mount(ctx context.Context, id string, navCreatedAt *time.Time) Snapshot {
	p.mu.Lock()
	if p.id == id && p.status == StatusReady {
		defer p.mu.Unlock()
		return p.snapshotLocked()
	}
	p.gen++
	gen := p.gen
	p.id = id
	p.status = StatusLoading
	p.err = nil
	p.model = nil
	p.favorite = nil
	p.mu.Unlock()

	loaded, err := document.Load(ctx, p.backend, id, navCreatedAt)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		p.log.WithFields(logrus.Fields{"document_id": id, "generation": gen}).
			Debug("discarding stale document load")
		return p.snapshotLocked()
	}
	if err != nil {
		p.log.WithField("document_id", id).WithError(err).Warn("document load failed")
		p.status = StatusNotFound
		p.err = err
		return p.snapshotLocked()
	}
	p.status = StatusReady
	p.model = &loaded.Model
	p.tabs = NewTabState()
	p.accordion = NewAccordion(loaded.Model.Clauses)
	p.favorite = NewFavorite(id, loaded.IsFavorite, p.backend, p.log)
	p.raw = false
	return p.snapshotLocked()
}

// Unmount discards the resident document, invalidating in-flight loads.
func (p *Page) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.id = ""
	p.status = StatusIdle
	p.err = nil
	p.model = nil
	p.favorite = nil
}

// Snapshot returns the current state.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Page) snapshotLocked() Snapshot {
	s := Snapshot{ID: p.id, Status: p.status, Err: p.err, Tab: TabSummary}
	if p.status != StatusReady || p.model == nil {
		return s
	}
	s.Model = *p.model
	s.Tab = p.tabs.Active()
	s.OpenClause, s.HasOpen = p.accordion.OpenID()
	s.Favorite = p.favorite.Value()
	s.RawCollapsed = p.raw
	return s
}

// ready reports whether id is the resident, loaded document. Callers hold mu.
func (p *Page) ready(id string) bool {
	return p.id == id && p.status == StatusReady && p.model != nil
}

// SelectTab changes the active tab of the resident document. It reports
// false when id is not mounted.
func (p *Page) SelectTab(id string, tab Tab) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready(id) {
		return false
	}
	p.tabs.Select(tab)
	return true
}

// ToggleClause expands or collapses a clause of the resident document.
func (p *Page) ToggleClause(id, clauseID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready(id) {
		return false
	}
	p.accordion.Toggle(clauseID)
	return true
}

// ToggleRaw collapses or expands the raw JSON view.
func (p *Page) ToggleRaw(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready(id) {
		return false
	}
	p.raw = !p.raw
	return true
}

// ToggleFavorite flips the favorite flag of the resident document. ok is
// false when id is not mounted.
func (p *Page) ToggleFavorite(ctx context.Context, id string) (value bool, ok bool, err error) {
	p.mu.Lock()
	if !p.ready(id) {
		p.mu.Unlock()
		return false, false, nil
	}
	fav := p.favorite
	p.mu.Unlock()

	value, err = fav.Toggle(ctx)
	return value, true, err
}
