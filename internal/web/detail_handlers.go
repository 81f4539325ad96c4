package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/lexdesk/lexdesk/internal/detail"
)

type detailBody struct {
	ID       string
	Snap     detail.Snapshot
	Tabs     []detail.TabItem
	Gauge    detail.Gauge
	Clauses  []detail.ClauseView
	RawHTML  template.HTML
	Notice   string
	Loading  bool
	NotFound bool
}

// handleDetail mounts and renders a document. Tab changes on the mounted
// document reuse its model; a different id triggers a new load.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	nav := s.loadNav(r.Context(), b)
	snap := b.page.Mount(r.Context(), id, nav.CreatedAtFor(id))
	if raw := q.Get("tab"); raw != "" {
		tab, _ := detail.ParseTab(raw)
		if b.page.SelectTab(id, tab) {
			snap = b.page.Snapshot()
		}
	}

	body := detailBody{ID: id, Snap: snap}
	switch q.Get("alert") {
	case "rename":
		body.Notice = "detail.rename_alert"
	case "export":
		body.Notice = "detail.export_alert"
	}

	switch {
	case snap.ID != id:
		// A newer mount for another document replaced this one.
		body.Loading = true
		s.page(w, r, "detail", "documents", http.StatusOK, body)
		return
	case snap.Status == detail.StatusNotFound:
		body.NotFound = true
		s.page(w, r, "detail", "documents", http.StatusNotFound, body)
		return
	case snap.Status != detail.StatusReady:
		body.Loading = true
		s.page(w, r, "detail", "documents", http.StatusOK, body)
		return
	}

	tr := s.translator(b)
	body.Tabs = detail.TabItems(snap.Tab, snap.Model, func(t detail.Tab) string { return tr.T("tab." + string(t)) })
	switch snap.Tab {
	case detail.TabSummary:
		body.Gauge = detail.NewGauge(snap.Model.RiskProfile, false)
	case detail.TabRisk:
		body.Gauge = detail.NewGauge(snap.Model.RiskProfile, true)
	case detail.TabClauses:
		body.Clauses = snap.Clauses()
	case detail.TabRaw:
		if !snap.RawCollapsed {
			body.RawHTML = s.render.JSON(snap.Model.JSON())
		}
	}
	s.page(w, r, "detail", "documents", http.StatusOK, body)
}

func (s *Server) handleClauseToggle(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	id := chi.URLParam(r, "id")
	clause := r.FormValue("clause")
	if !b.page.ToggleClause(id, clause) && s.remount(r, b, id) {
		b.page.ToggleClause(id, clause)
	}
	http.Redirect(w, r, detailURL(id, string(detail.TabClauses))+"#clause-"+url.PathEscape(clause), http.StatusSeeOther)
}

func (s *Server) handleRawToggle(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	id := chi.URLParam(r, "id")
	if !b.page.ToggleRaw(id) && s.remount(r, b, id) {
		b.page.ToggleRaw(id)
	}
	http.Redirect(w, r, detailURL(id, string(detail.TabRaw)), http.StatusSeeOther)
}

// remount loads id into the browser's page when an interaction arrives for a
// document that is not resident, e.g. after the library unmounted it or the
// server restarted. It reports whether the document is now ready.
func (s *Server) remount(r *http.Request, b *browser, id string) bool {
	snap := b.page.Mount(r.Context(), id, s.loadNav(r.Context(), b).CreatedAtFor(id))
	return snap.ID == id && snap.Status == detail.StatusReady
}
