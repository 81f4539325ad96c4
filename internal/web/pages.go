package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/detail"
	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"login", "analyze", "documents", "confirm", "detail", "chat"}

// pages holds one parsed template set per page, each layered on the layout.
type pages struct {
	sets map[string]*template.Template
}

var funcs = template.FuncMap{
	"riskColor": func(level document.RiskLevel) string { return detail.RiskColor(level) },
	"userName":  userName,
	"timePtr":   func(t time.Time) *time.Time { return &t },
	"slice1":    func(c detail.ClauseView) []detail.ClauseView { return []detail.ClauseView{c} },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"list": func(d pageData, key string, items []string) listView {
		return listView{Title: d.T(key), Empty: d.T("detail.none"), Items: items}
	},
	"gauge": func(d pageData, g detail.Gauge) gaugeView {
		return gaugeView{Root: d, Gauge: g}
	},
	"clauses": func(d pageData, docID string, cs []detail.ClauseView, interactive bool) clauseListView {
		return clauseListView{Root: d, DocID: docID, Clauses: cs, Interactive: interactive}
	},
}

type listView struct {
	Title string
	Empty string
	Items []string
}

type gaugeView struct {
	Root pageData
	detail.Gauge
}

type clauseListView struct {
	Root        pageData
	DocID       string
	Clauses     []detail.ClauseView
	Interactive bool
}

func loadPages() (*pages, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	p := &pages{sets: make(map[string]*template.Template)}
	for _, name := range pageNames {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout: %w", err)
		}
		if _, err := set.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		p.sets[name] = set
	}
	return p, nil
}

// pageData is the root value of every template.
type pageData struct {
	tr     i18n.Translator
	Lang   string
	Path   string
	Nav    string
	User   *api.User
	Alert  string
	Status int
	Body   interface{}
}

func (d pageData) T(key string) string { return d.tr.T(key) }

func (d pageData) F(key string, args ...interface{}) string { return d.tr.F(key, args...) }

func (d pageData) Risk(level interface{}) string { return d.tr.Risk(fmt.Sprint(level)) }

func (d pageData) Date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return d.tr.FormatDate(*t)
}

func (d pageData) Languages() []string { return i18n.Supported }

func (s *Server) translator(b *browser) i18n.Translator { return i18n.For(b.language()) }

// page renders name for the request's browser session, consuming any
// pending alert.
func (s *Server) page(w http.ResponseWriter, r *http.Request, name, nav string, status int, body interface{}) {
	b := browserFrom(r)
	data := pageData{
		tr:     i18n.For(b.language()),
		Nav:    nav,
		User:   b.auth.User(),
		Alert:  b.takeFlash(),
		Status: status,
		Body:   body,
	}
	data.Lang = data.tr.Lang()
	data.Path = r.URL.RequestURI()

	set, ok := s.pages.sets[name]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.log.WithError(err).WithField("route", name).Error("rendering page")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// fail records msg as the blocking alert and sends the browser back to to.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, to string, err error) {
	b := browserFrom(r)
	s.log.WithError(err).WithFields(map[string]interface{}{
		"session": b.id,
		"route":   r.URL.Path,
	}).Warn("backend call failed")
	b.setFlash(api.Message(err))
	http.Redirect(w, r, to, http.StatusSeeOther)
}
