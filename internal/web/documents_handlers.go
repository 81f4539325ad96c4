package web

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
)

type documentRow struct {
	api.ContractSummary
	Level   document.RiskLevel
	Created *time.Time
}

type documentsBody struct {
	Query   string
	Risk    string
	Filters []document.RiskLevel
	Total   int
	Rows    []documentRow
	Return  string
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	b.page.Unmount()

	q := r.URL.Query()
	body := documentsBody{
		Query:   q.Get("q"),
		Risk:    q.Get("risk"),
		Filters: document.LibraryFilters,
		Return:  r.URL.RequestURI(),
	}

	list, err := b.auth.Client().ListContracts(r.Context())
	if err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("listing documents")
		b.setFlash(api.Message(err))
		s.page(w, r, "documents", "documents", http.StatusOK, body)
		return
	}

	body.Total = len(list)
	for _, d := range document.FilterSummaries(list, body.Query, body.Risk) {
		row := documentRow{ContractSummary: d, Level: document.RiskLevel(d.RiskLevel)}
		if t, ok := document.ParseTimestamp(d.CreatedAt); ok {
			row.Created = &t
		}
		body.Rows = append(body.Rows, row)
	}
	s.page(w, r, "documents", "documents", http.StatusOK, body)
}

// returnTo reads the post-action destination from the form, defaulting to
// the library.
func returnTo(r *http.Request) string {
	to := r.FormValue("return")
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") {
		return "/documents"
	}
	return to
}

// handleFavorite toggles the favorite flag. From the detail page the
// mounted page state reconciles the flag; from the library the list is
// simply refetched.
func (s *Server) handleFavorite(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	id := chi.URLParam(r, "id")

	if r.FormValue("from") == "detail" {
		// Failures on a mounted page are logged by the page and not surfaced.
		_, ok, _ := b.page.ToggleFavorite(r.Context(), id)
		if !ok && s.remount(r, b, id) {
			_, ok, _ = b.page.ToggleFavorite(r.Context(), id)
		}
		if ok {
			http.Redirect(w, r, detailURL(id, ""), http.StatusSeeOther)
			return
		}
		if _, err := b.auth.Client().ToggleFavorite(r.Context(), id); err != nil {
			s.fail(w, r, detailURL(id, ""), err)
			return
		}
		http.Redirect(w, r, detailURL(id, ""), http.StatusSeeOther)
		return
	}

	if _, err := b.auth.Client().ToggleFavorite(r.Context(), id); err != nil {
		s.fail(w, r, returnTo(r), err)
		return
	}
	http.Redirect(w, r, returnTo(r), http.StatusSeeOther)
}

type confirmBody struct {
	ID     string
	Title  string
	Return string
}

func (s *Server) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "confirm", "documents", http.StatusOK, confirmBody{
		ID:     chi.URLParam(r, "id"),
		Title:  r.URL.Query().Get("title"),
		Return: returnTo(r),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	id := chi.URLParam(r, "id")
	if err := b.auth.Client().DeleteContract(r.Context(), id); err != nil {
		s.fail(w, r, returnTo(r), err)
		return
	}
	s.log.WithFields(map[string]interface{}{"session": b.id, "document_id": id}).Info("document deleted")
	http.Redirect(w, r, returnTo(r), http.StatusSeeOther)
}

func detailURL(id, tab string) string {
	u := "/documents/" + url.PathEscape(id)
	if tab != "" {
		u += "?tab=" + url.QueryEscape(tab)
	}
	return u
}
