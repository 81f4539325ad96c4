package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexdesk/lexdesk/internal/detail"
	"github.com/lexdesk/lexdesk/internal/document"
	"github.com/lexdesk/lexdesk/internal/sessions"
)

// maxUpload bounds contract uploads.
const maxUpload = 32 << 20

// analyzeBody feeds the analyze page.
type analyzeBody struct {
	Steps   []sessions.Step
	Step    sessions.Step
	Percent int
	Nav     *sessions.Nav
	Result  *analysisView
}

// analysisView is a fresh analysis laid out for rendering.
type analysisView struct {
	Model   document.ViewModel
	Gauge   detail.Gauge
	Clauses []detail.ClauseView
}

func newAnalysisView(nav *sessions.Nav) *analysisView {
	if nav == nil || nav.Analysis == nil {
		return nil
	}
	vm := document.FromAnalysis(nav.Analysis)
	return &analysisView{
		Model:   vm,
		Gauge:   detail.NewGauge(vm.RiskProfile, true),
		Clauses: detail.ClauseViews(vm.Clauses, detail.NewAccordion(vm.Clauses)),
	}
}

func (s *Server) loadNav(ctx context.Context, b *browser) *sessions.Nav {
	rec, err := s.sessions.Get(ctx, b.id)
	if err != nil || rec == nil {
		return nil
	}
	return rec.Nav
}

func (s *Server) handleAnalyzePage(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	b.page.Unmount()

	nav := s.loadNav(r.Context(), b)
	step := sessions.StepIdle
	if nav != nil && nav.Step != "" {
		step = nav.Step
	}
	s.page(w, r, "analyze", "analyze", http.StatusOK, analyzeBody{
		Steps:   sessions.Steps,
		Step:    step,
		Percent: step.Percent(),
		Nav:     nav,
		Result:  newAnalysisView(nav),
	})
}

// uploaded reads the "file" part of a multipart form.
func uploaded(r *http.Request) (name string, data []byte, err error) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return "", nil, fmt.Errorf("reading upload: %w", err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("no file uploaded: %w", err)
	}
	defer f.Close()
	data, err = io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("reading upload: %w", err)
	}
	return hdr.Filename, data, nil
}

// setStep persists an intermediate step. The previous nav is returned so a
// failure can restore it.
func (s *Server) setStep(ctx context.Context, b *browser, step sessions.Step) *sessions.Nav {
	prev := s.loadNav(ctx, b)
	next := sessions.Nav{Step: step}
	if prev != nil {
		next = *prev
		next.Step = step
	}
	if err := s.sessions.SetNav(ctx, b.id, &next); err != nil {
		s.log.WithError(err).WithField("session", b.id).Debug("saving analyze step")
	}
	return prev
}

func (s *Server) restoreNav(ctx context.Context, b *browser, prev *sessions.Nav) {
	if err := s.sessions.SetNav(ctx, b.id, prev); err != nil {
		s.log.WithError(err).WithField("session", b.id).Debug("restoring nav state")
	}
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	name, data, err := uploaded(r)
	if err != nil {
		s.fail(w, r, "/", err)
		return
	}

	prev := s.setStep(r.Context(), b, sessions.StepExtracting)
	res, err := b.auth.Client().ExtractText(r.Context(), name, bytes.NewReader(data))
	if err != nil {
		s.restoreNav(r.Context(), b, prev)
		s.fail(w, r, "/", err)
		return
	}

	nav := &sessions.Nav{Step: sessions.StepIdle, Preview: res}
	if err := s.sessions.SetNav(r.Context(), b.id, nav); err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("saving preview")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	name, data, err := uploaded(r)
	if err != nil {
		s.fail(w, r, "/", err)
		return
	}
	lang := r.FormValue("language")
	if lang == "" {
		lang = b.language()
	}

	prev := s.setStep(r.Context(), b, sessions.StepAnalyzing)
	doc, err := b.auth.Client().FullInterpret(r.Context(), name, bytes.NewReader(data), lang)
	if err != nil {
		s.restoreNav(r.Context(), b, prev)
		s.fail(w, r, "/", err)
		return
	}

	created := time.Now().UTC()
	if doc.CreatedAt != nil {
		if t, ok := document.ParseTimestamp(*doc.CreatedAt); ok {
			created = t
		}
	}
	nav := &sessions.Nav{
		Step:       sessions.StepDone,
		Analysis:   doc,
		DocumentID: doc.DocumentID.String(),
		CreatedAt:  &created,
	}
	if prev != nil {
		nav.Preview = prev.Preview
	}
	if err := s.sessions.SetNav(r.Context(), b.id, nav); err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("saving analysis")
	}
	s.log.WithFields(map[string]interface{}{"session": b.id, "document_id": nav.DocumentID}).Info("document analyzed")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAnalyzeReset(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	s.restoreNav(r.Context(), b, nil)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
