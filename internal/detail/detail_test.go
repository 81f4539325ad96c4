package detail

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
)

type fakeBackend struct {
	mu        sync.Mutex
	metas     map[string]*api.ContractMeta
	clauses   map[string][]api.ClauseRow
	block     map[string]chan struct{}
	toggle    func() (bool, error)
	metaErr   error
	loadCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		metas:   map[string]*api.ContractMeta{},
		clauses: map[string][]api.ClauseRow{},
		block:   map[string]chan struct{}{},
	}
}

func (f *fakeBackend) GetContract(ctx context.Context, id string) (*api.ContractMeta, error) {
	f.mu.Lock()
	f.loadCalls++
	ch := f.block[id]
	meta, err := f.metas[id], f.metaErr
	f.mu.Unlock()
	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, &api.Error{Status: 404, Detail: "Contract not found"}
	}
	cp := *meta
	return &cp, nil
}

func (f *fakeBackend) GetClauses(_ context.Context, id string) ([]api.ClauseRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clauses[id], nil
}

func (f *fakeBackend) GetTerms(context.Context, string) ([]api.TermRow, error) {
	return nil, nil
}

func (f *fakeBackend) ToggleFavorite(context.Context, string) (bool, error) {
	return f.toggle()
}

func strPtr(s string) *string { return &s }

func clauseRow(id, level string) api.ClauseRow {
	return api.ClauseRow{ClauseID: api.FlexString(id), RawText: "text " + id, RiskLevel: level}
}

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func quietLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, ok := ParseTab(string(tab))
		assert.True(t, ok)
		assert.Equal(t, tab, got)
	}
	got, ok := ParseTab("bogus")
	assert.False(t, ok)
	assert.Equal(t, TabSummary, got)
}

func TestTabStateSelectIsIdempotent(t *testing.T) {
	s := NewTabState()
	assert.Equal(t, TabSummary, s.Active())
	assert.True(t, s.Select(TabRisk))
	assert.False(t, s.Select(TabRisk))
	assert.Equal(t, TabRisk, s.Active())
}

func TestTabItemsBadges(t *testing.T) {
	vm := document.ViewModel{
		Clauses: []document.Clause{{ClauseID: "C1"}, {ClauseID: "C2"}},
		Terms:   []document.Term{},
	}
	items := TabItems(TabTerms, vm, nil)
	require.Len(t, items, len(Tabs))

	byID := map[Tab]TabItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.True(t, byID[TabClauses].HasBadge)
	assert.Equal(t, 2, byID[TabClauses].Badge)
	assert.True(t, byID[TabTerms].HasBadge)
	assert.Equal(t, 0, byID[TabTerms].Badge)
	assert.True(t, byID[TabTerms].Active)
	assert.False(t, byID[TabSummary].HasBadge)
}

func TestAccordionSingleOpen(t *testing.T) {
	clauses := []document.Clause{{ClauseID: "C1"}, {ClauseID: "C2"}, {ClauseID: "C3"}}
	a := NewAccordion(clauses)
	assert.True(t, a.IsOpen("C1"))

	a.Toggle("C2")
	assert.True(t, a.IsOpen("C2"))
	assert.False(t, a.IsOpen("C1"))
	assert.False(t, a.IsOpen("C3"))

	a.Toggle("C2")
	_, open := a.OpenID()
	assert.False(t, open)
	for _, c := range clauses {
		assert.False(t, a.IsOpen(c.ClauseID))
	}
}

func TestAccordionWithoutClauses(t *testing.T) {
	a := NewAccordion(nil)
	_, open := a.OpenID()
	assert.False(t, open)
}

func TestRiskColor(t *testing.T) {
	assert.Equal(t, ColorLow, RiskColor(document.RiskLow))
	assert.Equal(t, ColorMedium, RiskColor(document.RiskMedium))
	assert.Equal(t, ColorHigh, RiskColor(document.RiskHigh))
	assert.Equal(t, ColorCritical, RiskColor(document.RiskCritical))
	assert.Equal(t, ColorUnknown, RiskColor("알수없음"))
}

func TestClauseSectionsOmitEmpty(t *testing.T) {
	c := document.Clause{RiskFactors: []string{"a"}, Protections: []string{}}
	sections := ClauseSections(c)
	require.Len(t, sections, 1)
	assert.Equal(t, "risk_factors", sections[0].Key)
	assert.Empty(t, ClauseSections(document.Clause{}))
}

func TestGauge(t *testing.T) {
	tests := []struct {
		level   document.RiskLevel
		ordinal int
		percent int
	}{
		{document.RiskLow, 0, 25},
		{document.RiskMedium, 1, 50},
		{document.RiskHigh, 2, 75},
		{document.RiskCritical, 3, 100},
		{"알수없음", 1, 50},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			g := NewGauge(document.RiskProfile{OverallRiskLevel: tt.level, OverallRiskScore: 70}, false)
			assert.Equal(t, tt.ordinal, g.Ordinal)
			assert.Equal(t, tt.percent, g.Percent)
			assert.Equal(t, 70, g.Score)
			assert.Len(t, g.Legend, 4)
			assert.Nil(t, g.Dimensions)
		})
	}
}

func TestGaugeDimensions(t *testing.T) {
	dims := api.Dimensions{{Name: "해지", Score: 60}}
	g := NewGauge(document.RiskProfile{OverallRiskLevel: document.RiskHigh, RiskDimensions: dims}, true)
	assert.Equal(t, dims, g.Dimensions)
	assert.True(t, g.Big)
	assert.True(t, g.Legend[2].Active)
}

func TestFavoriteToggleSuccess(t *testing.T) {
	b := newFakeBackend()
	b.toggle = func() (bool, error) { return true, nil }
	log, _ := quietLogger()

	f := NewFavorite("42", false, b, log)
	got, err := f.Toggle(t.Context())
	require.NoError(t, err)
	assert.True(t, got)
	assert.True(t, f.Value())
}

func TestFavoriteToggleUsesServerValue(t *testing.T) {
	b := newFakeBackend()
	b.toggle = func() (bool, error) { return true, nil }
	log, _ := quietLogger()

	f := NewFavorite("42", true, b, log)
	got, err := f.Toggle(t.Context())
	require.NoError(t, err)
	assert.True(t, got, "server answer wins over the optimistic flip")
}

func TestFavoriteToggleFailureNegatesPreviousValue(t *testing.T) {
	b := newFakeBackend()
	b.metas["42"] = &api.ContractMeta{IsFavorite: false}
	b.toggle = func() (bool, error) { return false, errors.New("boom") }
	log, hook := quietLogger()

	f := NewFavorite("42", false, b, log)
	got, err := f.Toggle(t.Context())
	assert.Error(t, err)
	assert.True(t, got)
	assert.True(t, f.Value())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.ErrorLevel, entries[0].Level)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level, "drift from the backend is logged")
	assert.Equal(t, false, entries[1].Data["backend_favorite"])
}

func TestFavoriteToggleFailureWithoutMetadata(t *testing.T) {
	b := newFakeBackend()
	b.metaErr = errors.New("offline")
	b.toggle = func() (bool, error) { return false, errors.New("boom") }
	log, hook := quietLogger()

	f := NewFavorite("42", true, b, log)
	got, err := f.Toggle(t.Context())
	assert.Error(t, err)
	assert.False(t, got)
	assert.False(t, f.Value())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestPageMountAndReuse(t *testing.T) {
	b := newFakeBackend()
	b.metas["42"] = &api.ContractMeta{IsFavorite: true}
	b.clauses["42"] = []api.ClauseRow{clauseRow("C1", "높음"), clauseRow("C2", "낮음")}
	log, _ := quietLogger()

	p := NewPage(b, log)
	snap := p.Mount(t.Context(), "42", nil)
	require.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, TabSummary, snap.Tab)
	assert.True(t, snap.Favorite)
	assert.True(t, snap.HasOpen)
	assert.Equal(t, "C1", snap.OpenClause)

	assert.True(t, p.SelectTab("42", TabClauses))
	assert.True(t, p.ToggleClause("42", "C2"))

	snap = p.Mount(t.Context(), "42", nil)
	assert.Equal(t, 1, b.loadCalls, "same document is not refetched")
	assert.Equal(t, TabClauses, snap.Tab)
	views := snap.Clauses()
	require.Len(t, views, 2)
	assert.False(t, views[0].Open)
	assert.True(t, views[1].Open)
	assert.Equal(t, ColorLow, views[1].Color)
}

func TestPageMountNotFound(t *testing.T) {
	b := newFakeBackend()
	log, _ := quietLogger()

	p := NewPage(b, log)
	snap := p.Mount(t.Context(), "missing", nil)
	assert.Equal(t, StatusNotFound, snap.Status)
	assert.ErrorIs(t, snap.Err, document.ErrNotFound)
	assert.False(t, p.SelectTab("missing", TabRisk))

	_, ok, err := p.ToggleFavorite(t.Context(), "missing")
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestPageDiscardsStaleLoad(t *testing.T) {
	b := newFakeBackend()
	b.metas["1"] = &api.ContractMeta{Title: strPtr("first")}
	b.metas["2"] = &api.ContractMeta{Title: strPtr("second")}
	release := make(chan struct{})
	b.block["1"] = release
	log, _ := quietLogger()

	p := NewPage(b, log)
	done := make(chan Snapshot)
	go func() { done <- p.Mount(context.Background(), "1", nil) }()

	require.Eventually(t, func() bool { return p.Snapshot().Status == StatusLoading }, timeout, tick)
	second := p.Mount(t.Context(), "2", nil)
	require.Equal(t, StatusReady, second.Status)

	close(release)
	stale := <-done
	assert.Equal(t, "2", stale.ID)
	cur := p.Snapshot()
	assert.Equal(t, "2", cur.ID)
	require.NotNil(t, cur.Model.Summary.Title)
	assert.Equal(t, "second", *cur.Model.Summary.Title)
}

func TestPageUnmount(t *testing.T) {
	b := newFakeBackend()
	b.metas["42"] = &api.ContractMeta{}
	log, _ := quietLogger()

	p := NewPage(b, log)
	p.Mount(t.Context(), "42", nil)
	p.Unmount()
	assert.Equal(t, StatusIdle, p.Snapshot().Status)

	p.Mount(t.Context(), "42", nil)
	assert.Equal(t, 2, b.loadCalls)
}

func TestPageToggleRaw(t *testing.T) {
	b := newFakeBackend()
	b.metas["42"] = &api.ContractMeta{}
	p := NewPage(b, nil)
	p.Mount(t.Context(), "42", nil)

	assert.False(t, p.Snapshot().RawCollapsed)
	assert.True(t, p.ToggleRaw("42"))
	assert.True(t, p.Snapshot().RawCollapsed)
	assert.False(t, p.ToggleRaw("other"))
}
