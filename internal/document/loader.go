package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lexdesk/lexdesk/internal/api"
)

// ErrNotFound is returned by Load whenever the document cannot be shown.
// The cause (transport failure, backend error) is wrapped alongside it.
var ErrNotFound = errors.New("document not found")

// Backend is the subset of the API client the loader reads from.
type Backend interface {
	GetContract(ctx context.Context, id string) (*api.ContractMeta, error)
	GetClauses(ctx context.Context, id string) ([]api.ClauseRow, error)
	GetTerms(ctx context.Context, id string) ([]api.TermRow, error)
}

// Loaded is a ready document plus the favorite flag that seeds page state.
type Loaded struct {
	Model      ViewModel
	IsFavorite bool
}

// Load fetches metadata, clauses, and terms concurrently and builds the
// view model once all three have settled. Any failure is reported as a
// single document-level ErrNotFound; no partial model is returned.
func Load(ctx context.Context, b Backend, id string, navCreatedAt *time.Time) (*Loaded, error) {
	var (
		meta    *api.ContractMeta
		clauses []api.ClauseRow
		terms   []api.TermRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := b.GetContract(gctx, id)
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		c, err := b.GetClauses(gctx, id)
		if err != nil {
			return fmt.Errorf("clauses: %w", err)
		}
		clauses = c
		return nil
	})
	g.Go(func() error {
		t, err := b.GetTerms(gctx, id)
		if err != nil {
			return fmt.Errorf("terms: %w", err)
		}
		terms = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading document %s: %w: %w", id, ErrNotFound, err)
	}
	if meta == nil {
		return nil, fmt.Errorf("loading document %s: %w", id, ErrNotFound)
	}

	vm := FromBackend(id, Source{
		Meta:         meta,
		Clauses:      clauses,
		Terms:        terms,
		NavCreatedAt: navCreatedAt,
	})
	return &Loaded{Model: vm, IsFavorite: meta.IsFavorite}, nil
}
