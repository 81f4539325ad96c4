package detail

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
)

// FavoriteBackend is what the favorite toggle needs from the API client.
type FavoriteBackend interface {
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	GetContract(ctx context.Context, id string) (*api.ContractMeta, error)
}

// Favorite holds the displayed favorite flag of one document.
//
// Toggle flips the flag optimistically and then settles it on the server's
// answer. When the mutation fails the flag becomes the negation of the value
// held before the call. That fallback is best-effort: if the server applied
// part of the change, the flag can drift from the backend. The metadata is
// re-read only to log such drift.
type Favorite struct {
	id      string
	backend FavoriteBackend
	log     logrus.FieldLogger

	op    sync.Mutex // serializes Toggle
	mu    sync.RWMutex
	value bool
}

func NewFavorite(id string, initial bool, backend FavoriteBackend, log logrus.FieldLogger) *Favorite {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Favorite{id: id, backend: backend, log: log, value: initial}
}

// Value returns the flag as currently displayed.
func (f *Favorite) Value() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

func (f *Favorite) set(v bool) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Toggle flips the flag and returns the settled value. A non-nil error means
// the mutation failed; the returned value is still the one to display. The
// caller is not expected to surface the error to the user.
func (f *Favorite) Toggle(ctx context.Context) (bool, error) {
	f.op.Lock()
	defer f.op.Unlock()

	prev := f.Value()
	f.set(!prev)

	v, err := f.backend.ToggleFavorite(ctx, f.id)
	if err == nil {
		f.set(v)
		return v, nil
	}

	f.set(!prev)
	log := f.log.WithField("document_id", f.id).WithError(err)
	log.Error("favorite toggle failed")
	if meta, rerr := f.backend.GetContract(ctx, f.id); rerr != nil {
		log.WithField("refetch_error", rerr.Error()).Debug("favorite drift check skipped")
	} else if meta != nil && meta.IsFavorite != !prev {
		log.WithField("backend_favorite", meta.IsFavorite).Warn("favorite flag out of sync with backend")
	}
	return !prev, err
}
