package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/auth"
	"github.com/lexdesk/lexdesk/internal/detail"
	"github.com/lexdesk/lexdesk/internal/sessions"
)

const cookieName = "lexdesk_session"

// browser is the live state of one browser session: its credential, the
// mounted detail page, and transient UI state.
type browser struct {
	id   string
	auth *auth.Session
	page *detail.Page

	mu         sync.Mutex
	flash      string
	lang       string
	oauthState string
}

func (b *browser) setFlash(msg string) {
	b.mu.Lock()
	b.flash = msg
	b.mu.Unlock()
}

// takeFlash returns and clears the pending alert.
func (b *browser) takeFlash() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := b.flash
	b.flash = ""
	return msg
}

func (b *browser) language() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lang
}

func (b *browser) setLanguage(lang string) {
	b.mu.Lock()
	b.lang = lang
	b.mu.Unlock()
}

// sessionBackend forwards detail-page calls to whatever client the session
// currently holds, so a later sign-in or sign-out takes effect immediately.
type sessionBackend struct {
	s *auth.Session
}

func (sb sessionBackend) GetContract(ctx context.Context, id string) (*api.ContractMeta, error) {
	return sb.s.Client().GetContract(ctx, id)
}

func (sb sessionBackend) GetClauses(ctx context.Context, id string) ([]api.ClauseRow, error) {
	return sb.s.Client().GetClauses(ctx, id)
}

func (sb sessionBackend) GetTerms(ctx context.Context, id string) ([]api.TermRow, error) {
	return sb.s.Client().GetTerms(ctx, id)
}

func (sb sessionBackend) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	return sb.s.Client().ToggleFavorite(ctx, id)
}

func (sb sessionBackend) Ask(ctx context.Context, question, language string) (*api.AskResult, error) {
	return sb.s.Client().Ask(ctx, question, language)
}

// registry maps session cookies to live browsers, loading them from the
// session store after a restart.
type registry struct {
	store       *sessions.Store
	backend     *api.Client
	defaultLang string
	log         logrus.FieldLogger

	mu sync.Mutex
	m  map[string]*browser
}

func newRegistry(store *sessions.Store, backend *api.Client, lang string, log logrus.FieldLogger) *registry {
	return &registry{store: store, backend: backend, defaultLang: lang, log: log, m: make(map[string]*browser)}
}

func (r *registry) newBrowser(id string) *browser {
	s := auth.NewSession(r.backend, r.store.CredentialStore(id), r.log.WithField("session", id))
	return &browser{
		id:   id,
		auth: s,
		page: detail.NewPage(sessionBackend{s: s}, r.log.WithField("session", id)),
		lang: r.defaultLang,
	}
}

// lookup returns the live browser for id. A session known only to the store
// is revived and its stored credential revalidated.
func (r *registry) lookup(ctx context.Context, id string) (*browser, error) {
	r.mu.Lock()
	b, ok := r.m[id]
	r.mu.Unlock()
	if ok {
		return b, nil
	}

	rec, err := r.store.Get(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	b = r.newBrowser(id)
	if user := b.auth.Restore(ctx); user != nil {
		if err := r.store.SetUser(ctx, id, user); err != nil {
			r.log.WithError(err).WithField("session", id).Warn("caching user")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.m[id]; ok {
		return existing, nil
	}
	r.m[id] = b
	return b, nil
}

func (r *registry) create(ctx context.Context) (*browser, error) {
	rec, err := r.store.Create(ctx)
	if err != nil {
		return nil, err
	}
	b := r.newBrowser(rec.ID)
	r.mu.Lock()
	r.m[rec.ID] = b
	r.mu.Unlock()
	return b, nil
}

// prune drops sessions idle for longer than maxIdle.
func (r *registry) prune(ctx context.Context, maxIdle time.Duration) error {
	if _, err := r.store.Prune(ctx, time.Now().Add(-maxIdle)); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.m {
		rec, err := r.store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("checking session %s: %w", id, err)
		}
		if rec == nil {
			delete(r.m, id)
		}
	}
	return nil
}

type ctxKey struct{}

// withBrowser attaches the browser session to the request, starting a new
// one when the cookie is missing or unknown.
func (s *Server) withBrowser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var b *browser
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			found, err := s.browsers.lookup(r.Context(), c.Value)
			if err != nil {
				s.log.WithError(err).Error("loading browser session")
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
			b = found
		}
		if b == nil {
			created, err := s.browsers.create(r.Context())
			if err != nil {
				s.log.WithError(err).Error("creating browser session")
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
			b = created
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    b.id,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.cfg.SecureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		} else if err := s.sessions.Touch(r.Context(), b.id); err != nil {
			s.log.WithError(err).WithField("session", b.id).Debug("touching session")
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, b)))
	})
}

// requireSignIn redirects anonymous sessions to the login page.
func (s *Server) requireSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !browserFrom(r).auth.SignedIn() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func browserFrom(r *http.Request) *browser {
	return r.Context().Value(ctxKey{}).(*browser)
}
