package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/i18n"
)

type loginBody struct {
	GoogleEnabled bool
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if browserFrom(r).auth.SignedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.page(w, r, "login", "login", http.StatusOK, loginBody{GoogleEnabled: s.identity != nil})
}

// handleTokenLogin accepts an id token pasted into the login form.
func (s *Server) handleTokenLogin(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.FormValue("token"))
	s.signIn(w, r, token)
}

func (s *Server) handleGoogleStart(w http.ResponseWriter, r *http.Request) {
	if s.identity == nil {
		http.NotFound(w, r)
		return
	}
	b := browserFrom(r)
	state := uuid.NewString()
	b.mu.Lock()
	b.oauthState = state
	b.mu.Unlock()
	http.Redirect(w, r, s.identity.AuthURL(state), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if s.identity == nil {
		http.NotFound(w, r)
		return
	}
	b := browserFrom(r)
	b.mu.Lock()
	want := b.oauthState
	b.oauthState = ""
	b.mu.Unlock()

	q := r.URL.Query()
	if want == "" || q.Get("state") != want {
		http.Error(w, "invalid OAuth state", http.StatusBadRequest)
		return
	}
	if e := q.Get("error"); e != "" {
		b.setFlash(e)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	credential, profile, err := s.identity.SignIn(r.Context(), q.Get("code"))
	if err != nil {
		s.fail(w, r, "/login", err)
		return
	}
	s.log.WithField("session", b.id).WithField("email", profile.Email).Info("signed in with Google")
	s.signIn(w, r, credential)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, credential string) {
	b := browserFrom(r)
	user, err := b.auth.Login(r.Context(), credential)
	if err != nil {
		s.fail(w, r, "/login", err)
		return
	}
	if err := s.sessions.SetUser(r.Context(), b.id, user); err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("caching user")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	if err := b.auth.Logout(); err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("signing out")
	}
	b.page.Unmount()
	if err := s.sessions.SetNav(r.Context(), b.id, nil); err != nil {
		s.log.WithError(err).WithField("session", b.id).Debug("clearing nav state")
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleLanguage switches the UI language and returns to the referring page.
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	browserFrom(r).setLanguage(i18n.For(lang).Lang())

	next := r.URL.Query().Get("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// userName is the label shown in the navigation bar.
func userName(u *api.User) string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
