package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/auth"
	"github.com/lexdesk/lexdesk/internal/chat"
	"github.com/lexdesk/lexdesk/internal/db"
	"github.com/lexdesk/lexdesk/internal/sessions"
)

// Config holds web server configuration.
type Config struct {
	Port          int
	AllowAll      bool   // allow all CORS origins (dev mode)
	Language      string // default UI language for new sessions
	SecureCookies bool
	// SessionMaxIdle bounds how long an unused browser session is kept.
	SessionMaxIdle time.Duration
}

// Server is the lexdesk web front end. It renders pages server-side and
// talks to the legal-analysis backend on behalf of each browser session.
type Server struct {
	cfg      Config
	backend  *api.Client
	identity auth.IdentityProvider
	log      logrus.FieldLogger

	sessions *sessions.Store
	chat     *chat.Service
	browsers *registry
	pages    *pages
	render   *renderer

	router     chi.Router
	httpServer *http.Server
}

// New creates the server. identity may be nil, which leaves only token
// sign-in available.
func New(cfg Config, database *db.DB, backend *api.Client, identity auth.IdentityProvider, log logrus.FieldLogger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.SessionMaxIdle == 0 {
		cfg.SessionMaxIdle = 30 * 24 * time.Hour
	}
	tmpl, err := loadPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		backend:  backend,
		identity: identity,
		log:      log,
		sessions: sessions.NewStore(database),
		chat:     chat.NewService(chat.NewStore(database), log),
		pages:    tmpl,
		render:   newRenderer(),
	}
	s.browsers = newRegistry(s.sessions, backend, cfg.Language, log)
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/static/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(styleCSS))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withBrowser)

		r.Get("/login", s.handleLoginPage)
		r.Post("/login", s.handleTokenLogin)
		r.Get("/auth/google", s.handleGoogleStart)
		r.Get("/auth/callback", s.handleGoogleCallback)
		r.Post("/logout", s.handleLogout)
		r.Get("/lang/{lang}", s.handleLanguage)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSignIn)

			r.Get("/", s.handleAnalyzePage)
			r.Post("/analyze/extract", s.handleExtract)
			r.Post("/analyze/interpret", s.handleInterpret)
			r.Post("/analyze/reset", s.handleAnalyzeReset)

			r.Get("/documents", s.handleDocuments)
			r.Get("/documents/{id}", s.handleDetail)
			r.Post("/documents/{id}/favorite", s.handleFavorite)
			r.Get("/documents/{id}/delete", s.handleDeleteConfirm)
			r.Post("/documents/{id}/delete", s.handleDelete)
			r.Post("/documents/{id}/clauses/toggle", s.handleClauseToggle)
			r.Post("/documents/{id}/raw/toggle", s.handleRawToggle)

			r.Get("/chat", s.handleChatPage)
			r.Post("/chat", s.handleChatAsk)
			r.Get("/ws/chat", s.handleChatSocket)
		})
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port and prunes idle sessions
// until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.pruneLoop(ctx)

	s.log.WithField("addr", addr).Info("lexdesk web listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.browsers.prune(ctx, s.cfg.SessionMaxIdle); err != nil {
				s.log.WithError(err).Warn("pruning sessions")
			}
		}
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
