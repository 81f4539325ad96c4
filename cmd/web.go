package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/auth"
	"github.com/lexdesk/lexdesk/internal/db"
	"github.com/lexdesk/lexdesk/internal/web"
)

var (
	webPort          int
	webSecureCookies bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the web UI",
	Long:  `Serves the contract analysis UI: upload and analysis, the document library, document detail, and legal Q&A.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		if webPort > 0 {
			cfg.Server.Port = webPort
		}

		dbPath := filepath.Join(cfg.Server.DataDir, "lexdesk.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		var identity auth.IdentityProvider
		if cfg.OAuth.Enabled() {
			redirect := cfg.OAuth.RedirectURL
			if redirect == "" {
				redirect = fmt.Sprintf("http://localhost:%d/auth/callback", cfg.Server.Port)
			}
			identity = auth.NewGoogle(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, redirect)
		}

		srv, err := web.New(web.Config{
			Port:          cfg.Server.Port,
			AllowAll:      cfg.Server.AllowAllOrigins,
			Language:      string(cfg.Language),
			SecureCookies: webSecureCookies,
		}, database, newBackend(cfg), identity, log)
		if err != nil {
			return fmt.Errorf("creating web server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down web server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("shutdown")
			}
		}()

		log.WithFields(map[string]interface{}{
			"version":  Version,
			"port":     cfg.Server.Port,
			"backend":  cfg.Backend.BaseURL,
			"database": dbPath,
			"google":   identity != nil,
		}).Info("lexdesk web starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	webCmd.Flags().IntVar(&webPort, "port", 0, "port to listen on (overrides config)")
	webCmd.Flags().BoolVar(&webSecureCookies, "secure-cookies", false, "mark session cookies Secure (serve behind HTTPS)")
	rootCmd.AddCommand(webCmd)
}
