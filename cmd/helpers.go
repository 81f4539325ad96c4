package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/auth"
	"github.com/lexdesk/lexdesk/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `lexdesk init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the application logger. Logs always go to stderr so
// stdout stays free for command output and the MCP protocol.
func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := cfg.Log.ConfigureLogger(log); err != nil {
		return nil, err
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log, nil
}

func newBackend(cfg *config.Config) *api.Client {
	return api.New(cfg.Backend.BaseURL, api.WithTimeout(cfg.Backend.Timeout))
}

func credentialStore() (*auth.FileStore, error) {
	path, err := auth.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("locating credentials: %w", err)
	}
	return auth.NewFileStore(path), nil
}

// signedInClient restores the stored CLI credential and returns a client
// that sends it, failing when there is no valid sign-in.
func signedInClient(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*api.Client, *api.User, error) {
	store, err := credentialStore()
	if err != nil {
		return nil, nil, err
	}
	s := auth.NewSession(newBackend(cfg), store, log)
	user := s.Restore(ctx)
	if user == nil {
		return nil, nil, fmt.Errorf("%w: run `lexdesk login` first", auth.ErrNotSignedIn)
	}
	return s.Client(), user, nil
}
