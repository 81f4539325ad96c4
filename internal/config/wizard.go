package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to lexdesk! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend.
	backendPrompt := promptui.Prompt{
		Label:   "Backend base URL",
		Default: cfg.Backend.BaseURL,
		Validate: func(s string) error {
			probe := *cfg
			probe.Backend.BaseURL = s
			return probe.Validate()
		},
	}
	baseURL, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	cfg.Backend.BaseURL = baseURL

	// 2. Language.
	langPrompt := promptui.Select{
		Label: "Interface language",
		Items: []string{"ko (한국어)", "en (English)", "vi (Tiếng Việt)"},
	}
	langIdx, _, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language selection: %w", err)
	}
	cfg.Language = Languages[langIdx]

	// 3. Web port.
	portPrompt := promptui.Prompt{
		Label:   "Web UI port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("port must be 1-65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Optional Google sign-in.
	idPrompt := promptui.Prompt{Label: "Google OAuth client id (blank to skip)"}
	clientID, err := idPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("oauth client id: %w", err)
	}
	if clientID != "" {
		secretPrompt := promptui.Prompt{Label: "Google OAuth client secret", Mask: '*'}
		secret, err := secretPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("oauth client secret: %w", err)
		}
		cfg.OAuth = OAuthConfig{
			ClientID:     clientID,
			ClientSecret: secret,
			RedirectURL:  fmt.Sprintf("http://localhost:%d/auth/callback", cfg.Server.Port),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
