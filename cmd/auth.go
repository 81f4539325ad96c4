package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/internal/auth"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the legal-analysis service",
	Long: `Signs in with Google and stores the resulting id token in
~/.lexdesk/credentials.json for later commands.

Without Google OAuth configured, pass an existing id token with --token
(or "-" to read it from stdin).`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := credentialStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing credentials: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		_, user, err := signedInClient(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", `id token to store instead of the browser flow ("-" reads stdin)`)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	store, err := credentialStore()
	if err != nil {
		return err
	}

	credential := loginToken
	switch {
	case credential == "-":
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		credential = strings.TrimSpace(input)
	case credential == "":
		if !cfg.OAuth.Enabled() {
			return fmt.Errorf("Google OAuth is not configured; run `lexdesk init` or pass --token")
		}
		token, profile, err := auth.RunLocalFlow(cmd.Context(), cfg.OAuth.ClientID, cfg.OAuth.ClientSecret)
		if err != nil {
			return fmt.Errorf("OAuth flow failed: %w", err)
		}
		log.WithField("email", profile.Email).Debug("google sign-in complete")
		credential = token
	}
	if credential == "" {
		return fmt.Errorf("id token is required")
	}

	session := auth.NewSession(newBackend(cfg), store, log)
	user, err := session.Login(cmd.Context(), credential)
	if err != nil {
		return fmt.Errorf("signing in: %w", err)
	}

	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	fmt.Printf("Credential stored in %s\n", store.Path())
	return nil
}
