package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrNoIDToken is returned when the token response carries no id_token.
var ErrNoIDToken = errors.New("identity provider returned no id_token")

// Profile is the identity asserted by the provider's id_token.
type Profile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// IdentityProvider signs a user in and yields the bearer credential the
// backend accepts.
type IdentityProvider interface {
	AuthURL(state string) string
	SignIn(ctx context.Context, code string) (credential string, profile Profile, err error)
}

// Google is the Google OAuth2 identity provider. The id_token from the code
// exchange is the credential.
type Google struct {
	conf *oauth2.Config
}

func NewGoogle(clientID, clientSecret, redirectURL string) *Google {
	return &Google{conf: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
	}}
}

// WithEndpoint overrides the provider endpoints.
func (g *Google) WithEndpoint(ep oauth2.Endpoint) *Google {
	conf := *g.conf
	conf.Endpoint = ep
	return &Google{conf: &conf}
}

func (g *Google) AuthURL(state string) string {
	return g.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (g *Google) SignIn(ctx context.Context, code string) (string, Profile, error) {
	tok, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return "", Profile{}, fmt.Errorf("exchanging authorization code: %w", err)
	}
	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return "", Profile{}, ErrNoIDToken
	}
	profile, err := ParseProfile(idToken)
	if err != nil {
		return "", Profile{}, err
	}
	return idToken, profile, nil
}

// ParseProfile reads the claims of a JWT without verifying its signature.
// The backend verifies the token; this is only for display.
func ParseProfile(idToken string) (Profile, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return Profile{}, fmt.Errorf("malformed id_token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return Profile{}, fmt.Errorf("decoding id_token payload: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing id_token claims: %w", err)
	}
	return p, nil
}

// RunLocalFlow performs the browser sign-in for the CLI. It starts a
// loopback callback server, opens the consent page, and waits for the code.
func RunLocalFlow(ctx context.Context, clientID, clientSecret string) (string, Profile, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", Profile{}, fmt.Errorf("starting local server: %w", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	g := NewGoogle(clientID, clientSecret, fmt.Sprintf("http://localhost:%d/callback", port))
	state := uuid.NewString()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- fmt.Errorf("OAuth callback state mismatch")
			return
		}
		code := q.Get("code")
		if code == "" {
			msg := q.Get("error")
			if msg == "" {
				msg = "no authorization code received"
			}
			fmt.Fprint(w, "<html><body><h2>Sign-in failed</h2><p>You can close this tab.</p></body></html>")
			errCh <- fmt.Errorf("OAuth callback error: %s", msg)
			return
		}
		fmt.Fprint(w, "<html><body><h2>Signed in</h2><p>You can close this tab and return to the terminal.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("local server error: %w", err)
		}
	}()
	defer server.Close()

	authURL := g.AuthURL(state)
	fmt.Printf("\nOpening browser for Google sign-in...\n")
	fmt.Printf("If the browser doesn't open, visit this URL:\n%s\n\n", authURL)
	openBrowser(authURL)

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return "", Profile{}, err
	case <-ctx.Done():
		return "", Profile{}, ctx.Err()
	case <-time.After(5 * time.Minute):
		return "", Profile{}, fmt.Errorf("sign-in timed out after 5 minutes")
	}
	return g.SignIn(ctx, code)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
