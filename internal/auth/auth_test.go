package auth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/lexdesk/lexdesk/internal/api"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := NewFileStore(path)

	got, err := s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set("tok-1"))
	got, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "tok-1", raw["idToken"])

	require.NoError(t, s.Clear())
	got, err = s.Get()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	s := NewFileStore(path)

	_, err := s.Get()
	assert.Error(t, err)
	require.NoError(t, s.Set("tok"))
	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

// fakeMe serves /auth/me, accepting only the given bearer token.
func fakeMe(t *testing.T, valid string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+valid {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token"}`))
			return
		}
		w.Write([]byte(`{"id":1,"name":"Kim","email":"kim@example.com"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionRestoreValid(t *testing.T) {
	srv := fakeMe(t, "good")
	store := &MemoryStore{}
	require.NoError(t, store.Set("good"))
	log, _ := test.NewNullLogger()

	s := NewSession(api.New(srv.URL), store, log)
	user := s.Restore(t.Context())
	require.NotNil(t, user)
	assert.Equal(t, "Kim", user.Name)
	assert.True(t, s.SignedIn())
	assert.Equal(t, "good", s.Client().Token())
}

func TestSessionRestoreClearsRejectedCredential(t *testing.T) {
	srv := fakeMe(t, "good")
	store := &MemoryStore{}
	require.NoError(t, store.Set("stale"))
	log, _ := test.NewNullLogger()

	s := NewSession(api.New(srv.URL), store, log)
	assert.Nil(t, s.Restore(t.Context()))
	assert.False(t, s.SignedIn())
	got, _ := store.Get()
	assert.Empty(t, got)
	assert.Empty(t, s.Client().Token())
}

func TestSessionLoginLogout(t *testing.T) {
	srv := fakeMe(t, "good")
	store := &MemoryStore{}
	base := api.New(srv.URL)
	s := NewSession(base, store, nil)

	_, err := s.Login(t.Context(), "bad")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, s.SignedIn())

	user, err := s.Login(t.Context(), "good")
	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", user.Email)
	got, _ := store.Get()
	assert.Equal(t, "good", got)
	assert.Empty(t, base.Token(), "base client is never mutated")

	require.NoError(t, s.Logout())
	assert.False(t, s.SignedIn())
	assert.Empty(t, s.Client().Token())
	got, _ = store.Get()
	assert.Empty(t, got)
}

func jwt(t *testing.T, claims map[string]string) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return "e30." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile(jwt(t, map[string]string{"sub": "123", "email": "a@b.c", "name": "A"}))
	require.NoError(t, err)
	assert.Equal(t, Profile{Subject: "123", Email: "a@b.c", Name: "A"}, p)

	_, err = ParseProfile("not-a-jwt")
	assert.Error(t, err)
}

func TestGoogleSignInReturnsIDToken(t *testing.T) {
	idToken := jwt(t, map[string]string{"sub": "1", "email": "kim@example.com"})
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "at",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(tokenSrv.Close)

	g := NewGoogle("cid", "secret", "http://localhost/cb").
		WithEndpoint(oauth2.Endpoint{AuthURL: tokenSrv.URL + "/auth", TokenURL: tokenSrv.URL + "/token"})

	credential, profile, err := g.SignIn(t.Context(), "code")
	require.NoError(t, err)
	assert.Equal(t, idToken, credential)
	assert.Equal(t, "kim@example.com", profile.Email)
	assert.Contains(t, g.AuthURL("st"), "state=st")
}

func TestGoogleSignInWithoutIDToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at","token_type":"Bearer"}`))
	}))
	t.Cleanup(tokenSrv.Close)

	g := NewGoogle("cid", "secret", "").
		WithEndpoint(oauth2.Endpoint{TokenURL: tokenSrv.URL})
	_, _, err := g.SignIn(t.Context(), "code")
	assert.ErrorIs(t, err, ErrNoIDToken)
}
