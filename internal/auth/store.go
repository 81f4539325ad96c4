package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CredentialKey is the fixed key the bearer credential is stored under.
const CredentialKey = "idToken"

// Store persists the bearer credential between runs.
type Store interface {
	// Get returns the stored credential, or "" when there is none.
	Get() (string, error)
	Set(credential string) error
	Clear() error
}

// DefaultPath returns ~/.lexdesk/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".lexdesk", "credentials.json"), nil
}

// FileStore keeps credentials in a JSON object on disk, readable only by
// the owner.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	creds := map[string]string{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return creds, nil
}

func (s *FileStore) save(creds map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, err := s.load()
	if err != nil {
		return "", err
	}
	return creds[CredentialKey], nil
}

func (s *FileStore) Set(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, err := s.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking sign-in.
		creds = map[string]string{}
	}
	creds[CredentialKey] = credential
	return s.save(creds)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, err := s.load()
	if err != nil {
		return os.Remove(s.path)
	}
	if _, ok := creds[CredentialKey]; !ok {
		return nil
	}
	delete(creds, CredentialKey)
	return s.save(creds)
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
}

func (m *MemoryStore) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, nil
}

func (m *MemoryStore) Set(credential string) error {
	m.mu.Lock()
	m.credential = credential
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error { return m.Set("") }
