package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/db"
)

// Store persists browser sessions in SQLite.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create starts a new anonymous session.
func (s *Store) Create(ctx context.Context) (*Record, error) {
	now := time.Now().UTC()
	rec := Record{ID: uuid.New().String(), CreatedAt: now, LastSeen: now}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO browser_sessions (id, created_at, last_seen) VALUES (?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.LastSeen,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &rec, nil
}

// Get returns the session with the given id, or nil if there is none.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	var (
		rec      Record
		userJSON string
		navJSON  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, credential, user_json, nav_state, created_at, last_seen
		 FROM browser_sessions WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Credential, &userJSON, &navJSON, &rec.CreatedAt, &rec.LastSeen)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if userJSON != "" {
		var u api.User
		if err := json.Unmarshal([]byte(userJSON), &u); err == nil {
			rec.User = &u
		}
	}
	if navJSON != "" {
		var n Nav
		if err := json.Unmarshal([]byte(navJSON), &n); err == nil {
			rec.Nav = &n
		}
	}
	return &rec, nil
}

// SetCredential stores the bearer credential. An empty credential signs
// the session out and forgets the user.
func (s *Store) SetCredential(ctx context.Context, id, credential string) error {
	if credential == "" {
		return s.update(ctx, id,
			`UPDATE browser_sessions SET credential = '', user_json = '', last_seen = ? WHERE id = ?`,
			time.Now().UTC(), id)
	}
	return s.update(ctx, id,
		`UPDATE browser_sessions SET credential = ?, last_seen = ? WHERE id = ?`,
		credential, time.Now().UTC(), id)
}

// SetUser caches the profile of the signed-in user.
func (s *Store) SetUser(ctx context.Context, id string, user *api.User) error {
	userJSON := ""
	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshalling user: %w", err)
		}
		userJSON = string(data)
	}
	return s.update(ctx, id,
		`UPDATE browser_sessions SET user_json = ? WHERE id = ?`, userJSON, id)
}

// SetNav replaces the navigation state. A nil nav clears it.
func (s *Store) SetNav(ctx context.Context, id string, nav *Nav) error {
	navJSON := ""
	if nav != nil {
		data, err := json.Marshal(nav)
		if err != nil {
			return fmt.Errorf("marshalling nav state: %w", err)
		}
		navJSON = string(data)
	}
	return s.update(ctx, id,
		`UPDATE browser_sessions SET nav_state = ?, last_seen = ? WHERE id = ?`,
		navJSON, time.Now().UTC(), id)
}

// Touch records activity on the session.
func (s *Store) Touch(ctx context.Context, id string) error {
	return s.update(ctx, id,
		`UPDATE browser_sessions SET last_seen = ? WHERE id = ?`, time.Now().UTC(), id)
}

// Delete removes the session and its chat history.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM browser_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Prune deletes sessions idle since before cutoff and returns how many.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM browser_sessions WHERE last_seen < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) update(ctx context.Context, id, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

// CredentialStore adapts one session row to auth.Store.
type CredentialStore struct {
	store *Store
	id    string
}

func (s *Store) CredentialStore(id string) *CredentialStore {
	return &CredentialStore{store: s, id: id}
}

func (c *CredentialStore) Get() (string, error) {
	rec, err := c.store.Get(context.Background(), c.id)
	if err != nil || rec == nil {
		return "", err
	}
	return rec.Credential, nil
}

func (c *CredentialStore) Set(credential string) error {
	return c.store.SetCredential(context.Background(), c.id, credential)
}

func (c *CredentialStore) Clear() error {
	return c.store.SetCredential(context.Background(), c.id, "")
}
