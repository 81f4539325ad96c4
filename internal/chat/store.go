package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexdesk/lexdesk/internal/db"
)

// Entry is one answered question.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	BackendID string    `json:"backend_id,omitempty"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps chat history per browser session.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Add saves an entry, assigning its id and timestamp.
func (s *Store) Add(ctx context.Context, e Entry) (*Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_entries (id, session_id, backend_id, question, answer, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.BackendID, e.Question, e.Answer, e.Language, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("adding chat entry: %w", err)
	}
	return &e, nil
}

// List returns a session's entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	query := `SELECT id, session_id, backend_id, question, answer, language, created_at
		 FROM chat_entries WHERE session_id = ?
		 ORDER BY created_at DESC, rowid DESC`
	args := []interface{}{sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chat entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.BackendID, &e.Question, &e.Answer, &e.Language, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
