// Package chat implements the legal Q&A history: questions go to the
// backend and answered pairs are kept per browser session.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
)

// ErrEmptyQuestion is returned for blank questions.
var ErrEmptyQuestion = errors.New("question is empty")

// Asker is the backend call the service depends on.
type Asker interface {
	Ask(ctx context.Context, question, language string) (*api.AskResult, error)
}

// Service answers questions and records them.
type Service struct {
	store *Store
	log   logrus.FieldLogger
}

func NewService(store *Store, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{store: store, log: log}
}

// Ask sends question through backend and stores the answer under sessionID.
// Nothing is stored when the backend fails.
func (s *Service) Ask(ctx context.Context, backend Asker, sessionID, question, language string) (*Entry, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	res, err := backend.Ask(ctx, question, language)
	if err != nil {
		return nil, fmt.Errorf("asking backend: %w", err)
	}
	entry, err := s.store.Add(ctx, Entry{
		SessionID: sessionID,
		BackendID: res.ID.String(),
		Question:  res.Question,
		Answer:    res.Answer,
		Language:  language,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"session": sessionID, "entry": entry.ID}).Debug("question answered")
	return entry, nil
}

// History returns the session's entries, newest first.
func (s *Service) History(ctx context.Context, sessionID string) ([]Entry, error) {
	return s.store.List(ctx, sessionID, 0)
}
