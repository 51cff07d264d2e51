// Package chat keeps per-publication question/answer logs for the
// lifetime of a session. Entirely in memory; durability is a non-goal.
package chat

import (
	"sync"

	"github.com/lunarlife/spacebio/internal/model"
)

type key struct {
	session     string
	publication string
}

// Store is an in-memory turn log keyed by (session, publication).
// Appends are safe under concurrent writers.
type Store struct {
	mu    sync.RWMutex
	turns map[key][]model.ChatTurn
}

func NewStore() *Store {
	return &Store{turns: make(map[key][]model.ChatTurn)}
}

// Append adds a turn to the log for (sessionID, publication).
func (s *Store) Append(sessionID, publication string, turn model.ChatTurn) {
	k := key{session: sessionID, publication: publication}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[k] = append(s.turns[k], turn)
}

// Turns returns a copy of the ordered log for (sessionID,
// publication). Unknown keys yield an empty slice, not an error.
func (s *Store) Turns(sessionID, publication string) []model.ChatTurn {
	k := key{session: sessionID, publication: publication}
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]model.ChatTurn, len(s.turns[k]))
	copy(turns, s.turns[k])
	return turns
}

// Clear drops every log belonging to the session.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.turns {
		if k.session == sessionID {
			delete(s.turns, k)
		}
	}
}
