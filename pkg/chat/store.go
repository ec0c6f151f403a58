package chat

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kiraxlabs/kirax/pkg/persona"
	"github.com/kiraxlabs/kirax/pkg/plan"
)

// Store keeps live sessions in memory. Each session has a single logical
// writer (the request/response cycle of its browser session), so the lock
// only guards the map itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create starts a session on the fixed defaults with the given model.
func (s *Store) Create(model string) *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		Plan:    plan.DefaultName,
		Persona: persona.DefaultName,
		Model:   model,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete ends a session; its history and document context are gone with it.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
