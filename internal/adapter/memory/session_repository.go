package memory

import (
	"sync"
	"time"

	"soundcamps/internal/core/port"
	"soundcamps/internal/core/wizard"
)

// SessionRepository keeps live wizard sessions in a map guarded by a
// RWMutex. Sessions die with the process.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*wizard.Session
}

// NewSessionRepository returns an empty registry.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*wizard.Session)}
}

func (r *SessionRepository) Create(s *wizard.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID()]; ok {
		return port.ErrSessionExists
	}
	r.sessions[s.ID()] = s
	return nil
}

func (r *SessionRepository) Get(id string) (*wizard.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

// EvictIdle removes sessions without activity since before. Sessions with a
// submission in flight are kept.
func (r *SessionRepository) EvictIdle(before time.Time) int {
	r.mu.Lock()
	var evicted []*wizard.Session
	for id, s := range r.sessions {
		if s.IdleSince(before) && !s.Submitting() {
			evicted = append(evicted, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	return len(evicted)
}

// Len returns the number of live sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
