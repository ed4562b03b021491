// Package session holds in-flight conversation state in memory. Sessions
// live only for the duration of one conversation, so nothing here needs to
// survive a restart.
package session

import (
	"sync"

	"github.com/ArtemYurchenko333/NatalBot/internal/domain"
)

// Store is a mutex-guarded map of sessions keyed by user ID, one session
// per user at a time. Put overwrites unconditionally, which gives /start
// its last-start-wins semantics for free.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]domain.Session),
	}
}

func (s *Store) Get(userID int64) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *Store) Put(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
}

func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
