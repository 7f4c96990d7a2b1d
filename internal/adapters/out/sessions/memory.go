// Package sessions provides SessionStore backends: an in-process map for
// single-instance deployments and a Redis store for shared state.
package sessions

import (
	"context"
	"fmt"
	"sync"

	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// MemoryStore keeps sessions in an in-process map. Sessions do not survive a
// restart; flows treat the resulting zero Session as a fresh conversation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]ports.Session),
	}
}

// Get returns the stored session, or a zero Session when none exists.
func (s *MemoryStore) Get(_ context.Context, role ports.Role, chatID int64) (ports.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[sessionKey(role, chatID)], nil
}

// Put stores the session, replacing any previous state.
func (s *MemoryStore) Put(_ context.Context, role ports.Role, chatID int64, session ports.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionKey(role, chatID)] = session
	return nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *MemoryStore) Delete(_ context.Context, role ports.Role, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionKey(role, chatID))
	return nil
}

func sessionKey(role ports.Role, chatID int64) string {
	return fmt.Sprintf("session:%s:%d", role, chatID)
}

var _ ports.SessionStore = (*MemoryStore)(nil)
