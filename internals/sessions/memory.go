// internals/sessions/memory.go
package sessions

import (
	"sync"
	"time"
)

// MemoryStore is a process-wide map with no eviction beyond expiry checks
// on read. It is NOT persistent and NOT safe across multiple instances;
// it exists so single-instance deployments work without extra infra.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(key string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[key]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		m.Remove(key)
		return Session{}, false
	}
	return s, true
}

func (m *MemoryStore) Set(key string, s Session) {
	m.mu.Lock()
	m.sessions[key] = s
	m.mu.Unlock()
}

func (m *MemoryStore) Remove(key string) {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
}

// Default is the shared store used by the auth layer.
var Default Store = NewMemoryStore()
