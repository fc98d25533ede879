package convo

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using in-process storage. It is the default
// backend when no Redis address is configured and the backend used by tests.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*memorySession
	defaultTTL time.Duration
	stop       chan struct{}
}

type memorySession struct {
	state     *State
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory conversation store with the given
// default idle lifetime.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	if defaultTTL == 0 {
		defaultTTL = 30 * time.Minute
	}
	store := &MemoryStore{
		sessions:   make(map[string]*memorySession),
		defaultTTL: defaultTTL,
		stop:       make(chan struct{}),
	}

	// Sweep expired conversations so memory growth stays bounded.
	go store.cleanupExpired()

	return store
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return nil, nil
	}
	if time.Now().After(session.expiresAt) {
		delete(m.sessions, sessionID)
		return nil, nil
	}
	// Hand out a copy; the stored state must only change through Save, the
	// same isolation the Redis backend gets from its JSON round-trip.
	return session.state.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, sessionID string, state *State, ttl time.Duration) error {
	if ttl == 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = &memorySession{
		state:     state.Clone(),
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) Close() error {
	close(m.stop)
	return nil
}

func (m *MemoryStore) HealthCheck(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for sessionID, session := range m.sessions {
				if now.After(session.expiresAt) {
					delete(m.sessions, sessionID)
				}
			}
			m.mu.Unlock()
		}
	}
}
