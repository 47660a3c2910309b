package profile

import (
	"sync"

	"github.com/hupe1980/tourmesh/core"
)

// InMemoryStore is a volatile ProfileStore implementation keeping
// tourist profiles in a process local map. It is safe for concurrent
// access and suited for chat sessions, tests and ephemeral demo
// servers. Profiles handed out by GetOrCreate are clones, so callers
// cannot mutate internal state behind the store's back.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*core.Profile
}

// NewInMemoryStore constructs an empty in-memory profile store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]*core.Profile)}
}

// GetOrCreate returns a clone of the user's profile, creating a fresh
// default profile on first contact.
func (s *InMemoryStore) GetOrCreate(userID string) (*core.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID).Clone(), nil
}

// UpdatePreferences applies a typed preference delta to the user's
// profile, creating it if needed.
func (s *InMemoryStore) UpdatePreferences(userID string, delta core.PreferencesDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(userID).ApplyPreferences(delta)
	return nil
}

// AppendMemory adds a record to one of the user's memory categories.
// Unknown categories are dropped without error, matching the lenient
// write contract capability tools rely on.
func (s *InMemoryStore) AppendMemory(userID string, category core.MemoryCategory, record core.MemoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(userID).Append(category, record)
	return nil
}

// Snapshot returns the bounded context projection for the user,
// creating a default profile on first contact.
func (s *InMemoryStore) Snapshot(userID string) (core.ContextProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID).Snapshot(), nil
}

// Clear discards the user's profile. The next access starts over with
// defaults, as if the user had never been seen.
func (s *InMemoryStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

// getOrCreateLocked allocates and stores a new profile if absent;
// caller must hold the write lock.
func (s *InMemoryStore) getOrCreateLocked(userID string) *core.Profile {
	if p, ok := s.profiles[userID]; ok {
		return p
	}
	p := core.NewProfile(userID)
	s.profiles[userID] = p
	return p
}
