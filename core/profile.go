package core

import (
	"sync"
	"time"
)

// SessionState is the lifecycle tag of a profile. Only "active" is defined;
// expiry is an explicit non-goal.
type SessionState string

// SessionActive is the state every profile carries from creation until the
// session is cleared.
const SessionActive SessionState = "active"

// ProjectionDepth bounds how many recent records per category a projection
// carries, regardless of conversation length.
const ProjectionDepth = 5

// Profile is the per-user mutable record of preferences plus the append-only
// memory bank. It is safe for concurrent access.
//
// Contract:
//   - Preference merges replace only the supplied fields
//   - Memory appends to an undefined category are silently dropped
//   - Snapshot returns a bounded read-only projection (last ProjectionDepth
//     records per category, chronological order, plus full preferences)
//   - Clone performs deep copies for safe divergence
type Profile struct {
	UserID      string                          `json:"user_id"`
	CreatedAt   time.Time                       `json:"created_at"`
	Preferences Preferences                     `json:"preferences"`
	Memory      map[MemoryCategory][]MemoryRecord `json:"memory_bank"`
	State       SessionState                    `json:"session_state"`
	Updated     time.Time                       `json:"updated"`
	mu          sync.RWMutex
}

// NewProfile creates a fresh profile with default preferences and five empty
// memory categories.
func NewProfile(userID string) *Profile {
	now := time.Now().UTC()
	memory := make(map[MemoryCategory][]MemoryRecord, len(MemoryCategories))
	for _, c := range MemoryCategories {
		memory[c] = []MemoryRecord{}
	}
	return &Profile{
		UserID:      userID,
		CreatedAt:   now,
		Preferences: DefaultPreferences(),
		Memory:      memory,
		State:       SessionActive,
		Updated:     now,
	}
}

// ApplyPreferences merges a partial delta into the preference record,
// updating the Updated timestamp.
func (p *Profile) ApplyPreferences(delta PreferencesDelta) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delta.merge(&p.Preferences)
	p.Updated = time.Now().UTC()
}

// GetPreferences returns a deep copy of the current preference record.
func (p *Profile) GetPreferences() Preferences {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Preferences.Clone()
}

// Append adds a record to the named category log. It reports false when the
// category is undefined; the record is dropped and no category is created.
func (p *Profile) Append(category MemoryCategory, record MemoryRecord) bool {
	if !category.Valid() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Memory[category] = append(p.Memory[category], record)
	p.Updated = time.Now().UTC()
	return true
}

// Records returns a defensive copy of the full log for one category.
func (p *Profile) Records(category MemoryCategory) []MemoryRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	records := make([]MemoryRecord, len(p.Memory[category]))
	copy(records, p.Memory[category])
	return records
}

// Snapshot builds the bounded read-only projection delegates receive: the
// last ProjectionDepth records of every category in chronological order
// (oldest of the window first) plus the full preference record.
func (p *Profile) Snapshot() ContextProjection {
	p.mu.RLock()
	defer p.mu.RUnlock()

	recent := make(map[MemoryCategory][]MemoryRecord, len(MemoryCategories))
	for _, c := range MemoryCategories {
		log := p.Memory[c]
		if len(log) > ProjectionDepth {
			log = log[len(log)-ProjectionDepth:]
		}
		window := make([]MemoryRecord, len(log))
		copy(window, log)
		recent[c] = window
	}

	return ContextProjection{
		UserID:      p.UserID,
		Preferences: p.Preferences.Clone(),
		Recent:      recent,
	}
}

// Clone returns a deep copy of the profile (maps & slices) except the mutex.
func (p *Profile) Clone() *Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()

	memory := make(map[MemoryCategory][]MemoryRecord, len(p.Memory))
	for c, log := range p.Memory {
		cp := make([]MemoryRecord, len(log))
		copy(cp, log)
		memory[c] = cp
	}

	return &Profile{
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		Preferences: p.Preferences.Clone(),
		Memory:      memory,
		State:       p.State,
		Updated:     p.Updated,
	}
}
