package core

// ProfileStore persists Tourist Profiles for the lifetime of the process. It
// is the single source of truth for session state: every mutation is visible
// to subsequent reads, and mutations to the same user id are serialized.
//
// GetOrCreate is idempotent and never fails for an unknown id; AppendMemory
// silently drops records addressed to an undefined category (documented
// no-op, not an error).
type ProfileStore interface {
	GetOrCreate(userID string) (*Profile, error)
	UpdatePreferences(userID string, delta PreferencesDelta) error
	AppendMemory(userID string, category MemoryCategory, record MemoryRecord) error
	Snapshot(userID string) (ContextProjection, error)
	Clear(userID string) error
}
