package testutil

import (
	"github.com/hupe1980/tourmesh/core"
)

// ProfileBuilder helps construct tourist profiles with fluent chaining
// for tests. Example:
//
//	p := NewProfileBuilder("traveler").Budget(core.BudgetLuxury).Visited("Lekki Conservation Centre").Build()
type ProfileBuilder struct {
	userID  string
	delta   core.PreferencesDelta
	records map[core.MemoryCategory][]core.MemoryRecord
}

// NewProfileBuilder creates a new builder for a profile with the given
// user id. Use chainable methods then call Build.
func NewProfileBuilder(userID string) *ProfileBuilder {
	return &ProfileBuilder{
		userID:  userID,
		records: map[core.MemoryCategory][]core.MemoryRecord{},
	}
}

// Budget sets the budget preference (chainable).
func (b *ProfileBuilder) Budget(budget core.Budget) *ProfileBuilder {
	b.delta.Budget = &budget
	return b
}

// Interests sets the interest list (chainable).
func (b *ProfileBuilder) Interests(interests ...string) *ProfileBuilder {
	b.delta.Interests = interests
	return b
}

// Duration sets the trip duration in days (chainable).
func (b *ProfileBuilder) Duration(days int) *ProfileBuilder {
	b.delta.DurationDays = &days
	return b
}

// Record appends a memory record to the given category (chainable).
func (b *ProfileBuilder) Record(category core.MemoryCategory, data map[string]any) *ProfileBuilder {
	b.records[category] = append(b.records[category], core.NewMemoryRecord(data))
	return b
}

// Visited appends a visited_places record for the named attraction (chainable).
func (b *ProfileBuilder) Visited(name string) *ProfileBuilder {
	return b.Record(core.CategoryVisitedPlaces, map[string]any{"name": name})
}

// Chat appends a chat_history record with the given role and content (chainable).
func (b *ProfileBuilder) Chat(role, content string) *ProfileBuilder {
	b.records[core.CategoryChatHistory] = append(b.records[core.CategoryChatHistory], core.NewChatRecord(role, content))
	return b
}

// Build returns a *core.Profile with the configured preferences and
// memory records applied in insertion order.
func (b *ProfileBuilder) Build() *core.Profile {
	p := core.NewProfile(b.userID)

	if !b.delta.IsZero() {
		p.ApplyPreferences(b.delta)
	}

	for _, category := range core.MemoryCategories {
		for _, record := range b.records[category] {
			p.Append(category, record)
		}
	}

	return p
}
