package core

import (
	"time"

	"github.com/google/uuid"
)

// MemoryCategory identifies one of the five fixed memory-bank logs. The set
// is closed: writes addressed to any other value are dropped without error.
type MemoryCategory string

const (
	// CategoryVisitedPlaces logs places the tourist has been to.
	CategoryVisitedPlaces MemoryCategory = "visited_places"
	// CategorySavedRestaurants logs restaurants saved for later.
	CategorySavedRestaurants MemoryCategory = "saved_restaurants"
	// CategoryBookings logs reservations and scheduled reminders.
	CategoryBookings MemoryCategory = "bookings"
	// CategorySafetyAlerts logs safety advisories surfaced to the tourist.
	CategorySafetyAlerts MemoryCategory = "safety_alerts"
	// CategoryChatHistory logs the raw conversation turns.
	CategoryChatHistory MemoryCategory = "chat_history"
)

// MemoryCategories lists every defined category in a stable order.
var MemoryCategories = []MemoryCategory{
	CategoryVisitedPlaces,
	CategorySavedRestaurants,
	CategoryBookings,
	CategorySafetyAlerts,
	CategoryChatHistory,
}

// Valid reports whether c names a defined category.
func (c MemoryCategory) Valid() bool {
	switch c {
	case CategoryVisitedPlaces, CategorySavedRestaurants, CategoryBookings,
		CategorySafetyAlerts, CategoryChatHistory:
		return true
	}
	return false
}

// MemoryRecord is one timestamped entry in a memory-bank log. Records are
// append-only: once written they are never edited or removed.
type MemoryRecord struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewMemoryRecord wraps an arbitrary structured payload with a fresh id and a
// UTC timestamp.
func NewMemoryRecord(data map[string]any) MemoryRecord {
	return MemoryRecord{
		ID:        NewID(),
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatRecord builds the chat_history payload for one side of a turn.
func NewChatRecord(role, content string) MemoryRecord {
	return NewMemoryRecord(map[string]any{"role": role, "content": content})
}

// NewID generates a unique identifier for records, turns and tool calls.
func NewID() string { return uuid.NewString() }
