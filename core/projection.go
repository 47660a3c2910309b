package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ContextProjection is the bounded read-only view of a profile handed to the
// orchestrator and its delegates. It never exceeds ProjectionDepth records
// per memory category.
type ContextProjection struct {
	UserID      string                            `json:"user_id"`
	Preferences Preferences                       `json:"preferences"`
	Recent      map[MemoryCategory][]MemoryRecord `json:"recent_memory"`
}

// FirstContact reports whether the conversation has no prior turns.
func (cp ContextProjection) FirstContact() bool {
	return len(cp.Recent[CategoryChatHistory]) == 0
}

// Render formats the projection as the context block injected into delegate
// charters.
func (cp ContextProjection) Render() string {
	prefs, err := json.MarshalIndent(cp.Preferences, "", "  ")
	if err != nil {
		prefs = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("Current Tourist Profile:\n")
	fmt.Fprintf(&b, "- User ID: %s\n", cp.UserID)
	fmt.Fprintf(&b, "- Preferences: %s\n", prefs)
	b.WriteString("- Recent Activity:\n")
	for _, c := range MemoryCategories {
		records := cp.Recent[c]
		if len(records) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s:\n", c)
		for _, r := range records {
			data, err := json.Marshal(r.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "  - %s\n", data)
		}
	}
	return b.String()
}
