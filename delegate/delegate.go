package delegate

import (
	"github.com/hupe1980/tourmesh/core"
)

// Contribution is one delegate's answer for a turn, merged by the
// orchestrator in adapter registration order.
type Contribution struct {
	Delegate string `json:"delegate"`
	Text     string `json:"text"`
}

// Adapter is a persona the orchestrator can dispatch a task to.
// Implementations must be safe for concurrent use; the orchestrator may
// invoke several adapters in parallel within one turn.
type Adapter interface {
	// Name returns the persona identifier (e.g. "TourismAdvisor").
	Name() string

	// Description summarizes the persona's domain for routing.
	Description() string

	// Invoke runs the persona against a routed task within the turn
	// scope and returns its contribution.
	Invoke(turnCtx *core.TurnContext, task string) (Contribution, error)
}
