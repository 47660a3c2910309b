package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/tourmesh/model"
)

// Router decides which delegates handle an utterance. Implementations
// return delegate names; the orchestrator intersects them with its
// registry and dispatches in registration order, so routing can never
// reorder the merge.
type Router interface {
	Route(ctx context.Context, utterance string, available []string) ([]string, error)
}

// keywordRule maps trigger words to one delegate.
type keywordRule struct {
	delegate string
	keywords []string
}

// KeywordRouter is the default deterministic router: a fixed rule table
// of intent keywords per persona. An utterance matching several rules
// engages several delegates; one matching none falls back to the first
// available delegate.
type KeywordRouter struct {
	rules []keywordRule
}

// NewKeywordRouter builds the default rule table for the three Lagos
// personas.
func NewKeywordRouter() *KeywordRouter {
	return &KeywordRouter{
		rules: []keywordRule{
			{
				delegate: "TourismAdvisor",
				keywords: []string{
					"attraction", "beach", "restaurant", "food", "eat", "museum",
					"culture", "shopping", "nightlife", "club", "tip", "visit",
					"see", "itinerary", "plan", "event", "festival", "music", "party",
				},
			},
			{
				delegate: "SafetyGuide",
				keywords: []string{
					"safe", "safety", "security", "danger", "night", "emergency",
					"alert", "crime", "scam",
				},
			},
			{
				delegate: "BookingAssistant",
				keywords: []string{
					"hotel", "book", "booking", "stay", "accommodation",
					"reservation", "reserve", "reminder", "check-in", "checkin",
				},
			},
		},
	}
}

// Route implements Router.
func (r *KeywordRouter) Route(_ context.Context, utterance string, available []string) ([]string, error) {
	lowered := strings.ToLower(utterance)

	availableSet := make(map[string]bool, len(available))
	for _, name := range available {
		availableSet[name] = true
	}

	var matched []string
	for _, rule := range r.rules {
		if !availableSet[rule.delegate] {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, rule.delegate)
				break
			}
		}
	}

	if len(matched) == 0 && len(available) > 0 {
		matched = []string{available[0]}
	}

	return matched, nil
}

// ModelRouter delegates the routing decision to a natural-language
// reasoning step. The model is asked for a JSON array of delegate
// names; anything unusable falls back to the wrapped router.
type ModelRouter struct {
	model    model.Model
	fallback Router
}

// NewModelRouter wraps a model with a deterministic fallback. A nil
// fallback uses the default keyword router.
func NewModelRouter(m model.Model, fallback Router) *ModelRouter {
	if fallback == nil {
		fallback = NewKeywordRouter()
	}
	return &ModelRouter{model: m, fallback: fallback}
}

// Route implements Router.
func (r *ModelRouter) Route(ctx context.Context, utterance string, available []string) ([]string, error) {
	resp, err := r.model.Generate(ctx, model.Request{
		Charter: fmt.Sprintf(
			"You route tourist requests to specialist delegates. Available delegates: %s. "+
				"Reply with a JSON array of delegate names that should handle the request, nothing else.",
			strings.Join(available, ", "),
		),
		Messages: []model.Message{{Role: model.RoleUser, Content: utterance}},
	})
	if err != nil {
		return r.fallback.Route(ctx, utterance, available)
	}

	names, ok := parseNameList(resp.Content, available)
	if !ok {
		return r.fallback.Route(ctx, utterance, available)
	}
	return names, nil
}

// parseNameList extracts a JSON array of known delegate names from
// model output, tolerating surrounding prose.
func parseNameList(content string, available []string) ([]string, bool) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, false
	}

	var raw []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, false
	}

	availableSet := make(map[string]bool, len(available))
	for _, name := range available {
		availableSet[name] = true
	}

	var names []string
	for _, name := range raw {
		if availableSet[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}
