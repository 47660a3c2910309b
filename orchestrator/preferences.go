package orchestrator

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/tourmesh/core"
)

var durationPattern = regexp.MustCompile(`(\d+)\s*(?:days?|nights?)`)

var interestKeywords = map[string][]string{
	"beach":     {"beach"},
	"nightlife": {"nightlife", "club", "party", "parties"},
	"food":      {"food", "restaurant", "eat", "cuisine", "jollof", "suya"},
	"culture":   {"culture", "museum", "art", "history", "festival"},
	"shopping":  {"shopping", "mall", "market"},
	"music":     {"music", "concert", "afrobeats"},
}

// InferPreferences extracts typed preference hints from a raw
// utterance. It is intentionally conservative: only unambiguous signals
// produce a delta, and an empty delta means the stored preferences stay
// untouched.
func InferPreferences(utterance string) core.PreferencesDelta {
	lowered := strings.ToLower(utterance)

	var delta core.PreferencesDelta

	switch {
	case containsAny(lowered, "luxury", "high-end", "high end", "premium", "5-star", "five star"):
		b := core.BudgetLuxury
		delta.Budget = &b
	case containsAny(lowered, "cheap", "budget", "affordable", "low cost", "low-cost"):
		b := core.BudgetEconomy
		delta.Budget = &b
	case containsAny(lowered, "mid-range", "mid range", "moderate"):
		b := core.BudgetModerate
		delta.Budget = &b
	}

	for tag, keywords := range interestKeywords {
		if containsAny(lowered, keywords...) {
			delta.Interests = append(delta.Interests, tag)
		}
	}
	// Keep inferred tags deterministic regardless of map iteration order.
	sort.Strings(delta.Interests)

	if m := durationPattern.FindStringSubmatch(lowered); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil && days > 0 {
			delta.DurationDays = &days
		}
	}

	return delta
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
