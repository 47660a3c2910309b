package tool

import (
	"time"

	"github.com/hupe1980/tourmesh/core"
)

type searchAttractionsArgs struct {
	Location string `json:"location" description:"Area in Lagos (e.g. Lekki, VI, Surulere, Ikoyi)"`
	Category string `json:"category" description:"Type of attraction (e.g. beach, museum, restaurant, shopping, nightlife)"`
	Budget   string `json:"budget,omitempty" description:"Price range: budget, moderate or luxury (default moderate)"`
}

// NewSearchAttractionsTool returns the search_attractions capability.
// A query with no matching attractions succeeds with an empty result
// list so the delegate can phrase the miss itself.
func NewSearchAttractionsTool(ds *Dataset) *FunctionTool {
	return NewFunctionToolFromStruct(
		"search_attractions",
		"Search for tourist attractions in Lagos by area, category and budget",
		searchAttractionsArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			location := stringArg(args, "location", "")
			category := stringArg(args, "category", "")
			budget := stringArg(args, "budget", string(core.BudgetModerate))

			results := ds.FindAttractions(location, category, budget)
			if results == nil {
				results = []Attraction{}
			}

			return map[string]any{
				"status":      "success",
				"location":    location,
				"category":    category,
				"count":       len(results),
				"attractions": results,
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
			}, nil
		},
	)
}
