package tool

import (
	"github.com/hupe1980/tourmesh/core"
)

type searchHotelsArgs struct {
	Location    string `json:"location" description:"Area preference (Lekki, VI, Surulere, etc)"`
	Budget      string `json:"budget" description:"budget (₦15K-30K), moderate (₦30K-80K) or luxury (₦80K+)"`
	Nights      int    `json:"nights" description:"Number of nights"`
	CheckinDate string `json:"checkin_date" description:"Check-in date (YYYY-MM-DD)"`
}

// NewSearchHotelsTool returns the search_hotels capability. The
// estimated total cost uses the first listed hotel's nightly rate, or
// ₦0 when the search misses.
func NewSearchHotelsTool(ds *Dataset) *FunctionTool {
	return NewFunctionToolFromStruct(
		"search_hotels",
		"Search for hotel accommodations in Lagos with prices, ratings and amenities",
		searchHotelsArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			location := stringArg(args, "location", "")
			budget := stringArg(args, "budget", "")
			nights := intArg(args, "nights", 1)
			checkin := stringArg(args, "checkin_date", "")

			hotels := ds.FindHotels(location, budget)
			if hotels == nil {
				hotels = []Hotel{}
			}

			totalCost := 0
			if len(hotels) > 0 {
				totalCost = parseNaira(hotels[0].PricePerNight) * nights
			}

			return map[string]any{
				"status":               "success",
				"location":             location,
				"checkin_date":         checkin,
				"nights":               nights,
				"hotel_count":          len(hotels),
				"hotels":               hotels,
				"estimated_total_cost": formatNaira(totalCost),
				"booking_note":         "Prices subject to availability",
			}, nil
		},
	)
}
