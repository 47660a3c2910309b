package tool

import (
	"github.com/hupe1980/tourmesh/core"
)

type checkSafetyStatusArgs struct {
	Location  string `json:"location" description:"Area in Lagos"`
	TimeOfDay string `json:"time_of_day,omitempty" description:"day or night (default day)"`
}

// NewCheckSafetyStatusTool returns the check_safety_status capability.
// Unknown areas fall back to a conservative default zone; the response
// always carries the emergency contact block.
func NewCheckSafetyStatusTool(ds *Dataset) *FunctionTool {
	return NewFunctionToolFromStruct(
		"check_safety_status",
		"Check safety scores, alerts and recommendations for Lagos locations",
		checkSafetyStatusArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			location := stringArg(args, "location", "")
			timeOfDay := stringArg(args, "time_of_day", "day")
			if timeOfDay != "day" && timeOfDay != "night" {
				timeOfDay = "day"
			}

			zone, _ := ds.SafetyFor(location)

			score := zone.Day
			if timeOfDay == "night" {
				score = zone.Night
			}

			status := "avoid"
			switch {
			case score >= 7:
				status = "safe"
			case score >= 5:
				status = "caution"
			}

			alerts := zone.Alerts
			if alerts == nil {
				alerts = []string{}
			}

			return map[string]any{
				"location":           location,
				"time_of_day":        timeOfDay,
				"safety_score":       score, // 1-10 scale
				"status":             status,
				"alerts":             alerts,
				"recommendation":     zone.Tip,
				"emergency_contacts": ds.Safety.EmergencyContacts,
			}, nil
		},
	)
}
