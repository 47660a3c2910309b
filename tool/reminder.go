package tool

import (
	"fmt"

	"github.com/hupe1980/tourmesh/core"
)

type makeBookingReminderArgs struct {
	Location string `json:"location" description:"Where the activity is"`
	Activity string `json:"activity" description:"What to book (hotel, restaurant, tour, event)"`
	Date     string `json:"date" description:"Date of activity (YYYY-MM-DD)"`
	Time     string `json:"time" description:"Time of activity (HH:MM)"`
}

// NewMakeBookingReminderTool returns the make_booking_reminder
// capability. It appends a bookings record to the caller's profile and
// returns a deterministic reminder ID, so repeating the same request
// reports the same ID while still logging a fresh record.
func NewMakeBookingReminderTool() *FunctionTool {
	return NewFunctionToolFromStruct(
		"make_booking_reminder",
		"Set booking reminders for activities and events",
		makeBookingReminderArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			location := stringArg(args, "location", "")
			activity := stringArg(args, "activity", "")
			date := stringArg(args, "date", "")
			timeOfDay := stringArg(args, "time", "")

			record := core.NewMemoryRecord(map[string]any{
				"activity": activity,
				"location": location,
				"date":     date,
				"time":     timeOfDay,
				"status":   "reminder_set",
			})
			if err := toolCtx.AppendMemory(core.CategoryBookings, record); err != nil {
				return nil, fmt.Errorf("save booking reminder: %w", err)
			}

			return map[string]any{
				"status":              "success",
				"reminder_id":         fmt.Sprintf("REM-%s-%s-%s", toolCtx.UserID(), date, activity),
				"activity":            activity,
				"location":            location,
				"scheduled_date":      date,
				"scheduled_time":      timeOfDay,
				"message":             fmt.Sprintf("Reminder set for %s at %s on %s at %s", activity, location, date, timeOfDay),
				"notification_method": "SMS + Email (simulated)",
			}, nil
		},
	)
}
