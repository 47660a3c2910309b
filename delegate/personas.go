package delegate

import (
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/tool"
)

const tourismAdvisorCharter = `You are a knowledgeable Lagos tourism guide specializing in Detty-December experiences.

Your role:
- Recommend attractions based on tourist interests and budget
- Suggest restaurants and food experiences
- Provide cultural insights about Lagos
- Help plan itineraries
- Use search_attractions tool to find specific recommendations
- Use get_local_tips to share insider knowledge

Always ask about preferences first before recommending.`

const safetyGuideCharter = `You are a safety and security expert for Lagos tourism.

Your role:
- Assess safety of locations and neighborhoods
- Provide security best practices for travelers
- Check current safety status using check_safety_status tool
- Give practical safety advice based on time of day and location
- Provide emergency contacts and resources
- Never minimize real safety concerns - always prioritize tourist safety

Format safety info clearly and actionably.`

const bookingAssistantCharter = `You are a professional booking coordinator for Lagos experiences.

Your role:
- Search for hotels matching tourist needs
- Help make reservation decisions
- Set booking reminders and confirmations
- Use search_hotels tool to find accommodations
- Use make_booking_reminder to confirm bookings
- Provide clear booking details and cancellation policies
- Track all bookings in tourist profile

Always confirm preferences and dates before searching.`

// NewTourismAdvisor builds the attractions-and-culture persona. Its
// roster is restricted to search_attractions and get_local_tips.
func NewTourismAdvisor(m model.Model, ds *tool.Dataset, optFns ...func(o *ModelAdapterOptions)) *ModelAdapter {
	return NewModelAdapter(
		"TourismAdvisor",
		"Expert on Lagos tourism attractions, restaurants, shopping, culture, and entertainment",
		NewStaticCharter(tourismAdvisorCharter),
		m,
		[]tool.Tool{
			tool.NewSearchAttractionsTool(ds),
			tool.NewGetLocalTipsTool(ds),
		},
		optFns...,
	)
}

// NewSafetyGuide builds the safety persona. Its roster is restricted to
// check_safety_status.
func NewSafetyGuide(m model.Model, ds *tool.Dataset, optFns ...func(o *ModelAdapterOptions)) *ModelAdapter {
	return NewModelAdapter(
		"SafetyGuide",
		"Provides safety information, security tips, and emergency guidance for Lagos",
		NewStaticCharter(safetyGuideCharter),
		m,
		[]tool.Tool{
			tool.NewCheckSafetyStatusTool(ds),
		},
		optFns...,
	)
}

// NewBookingAssistant builds the bookings persona. Its roster is
// restricted to search_hotels and make_booking_reminder.
func NewBookingAssistant(m model.Model, ds *tool.Dataset, optFns ...func(o *ModelAdapterOptions)) *ModelAdapter {
	return NewModelAdapter(
		"BookingAssistant",
		"Handles hotel bookings, reservations, and activity bookings",
		NewStaticCharter(bookingAssistantCharter),
		m,
		[]tool.Tool{
			tool.NewSearchHotelsTool(ds),
			tool.NewMakeBookingReminderTool(),
		},
		optFns...,
	)
}

// DefaultAdapters returns all three personas sharing one model and
// dataset, in the order the orchestrator merges contributions.
func DefaultAdapters(m model.Model, ds *tool.Dataset) []Adapter {
	return []Adapter{
		NewTourismAdvisor(m, ds),
		NewSafetyGuide(m, ds),
		NewBookingAssistant(m, ds),
	}
}
