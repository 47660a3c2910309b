package evaluation

// Scenario is a single golden test case: a traveler utterance together with
// the behaviors a good reply is expected to show and the minimum overall
// score required to pass.
type Scenario struct {
	ID                string   `json:"id"`
	Name              string   `json:"scenario"`
	Input             string   `json:"input"`
	ExpectedBehaviors []string `json:"expected_behaviors"`
	MinScore          float64  `json:"minimum_score"`
}

// GoldenScenarios returns the 15-case golden suite covering the main traveler
// archetypes: safety-focused first-timers, budget foodies, luxury event
// seekers, groups, business travelers, emergencies, accessibility and
// dietary needs, and memory-driven follow-ups.
func GoldenScenarios() []Scenario {
	return []Scenario{
		{
			ID:    "TEST-001",
			Name:  "First-time tourist, safety-focused",
			Input: "I'm arriving in Lagos on Dec 1st for 3 days. This is my first time in Nigeria. I'm worried about safety. What areas should I stay in and avoid?",
			ExpectedBehaviors: []string{
				"Greet warmly and acknowledge safety concerns",
				"Call check_safety_status for key areas",
				"Recommend safe neighborhoods (VI, Lekki with caveats)",
				"Provide concrete safety tips",
				"Suggest budget-conscious safe hotels",
			},
			MinScore: 7.0,
		},
		{
			ID:    "TEST-002",
			Name:  "Budget traveler, foodie",
			Input: "I have ₦50,000 per day budget. I want to try authentic Lagos food. Where should I go? Any street food I should avoid?",
			ExpectedBehaviors: []string{
				"Ask clarifying questions about dietary preferences",
				"Use search_attractions for budget food spots",
				"Provide local food tips with safety context",
				"Recommend markets and street vendors with ratings",
				"Suggest affordable restaurants (<₦10k)",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-003",
			Name:  "Luxury traveler, events",
			Input: "I'm in Lagos Dec 15-25. Luxury budget. What high-end experiences and events are happening during Detty-December?",
			ExpectedBehaviors: []string{
				"Search luxury attractions and restaurants",
				"Mention Detty-December events and festivals",
				"Recommend upscale venues (Landmark, Eko Hotels, clubs)",
				"Set booking reminders for events",
				"Provide VIP concierge-level recommendations",
			},
			MinScore: 8.0,
		},
		{
			ID:    "TEST-004",
			Name:  "Group travel, logistics",
			Input: "We're 6 friends arriving together. We want an AirBnB in a safe area, good for nightlife. What's the best deal and safest way to move around at night?",
			ExpectedBehaviors: []string{
				"Search hotels/accommodations for groups",
				"Recommend safe neighborhoods (Lekki, VI, Ikoyi)",
				"Provide safe transport tips (Uber, Bolt)",
				"Group activity suggestions",
				"Set collaborative booking reminders",
			},
			MinScore: 8.0,
		},
		{
			ID:    "TEST-005",
			Name:  "Business traveler, networking",
			Input: "I'm here Dec 10-15 for startup conferences. Where's best for coworking? How do I network in Lagos tech scene? Safe places to work late?",
			ExpectedBehaviors: []string{
				"Delegate to TourismAdvisor for tech hubs",
				"Recommend VI/Lekki tech spaces",
				"Safety tips for evening activities",
				"Suggest networking venues and events",
				"Provide emergency/safety contacts for travelers",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-006",
			Name:  "Safety emergency scenario",
			Input: "I'm feeling unsafe in my current location (Surulere, late night). What should I do immediately? Where's safe?",
			ExpectedBehaviors: []string{
				"Immediate safety assessment via check_safety_status",
				"Clear emergency action steps",
				"Provide emergency contacts (police 999, ambulance 112)",
				"Recommend immediate safe transport",
				"De-escalation and reassurance",
			},
			MinScore: 9.0,
		},
		{
			ID:    "TEST-007",
			Name:  "Detty-December specific",
			Input: "What's this 'Detty-December' I keep hearing about? What should I experience?",
			ExpectedBehaviors: []string{
				"Explain Detty-December celebrations",
				"Use get_local_tips for December events",
				"Recommend street parties, festivals",
				"Beach activities and community events",
				"Cultural experiences unique to December",
			},
			MinScore: 8.0,
		},
		{
			ID:    "TEST-008",
			Name:  "Cultural explorer",
			Input: "I love history and art. What museums and cultural sites should I visit? Any local artists or galleries?",
			ExpectedBehaviors: []string{
				"Search attractions for museums (Nike Centre, etc)",
				"Provide cultural context about Lagos",
				"Local art scene recommendations",
				"Gallery opening times and locations",
				"Suggest cultural guides or tours",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-009",
			Name:  "Transportation challenge",
			Input: "What's the best way to get around Lagos? I'm nervous about driving. Uber/Bolt vs traditional transport?",
			ExpectedBehaviors: []string{
				"Use get_local_tips for transport guidance",
				"Compare safety of transport modes",
				"Cost analysis (Uber vs Bolt vs Danfo)",
				"Best routes and times to travel",
				"Safety recommendations for each option",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-010",
			Name:  "Holiday planning",
			Input: "I want to celebrate Christmas/New Year in Lagos. What's the best experience? How early should I book?",
			ExpectedBehaviors: []string{
				"Search hotels with make_booking_reminder",
				"December events recommendations",
				"New Year's party venues",
				"Set booking reminders urgently (high demand)",
				"Alternative low-cost celebrations",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-011",
			Name:  "Multi-step complex request",
			Input: "I arrive Dec 3rd, 7 days, moderate budget, love music and nightlife, but I'm solo and female. Create me an itinerary with safe venues, good hotels, and transport tips.",
			ExpectedBehaviors: []string{
				"Ask clarifying questions about preferences",
				"Coordinate all 3 sub-agents (advisor, safety, booking)",
				"Create day-by-day itinerary",
				"Emphasize safety throughout",
				"Book hotels and set reminders",
				"Female-specific safety advice",
			},
			MinScore: 8.5,
		},
		{
			ID:    "TEST-012",
			Name:  "Accessibility needs",
			Input: "I use a wheelchair. Are venues in Lagos accessible? How do I get around safely?",
			ExpectedBehaviors: []string{
				"Acknowledge accessibility concerns",
				"Assess which venues have accessibility",
				"Recommend accessible transport",
				"Suggest accessibility-friendly hotels",
				"Provide practical navigation tips",
			},
			MinScore: 8.0,
		},
		{
			ID:    "TEST-013",
			Name:  "Dietary/health concerns",
			Input: "I'm vegetarian and gluten-free. What restaurants in Lagos can accommodate this? Any health risks I should know?",
			ExpectedBehaviors: []string{
				"Search restaurant recommendations",
				"Use get_local_tips for food safety",
				"Identify vegetarian-friendly spots",
				"Health/sanitation recommendations",
				"Market shopping tips for safe food",
			},
			MinScore: 7.5,
		},
		{
			ID:    "TEST-014",
			Name:  "Budget emergency",
			Input: "I lost my wallet and card. I'm stuck in Lagos. What do I do?",
			ExpectedBehaviors: []string{
				"Immediate practical assistance",
				"Embassy/consulate contact info",
				"Money transfer options",
				"Safe places to wait/rest",
				"Police report procedures",
			},
			MinScore: 8.5,
		},
		{
			ID:    "TEST-015",
			Name:  "Follow-up personalization",
			Input: "Remember I love jollof rice? Can you recommend the best places to try different regional variations?",
			ExpectedBehaviors: []string{
				"Recall from memory (if available)",
				"Search attractions for restaurants",
				"Provide regional jollof rice guide",
				"Competition/festival information",
				"Update preference memory",
			},
			MinScore: 7.0,
		},
	}
}
