package orchestrator

import (
	"fmt"
	"strings"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/delegate"
)

// compose assembles the final reply narrative: welcome on first
// contact, the merged delegate contributions in registration order, a
// call to action, emergency info when the turn was safety-relevant and
// an apology when any delegate dropped out.
func (o *Orchestrator) compose(
	projection core.ContextProjection,
	routed []string,
	contributions []delegate.Contribution,
	failed []string,
) string {
	var b strings.Builder

	if projection.FirstContact() {
		fmt.Fprintf(&b,
			"Welcome to Lagos, %s! I'm your Detty-December guide - here to help you "+
				"explore the city safely and affordably. Tell me about your interests, "+
				"budget and how long you're staying.",
			projection.UserID,
		)
	}

	for _, c := range contributions {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(c.Text))
	}

	if len(contributions) > 0 {
		b.WriteString("\n\nNext steps: let me know which option you'd like to pursue and I can check details or set a booking reminder.")
	}

	if containsName(routed, "SafetyGuide") && o.emergencyInfo != "" {
		b.WriteString("\n\n")
		b.WriteString(o.emergencyInfo)
	}

	if len(failed) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Apologies - part of my team couldn't respond just now. Please try again or rephrase your request.")
	}

	if b.Len() == 0 {
		b.WriteString("Apologies - I couldn't put together an answer just now. Please try again or rephrase your request.")
	}

	return b.String()
}

func containsName(names []string, target string) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}
	return false
}
