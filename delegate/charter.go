package delegate

import (
	"fmt"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/internal/util"
)

// Charter is the instruction text governing a persona. It is either a
// static template or a provider computing the text per turn from the
// profile projection.
type Charter struct {
	static   string
	provider func(projection core.ContextProjection) (string, error)
}

// NewStaticCharter wraps fixed instruction text. The text may contain
// {{...}} template markers rendered against the projection at invoke
// time ({{.UserID}}, {{.Budget}}, {{.Interests}}, {{.Duration}}).
func NewStaticCharter(text string) Charter {
	return Charter{static: text}
}

// NewCharterProvider wraps a function computing the instruction text
// from the current profile projection.
func NewCharterProvider(fn func(projection core.ContextProjection) (string, error)) Charter {
	return Charter{provider: fn}
}

// Render resolves the charter for the current turn.
func (c Charter) Render(projection core.ContextProjection) (string, error) {
	if c.provider != nil {
		text, err := c.provider(projection)
		if err != nil {
			return "", fmt.Errorf("charter provider: %w", err)
		}
		return text, nil
	}

	prefs := projection.Preferences
	text, err := util.RenderTemplate(c.static, map[string]any{
		"UserID":    projection.UserID,
		"Budget":    string(prefs.Budget),
		"Interests": prefs.Interests,
		"Duration":  prefs.DurationDays,
	})
	if err != nil {
		return "", fmt.Errorf("render charter: %w", err)
	}
	return text, nil
}

// IsZero reports whether the charter carries no instruction source.
func (c Charter) IsZero() bool { return c.static == "" && c.provider == nil }
