package core

import "strings"

// Budget is the closed price-range classification used across preference
// tracking and capability lookups.
type Budget string

const (
	// BudgetEconomy is the lowest price tier (wire value "budget").
	BudgetEconomy Budget = "budget"
	// BudgetModerate is the default mid tier.
	BudgetModerate Budget = "moderate"
	// BudgetLuxury is the top tier.
	BudgetLuxury Budget = "luxury"
)

// Valid reports whether b is one of the defined tiers.
func (b Budget) Valid() bool {
	switch b {
	case BudgetEconomy, BudgetModerate, BudgetLuxury:
		return true
	}
	return false
}

// ParseBudget normalizes a free-form string to a Budget tier. The boolean is
// false when the input names no known tier.
func ParseBudget(s string) (Budget, bool) {
	b := Budget(strings.ToLower(strings.TrimSpace(s)))
	if b.Valid() {
		return b, true
	}
	return "", false
}

// Preferences is the fixed-shape preference record of a Tourist Profile.
// Every field has a zero-value default except Budget which defaults to
// BudgetModerate (see DefaultPreferences).
type Preferences struct {
	Budget              Budget   `json:"budget"`
	Interests           []string `json:"interests"`
	DurationDays        int      `json:"duration"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	MobilityConcerns    []string `json:"mobility_concerns"`
}

// DefaultPreferences returns the preference record assigned at first contact.
func DefaultPreferences() Preferences {
	return Preferences{
		Budget:              BudgetModerate,
		Interests:           []string{},
		DietaryRestrictions: []string{},
		MobilityConcerns:    []string{},
	}
}

// Clone returns a deep copy safe for independent mutation.
func (p Preferences) Clone() Preferences {
	c := p
	c.Interests = append([]string(nil), p.Interests...)
	c.DietaryRestrictions = append([]string(nil), p.DietaryRestrictions...)
	c.MobilityConcerns = append([]string(nil), p.MobilityConcerns...)
	return c
}

// PreferencesDelta is a partial preference update. Nil fields are left
// untouched by the merge; non-nil fields replace the current value wholesale.
type PreferencesDelta struct {
	Budget              *Budget
	Interests           []string
	DurationDays        *int
	DietaryRestrictions []string
	MobilityConcerns    []string
}

// IsZero reports whether the delta carries no changes.
func (d PreferencesDelta) IsZero() bool {
	return d.Budget == nil && d.Interests == nil && d.DurationDays == nil &&
		d.DietaryRestrictions == nil && d.MobilityConcerns == nil
}

// merge applies the delta onto prefs, replacing only the supplied fields.
func (d PreferencesDelta) merge(prefs *Preferences) {
	if d.Budget != nil {
		prefs.Budget = *d.Budget
	}
	if d.Interests != nil {
		prefs.Interests = append([]string(nil), d.Interests...)
	}
	if d.DurationDays != nil {
		prefs.DurationDays = *d.DurationDays
	}
	if d.DietaryRestrictions != nil {
		prefs.DietaryRestrictions = append([]string(nil), d.DietaryRestrictions...)
	}
	if d.MobilityConcerns != nil {
		prefs.MobilityConcerns = append([]string(nil), d.MobilityConcerns...)
	}
}
