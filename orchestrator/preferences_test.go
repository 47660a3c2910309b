package orchestrator

import (
	"testing"

	"github.com/hupe1980/tourmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferPreferencesBudget(t *testing.T) {
	tests := []struct {
		utterance string
		want      core.Budget
	}{
		{"I'm on a cheap trip", core.BudgetEconomy},
		{"looking for affordable spots", core.BudgetEconomy},
		{"only 5-star luxury hotels please", core.BudgetLuxury},
		{"something mid-range works", core.BudgetModerate},
	}

	for _, tc := range tests {
		delta := InferPreferences(tc.utterance)
		require.NotNil(t, delta.Budget, tc.utterance)
		assert.Equal(t, tc.want, *delta.Budget, tc.utterance)
	}
}

func TestInferPreferencesLuxuryWinsOverBudgetMention(t *testing.T) {
	delta := InferPreferences("my budget allows for luxury")
	require.NotNil(t, delta.Budget)
	assert.Equal(t, core.BudgetLuxury, *delta.Budget)
}

func TestInferPreferencesInterestsSorted(t *testing.T) {
	delta := InferPreferences("I love nightlife, beach days and good food")
	assert.Equal(t, []string{"beach", "food", "nightlife"}, delta.Interests)
}

func TestInferPreferencesDuration(t *testing.T) {
	delta := InferPreferences("staying for 10 days in December")
	require.NotNil(t, delta.DurationDays)
	assert.Equal(t, 10, *delta.DurationDays)

	delta = InferPreferences("a 3 night stay")
	require.NotNil(t, delta.DurationDays)
	assert.Equal(t, 3, *delta.DurationDays)
}

func TestInferPreferencesNoSignals(t *testing.T) {
	delta := InferPreferences("hello!")
	assert.True(t, delta.IsZero())
}
