package delegate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/internal/testutil"
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/profile"
	"github.com/hupe1980/tourmesh/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTurnContext(t *testing.T, store core.ProfileStore) *core.TurnContext {
	t.Helper()

	var projection core.ContextProjection
	if store != nil {
		var err error
		projection, err = store.Snapshot("traveler")
		require.NoError(t, err)
	}

	return core.NewTurnContext(context.Background(), "traveler", "turn-1", "plan my trip", projection, store, nil)
}

func TestModelAdapterPlainAnswer(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	m.Script(model.Response{Content: "Lekki Beach is a great start."})

	adapter := NewTourismAdvisor(m, tool.DefaultDataset())

	contribution, err := adapter.Invoke(newTestTurnContext(t, nil), "what beaches should I see?")
	require.NoError(t, err)

	assert.Equal(t, "TourismAdvisor", contribution.Delegate)
	assert.Equal(t, "Lekki Beach is a great start.", contribution.Text)
}

func TestModelAdapterInjectsCharterAndProjection(t *testing.T) {
	store := profile.NewInMemoryStore()
	luxury := core.BudgetLuxury
	require.NoError(t, store.UpdatePreferences("traveler", core.PreferencesDelta{Budget: &luxury}))

	m := model.NewMockModel("mock", "mock")
	m.Script(model.Response{Content: "ok"})

	adapter := NewTourismAdvisor(m, tool.DefaultDataset())
	_, err := adapter.Invoke(newTestTurnContext(t, store), "hi")
	require.NoError(t, err)

	requests := m.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Charter, "Lagos tourism guide")
	assert.Contains(t, requests[0].Charter, "Current Tourist Profile")
	assert.Contains(t, requests[0].Charter, "luxury")
}

func TestModelAdapterSeesRecentActivity(t *testing.T) {
	built := testutil.NewProfileBuilder("traveler").
		Budget(core.BudgetEconomy).
		Interests("food").
		Visited("Nike Centre").
		Chat("user", "any good markets?").
		Build()

	m := model.NewMockModel("mock", "mock")
	m.Script(model.Response{Content: "ok"})

	adapter := NewTourismAdvisor(m, tool.DefaultDataset())
	turnCtx := core.NewTurnContext(context.Background(), "traveler", "turn-1", "hi", built.Snapshot(), nil, nil)

	_, err := adapter.Invoke(turnCtx, "hi")
	require.NoError(t, err)

	charter := m.Requests()[0].Charter
	assert.Contains(t, charter, "visited_places")
	assert.Contains(t, charter, "Nike Centre")
	assert.Contains(t, charter, "food")
}

func TestModelAdapterToolLoop(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	m.Script(
		model.Response{ToolCalls: []model.ToolCall{{
			ID:        "call-1",
			Name:      "search_attractions",
			Arguments: `{"location":"Lekki","category":"beach","budget":"budget"}`,
		}}},
		model.Response{Content: "Try Lekki Beach or Elegushi Beach."},
	)

	adapter := NewTourismAdvisor(m, tool.DefaultDataset())

	contribution, err := adapter.Invoke(newTestTurnContext(t, nil), "beaches?")
	require.NoError(t, err)
	assert.Equal(t, "Try Lekki Beach or Elegushi Beach.", contribution.Text)

	requests := m.Requests()
	require.Len(t, requests, 2)

	// Second request carries the assistant tool call and its result.
	messages := requests[1].Messages
	require.Len(t, messages, 3)
	assert.Equal(t, model.RoleAssistant, messages[1].Role)
	require.Equal(t, model.RoleTool, messages[2].Role)
	assert.Equal(t, "call-1", messages[2].ToolCallID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(messages[2].Content), &payload))
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, float64(2), payload["count"])
}

func TestModelAdapterRejectsToolOutsideRoster(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	m.Script(
		model.Response{ToolCalls: []model.ToolCall{{
			ID:        "call-1",
			Name:      "search_hotels", // not on the TourismAdvisor roster
			Arguments: `{}`,
		}}},
		model.Response{Content: "sorry, I cannot book hotels"},
	)

	adapter := NewTourismAdvisor(m, tool.DefaultDataset())

	_, err := adapter.Invoke(newTestTurnContext(t, nil), "book me a hotel")
	require.NoError(t, err)

	messages := m.Requests()[1].Messages
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(messages[2].Content), &payload))
	assert.Equal(t, "error", payload["status"])
	assert.Contains(t, payload["message"], "not available")
}

func TestModelAdapterRecoversFromToolPanic(t *testing.T) {
	panicking := tool.NewFunctionTool(
		"explode",
		"Panics on call",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			panic("boom")
		},
	)

	m := model.NewMockModel("mock", "mock")
	m.Script(
		model.Response{ToolCalls: []model.ToolCall{{ID: "call-1", Name: "explode", Arguments: `{}`}}},
		model.Response{Content: "that capability is unavailable right now"},
	)

	adapter := NewModelAdapter("Fragile", "test persona", NewStaticCharter("be careful"), m, []tool.Tool{panicking})

	contribution, err := adapter.Invoke(newTestTurnContext(t, nil), "go")
	require.NoError(t, err)
	assert.Equal(t, "that capability is unavailable right now", contribution.Text)

	messages := m.Requests()[1].Messages
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(messages[2].Content), &payload))
	assert.Equal(t, "error", payload["status"])
	assert.Contains(t, payload["message"], "panic recovered")
}

func TestModelAdapterIterationLimit(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	for i := 0; i < 10; i++ {
		m.Script(model.Response{ToolCalls: []model.ToolCall{{
			ID:        "call",
			Name:      "get_local_tips",
			Arguments: `{"category":"food"}`,
		}}})
	}

	adapter := NewTourismAdvisor(m, tool.DefaultDataset(), func(o *ModelAdapterOptions) {
		o.MaxToolIterations = 2
	})

	_, err := adapter.Invoke(newTestTurnContext(t, nil), "loop forever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iteration limit")
}

func TestModelAdapterPropagatesGenerateError(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	m.FailWith(errors.New("rate limited"))

	adapter := NewSafetyGuide(m, tool.DefaultDataset())

	_, err := adapter.Invoke(newTestTurnContext(t, nil), "is VI safe?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SafetyGuide")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestPersonaRosters(t *testing.T) {
	m := model.NewMockModel("mock", "mock")
	ds := tool.DefaultDataset()

	assert.Equal(t, []string{"search_attractions", "get_local_tips"}, NewTourismAdvisor(m, ds).Tools())
	assert.Equal(t, []string{"check_safety_status"}, NewSafetyGuide(m, ds).Tools())
	assert.Equal(t, []string{"search_hotels", "make_booking_reminder"}, NewBookingAssistant(m, ds).Tools())
}

func TestCharterProvider(t *testing.T) {
	charter := NewCharterProvider(func(projection core.ContextProjection) (string, error) {
		return "guide for " + projection.UserID, nil
	})

	text, err := charter.Render(core.ContextProjection{UserID: "traveler"})
	require.NoError(t, err)
	assert.Equal(t, "guide for traveler", text)
}

func TestStaticCharterTemplate(t *testing.T) {
	charter := NewStaticCharter("Plan for {{.UserID}} on a {{.Budget}} budget.")

	text, err := charter.Render(core.ContextProjection{
		UserID:      "traveler",
		Preferences: core.Preferences{Budget: core.BudgetEconomy},
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan for traveler on a budget budget.", text)
}
