package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModelCannedResponse(t *testing.T) {
	m := NewMockModel("mock-1", "mock")
	m.AddResponse("what should I see?", "Visit the Nike Art Gallery.")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "what should I see?"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Visit the Nike Art Gallery.", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.False(t, resp.HasToolCalls())
}

func TestMockModelDefaultResponse(t *testing.T) {
	m := NewMockModel("mock-1", "mock")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello", resp.Content)
}

func TestMockModelScriptPrecedence(t *testing.T) {
	m := NewMockModel("mock-1", "mock")
	m.AddResponse("hi", "canned")
	m.Script(
		Response{ToolCalls: []ToolCall{{ID: "call-1", Name: "search_attractions", Arguments: `{"interest":"art"}`}}},
		Response{Content: "done"},
	)

	first, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	require.True(t, first.HasToolCalls())
	assert.Equal(t, "tool_calls", first.FinishReason)
	assert.Equal(t, "search_attractions", first.ToolCalls[0].Name)

	second, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "done", second.Content)

	// Script exhausted, canned lookup resumes.
	third, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "canned", third.Content)
}

func TestMockModelFailWith(t *testing.T) {
	m := NewMockModel("mock-1", "mock")
	m.FailWith(errors.New("provider down"))

	_, err := m.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	assert.EqualError(t, err, "provider down")
}

func TestMockModelRecordsRequests(t *testing.T) {
	m := NewMockModel("mock-1", "mock")

	_, err := m.Generate(context.Background(), Request{Charter: "be helpful"})
	require.NoError(t, err)

	requests := m.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "be helpful", requests[0].Charter)
}

func TestMockModelHonorsCancelledContext(t *testing.T) {
	m := NewMockModel("mock-1", "mock")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
