package tourmesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/profile"
)

func TestNewDefaultAdvisor(t *testing.T) {
	mock := model.NewMockModel("test-model", "mock")
	advisor := NewDefaultAdvisor(mock)

	assert.Equal(t, []string{"TourismAdvisor", "SafetyGuide", "BookingAssistant"}, advisor.Adapters())
	require.NotNil(t, advisor.Store())
	require.NotNil(t, advisor.Dataset())
}

func TestAdvisorTurnEndToEnd(t *testing.T) {
	mock := model.NewMockModel("test-model", "mock")
	mock.Script(model.Response{Content: "Lekki Conservation Centre is a great start."})

	advisor := NewDefaultAdvisor(mock)

	reply, err := advisor.Turn(context.Background(), "tourist-1", "What attractions should I visit?")
	require.NoError(t, err)

	// First contact adds the welcome greeting ahead of the contribution.
	assert.Contains(t, reply.Text, "Welcome to Lagos")
	assert.Contains(t, reply.Text, "Lekki Conservation Centre")
	assert.Empty(t, reply.Failed)

	// The turn is recorded in chat history, user message first.
	records, err := advisor.Store().Snapshot("tourist-1")
	require.NoError(t, err)
	history := records.Recent[core.CategoryChatHistory]
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Data["role"])
	assert.Equal(t, "agent", history[1].Data["role"])
}

func TestAdvisorCustomStore(t *testing.T) {
	mock := model.NewMockModel("test-model", "mock")

	store := newTrackingStore()
	advisor := NewDefaultAdvisor(mock, func(o *Options) {
		o.Store = store
	})

	assert.Same(t, store, advisor.Store())
}

type trackingStore struct {
	core.ProfileStore
}

func newTrackingStore() *trackingStore {
	return &trackingStore{ProfileStore: profile.NewInMemoryStore()}
}
