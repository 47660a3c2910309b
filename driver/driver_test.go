package driver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/orchestrator"
	"github.com/hupe1980/tourmesh/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine is a canned TurnEngine for state machine tests.
type stubEngine struct {
	store   core.ProfileStore
	reply   string
	err     error
	panics  bool
	turns   int
	lastUtt string
}

func (s *stubEngine) Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error) {
	s.turns++
	s.lastUtt = utterance
	if s.panics {
		panic("engine exploded")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &orchestrator.Reply{TurnID: "turn", Text: s.reply}, nil
}

func (s *stubEngine) Store() core.ProfileStore { return s.store }

// recordingTransport captures all outbound messages.
type recordingTransport struct {
	inputs  []string
	sent    []string
	notices []string
}

func (t *recordingTransport) NextInput(ctx context.Context) (string, error) {
	if len(t.inputs) == 0 {
		return "quit", nil
	}
	next := t.inputs[0]
	t.inputs = t.inputs[1:]
	return next, nil
}

func (t *recordingTransport) Send(text string) error {
	t.sent = append(t.sent, text)
	return nil
}

func (t *recordingTransport) Notice(text string) error {
	t.notices = append(t.notices, text)
	return nil
}

func newStubEngine(reply string) *stubEngine {
	return &stubEngine{store: profile.NewInMemoryStore(), reply: reply}
}

func TestStepProcessesTurn(t *testing.T) {
	engine := newStubEngine("Visit Lekki Beach.")
	transport := &recordingTransport{}
	d := New(engine, transport, "traveler")

	done := d.Step(context.Background(), "what should I see?")

	assert.False(t, done)
	assert.Equal(t, StateAwaitingInput, d.State())
	assert.Equal(t, 1, engine.turns)
	assert.Equal(t, []string{"Visit Lekki Beach."}, transport.sent)
}

func TestStepEmptyInputIsNoOp(t *testing.T) {
	engine := newStubEngine("x")
	d := New(engine, &recordingTransport{}, "traveler")

	done := d.Step(context.Background(), "   ")

	assert.False(t, done)
	assert.Zero(t, engine.turns)
	assert.Equal(t, StateAwaitingInput, d.State())
}

func TestStepQuitCaseInsensitiveTrimmed(t *testing.T) {
	for _, input := range []string{"quit", "QUIT", "  Quit  "} {
		engine := newStubEngine("x")
		transport := &recordingTransport{}
		d := New(engine, transport, "traveler")

		done := d.Step(context.Background(), input)

		assert.True(t, done, input)
		assert.Equal(t, StateTerminated, d.State(), input)
		assert.Zero(t, engine.turns, input)
		require.NotEmpty(t, transport.notices)
		assert.Contains(t, transport.notices[0], "Stay safe")
	}
}

func TestStepClearDiscardsProfile(t *testing.T) {
	engine := newStubEngine("x")
	luxury := core.BudgetLuxury
	require.NoError(t, engine.store.UpdatePreferences("traveler", core.PreferencesDelta{Budget: &luxury}))

	transport := &recordingTransport{}
	d := New(engine, transport, "traveler")

	done := d.Step(context.Background(), "  CLEAR ")

	assert.False(t, done)
	assert.Equal(t, StateAwaitingInput, d.State())
	require.NotEmpty(t, transport.notices)
	assert.Contains(t, transport.notices[0], "start fresh")

	p, err := engine.store.GetOrCreate("traveler")
	require.NoError(t, err)
	assert.Equal(t, core.BudgetModerate, p.GetPreferences().Budget)
}

func TestStepTurnErrorKeepsSessionAlive(t *testing.T) {
	engine := newStubEngine("")
	engine.err = assert.AnError
	transport := &recordingTransport{}
	d := New(engine, transport, "traveler")

	done := d.Step(context.Background(), "plan my trip")

	assert.False(t, done)
	assert.Equal(t, StateAwaitingInput, d.State())
	require.NotEmpty(t, transport.notices)
	assert.Contains(t, transport.notices[0], "try again or rephrase")
	assert.Empty(t, transport.sent)
}

func TestStepRecoversEnginePanic(t *testing.T) {
	engine := newStubEngine("")
	engine.panics = true
	transport := &recordingTransport{}
	d := New(engine, transport, "traveler")

	done := d.Step(context.Background(), "plan my trip")

	assert.False(t, done)
	assert.Equal(t, StateAwaitingInput, d.State())
	require.NotEmpty(t, transport.notices)
	assert.Contains(t, transport.notices[0], "try again")
}

func TestRunSequentialTurnsUntilQuit(t *testing.T) {
	engine := newStubEngine("sure thing")
	transport := &recordingTransport{
		inputs: []string{"first question", "", "second question", "quit"},
	}
	d := New(engine, transport, "traveler")

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, StateTerminated, d.State())
	assert.Equal(t, 2, engine.turns)
	assert.Equal(t, "second question", engine.lastUtt)
	assert.Len(t, transport.sent, 2)
}

func TestRunEndsOnContextCancel(t *testing.T) {
	engine := newStubEngine("x")
	transport := &recordingTransport{inputs: []string{"hello"}}
	d := New(engine, transport, "traveler")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateTerminated, d.State())
}

func TestConsoleTransportRoundTrip(t *testing.T) {
	in := strings.NewReader("hello\n")
	var out bytes.Buffer

	transport := NewConsoleTransport(in, &out, "you: ")

	input, err := transport.NextInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", input)

	require.NoError(t, transport.Send("welcome to Lagos"))
	assert.Contains(t, out.String(), "Tourism Advisor:")
	assert.Contains(t, out.String(), "welcome to Lagos")

	// Input exhausted.
	_, err = transport.NextInput(context.Background())
	assert.Error(t, err)
}
