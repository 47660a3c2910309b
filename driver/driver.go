package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/orchestrator"
)

// State is the lifecycle state of a conversation session.
type State int

const (
	StateAwaitingInput State = iota
	StateProcessing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "AWAITING_INPUT"
	case StateProcessing:
		return "PROCESSING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TurnEngine is the slice of the orchestrator the driver needs. It is
// an interface so session tests can run against a stub.
type TurnEngine interface {
	Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error)
	Store() core.ProfileStore
}

// Transport carries messages between the driver and the user.
type Transport interface {
	// NextInput blocks until the user submits a line, io.EOF at end of
	// input.
	NextInput(ctx context.Context) (string, error)

	// Send delivers the composed reply for a turn.
	Send(text string) error

	// Notice delivers an out-of-band message (greetings, errors,
	// session control confirmations).
	Notice(text string) error
}

// Options configures a Driver.
type Options struct {
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Driver owns one user's conversation session. Turns are strictly
// sequential: the next input is not processed until the previous turn,
// including its profile writes, has completed.
type Driver struct {
	engine    TurnEngine
	transport Transport
	userID    string
	logger    *logging.AdvisorLogger

	mu    sync.RWMutex
	state State
}

// New constructs a Driver for the given user.
func New(engine TurnEngine, transport Transport, userID string, optFns ...func(o *Options)) *Driver {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoOpLogger()
	}

	return &Driver{
		engine:    engine,
		transport: transport,
		userID:    userID,
		logger:    logging.NewAdvisorLogger(opts.Logger).WithComponent("driver").WithUser(userID),
		state:     StateAwaitingInput,
	}
}

// State returns the current session state.
func (d *Driver) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// Run drives the session until quit, end of input or context
// cancellation.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("session.started")

	if err := d.transport.Notice(fmt.Sprintf(
		"Welcome, %s! I'm your Detty-December guide for Lagos.\n"+
			"Tell me about your trip - interests, budget, concerns - and I'll help plan it!\n"+
			"Type 'quit' to exit, 'clear' to start a new session.",
		d.userID,
	)); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			d.setState(StateTerminated)
			return err
		}

		input, err := d.transport.NextInput(ctx)
		if err != nil {
			d.setState(StateTerminated)
			if errors.Is(err, io.EOF) {
				d.logger.Info("session.input_closed")
				return nil
			}
			return err
		}

		done := d.Step(ctx, input)
		if done {
			return nil
		}
	}
}

// Step processes one raw input line and reports whether the session
// terminated. Turn-level failures are caught here: the user gets an
// apologetic retry prompt and the state returns to awaiting input.
func (d *Driver) Step(ctx context.Context, raw string) (done bool) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return false // no-op, not a turn
	}

	switch strings.ToLower(input) {
	case "quit":
		d.logger.Info("session.quit")
		d.setState(StateTerminated)
		_ = d.transport.Notice("Thank you for using the Detty-December Advisor! Enjoy Lagos! Stay safe!")
		return true
	case "clear":
		if err := d.engine.Store().Clear(d.userID); err != nil {
			d.logger.Error("session.clear.error", "error", err.Error())
			_ = d.transport.Notice("Could not clear the session. Please try again.")
			return false
		}
		d.logger.Info("session.cleared")
		_ = d.transport.Notice("Session cleared. Let's start fresh!")
		return false
	}

	d.setState(StateProcessing)
	defer d.setState(StateAwaitingInput)

	reply, err := d.runTurn(ctx, input)
	if err != nil {
		d.logger.Error("turn.error", "error", err.Error())
		_ = d.transport.Notice("Error: " + err.Error() + "\nPlease try again or rephrase your request.")
		return false
	}

	if err := d.transport.Send(reply.Text); err != nil {
		d.logger.Error("turn.send.error", "error", err.Error())
	}
	return false
}

// runTurn wraps the orchestrator call with panic recovery so no fault
// below the driver can terminate the session.
func (d *Driver) runTurn(ctx context.Context, utterance string) (reply *orchestrator.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("turn.panic", "recover", r)
			reply = nil
			err = fmt.Errorf("internal failure: %v", r)
		}
	}()

	return d.engine.Turn(ctx, d.userID, utterance)
}
