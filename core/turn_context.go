package core

import (
	"context"
	"fmt"

	"github.com/hupe1980/tourmesh/logging"
)

// TurnContext carries the execution scope of a single conversational turn:
// the ambient cancellation context, identifiers, the raw utterance, the
// bounded profile projection and the backing ProfileStore. Delegates receive
// the projection only; writes flow back through the store held here.
type TurnContext struct {
	Context    context.Context
	UserID     string
	TurnID     string
	Utterance  string
	Projection ContextProjection
	Store      ProfileStore

	*loggerAdapter
}

// NewTurnContext constructs a TurnContext for one in-flight turn.
func NewTurnContext(
	ctx context.Context,
	userID, turnID, utterance string,
	projection ContextProjection,
	store ProfileStore,
	logger logging.Logger,
) *TurnContext {
	return &TurnContext{
		Context:       ctx,
		UserID:        userID,
		TurnID:        turnID,
		Utterance:     utterance,
		Projection:    projection,
		Store:         store,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (tc *TurnContext) Done() <-chan struct{} { return tc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (tc *TurnContext) Err() error { return tc.Context.Err() }

// AppendMemory writes a record into the profile's memory bank.
func (tc *TurnContext) AppendMemory(category MemoryCategory, record MemoryRecord) error {
	if tc.Store == nil {
		return fmt.Errorf("profile store not configured")
	}
	return tc.Store.AppendMemory(tc.UserID, category, record)
}
