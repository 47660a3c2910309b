package core

import (
	"context"
	"fmt"

	"github.com/hupe1980/tourmesh/logging"
)

// ToolContext provides a constrained, auditable surface for capability module
// implementations invoked by a delegate. It exposes the turn's identity and
// projection plus the one write path tools may use (memory appends); direct
// profile access stays behind the store.
type ToolContext struct {
	turnCtx        *TurnContext
	functionCallID string

	*loggerAdapter
}

// NewToolContext constructs a tool context bound to a parent TurnContext and
// unique functionCallID.
func NewToolContext(turnCtx *TurnContext, functionCallID string) *ToolContext {
	return &ToolContext{
		turnCtx:        turnCtx,
		functionCallID: functionCallID,
		loggerAdapter:  newLoggerAdapter(turnCtx.Logger()),
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.turnCtx.Context }

// UserID returns the user id of the session the tool is acting for.
func (tc *ToolContext) UserID() string { return tc.turnCtx.UserID }

// TurnID returns the id of the turn that triggered the tool call.
func (tc *ToolContext) TurnID() string { return tc.turnCtx.TurnID }

// FunctionCallID returns the function call id correlating the model request
// with this execution.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.loggerAdapter.Logger() }

// Projection returns the bounded profile view for this turn.
func (tc *ToolContext) Projection() ContextProjection { return tc.turnCtx.Projection }

// AppendMemory writes a record into the session's memory bank. Unknown
// categories are dropped by the store without error.
func (tc *ToolContext) AppendMemory(category MemoryCategory, record MemoryRecord) error {
	return tc.turnCtx.AppendMemory(category, record)
}

// Validate performs a structural sanity check of the context.
func (tc *ToolContext) Validate() error {
	if tc.turnCtx == nil || tc.turnCtx.UserID == "" || tc.functionCallID == "" {
		return fmt.Errorf("invalid ToolContext")
	}
	return nil
}
