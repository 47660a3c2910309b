package delegate

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/model"
)

// runToolCall executes one requested tool call and packages the outcome
// as a tool message for the next generation. It never panics; recovered
// panics and tool errors both come back as structured error payloads so
// the model can react instead of the turn dying.
func (a *ModelAdapter) runToolCall(turnCtx *core.TurnContext, call model.ToolCall) model.Message {
	toolCtx := core.NewToolContext(turnCtx, call.ID)

	start := time.Now()
	var (
		result any
		err    error
	)
	func() { // panic safety
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
				turnCtx.LogError("delegate.tool.panic", "delegate", a.name, "tool", call.Name, "recover", r)
			}
		}()
		result, err = a.executeTool(toolCtx, call)
	}()

	turnCtx.LogInfo(
		"delegate.tool.executed",
		"delegate", a.name,
		"tool", call.Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err != nil,
	)

	return model.Message{
		Role:       model.RoleTool,
		Name:       call.Name,
		ToolCallID: call.ID,
		Content:    encodeToolResult(result, err),
	}
}

// executeTool centralizes tool lookup, argument decoding and execution
// against the persona's restricted roster.
func (a *ModelAdapter) executeTool(toolCtx *core.ToolContext, call model.ToolCall) (any, error) {
	impl, ok := a.tools[call.Name]
	if !ok {
		return nil, fmt.Errorf("tool %s not available to %s", call.Name, a.name)
	}

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return nil, fmt.Errorf("failed to unmarshal args: %w", err)
		}
	}

	return impl.Call(toolCtx, args)
}

// encodeToolResult renders the tool outcome as JSON for the model.
func encodeToolResult(result any, err error) string {
	if err != nil {
		payload, merr := json.Marshal(map[string]any{
			"status":  "error",
			"message": err.Error(),
		})
		if merr != nil {
			return fmt.Sprintf(`{"status":"error","message":%q}`, err.Error())
		}
		return string(payload)
	}

	payload, merr := json.Marshal(result)
	if merr != nil {
		return fmt.Sprintf(`{"status":"error","message":%q}`, merr.Error())
	}
	return string(payload)
}

// panicError converts a recovered panic value to an error without
// pulling external dependencies.
func panicError(r any) error { return &panicErr{val: r, stack: debug.Stack()} }

type panicErr struct {
	val   any
	stack []byte
}

func (p *panicErr) Error() string { return fmt.Sprintf("panic recovered: %v", p.val) }
