package delegate

import (
	"fmt"
	"time"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/tool"
)

// ModelAdapterOptions configures a model-backed persona.
type ModelAdapterOptions struct {
	// MaxToolIterations bounds the generate -> tool -> generate loop so
	// a misbehaving model cannot spin a turn forever.
	MaxToolIterations int
}

// ModelAdapter is an Adapter backed by an LLM. Each invocation renders
// the charter, injects the profile projection, and runs a bounded tool
// call loop against the persona's restricted capability roster.
type ModelAdapter struct {
	name        string
	description string
	charter     Charter
	model       model.Model
	tools       map[string]tool.Tool
	order       []string
	opts        ModelAdapterOptions
}

// NewModelAdapter constructs a persona from a charter, a model and a
// restricted tool roster. Tools keep their given order in the
// declarations sent to the model.
func NewModelAdapter(
	name, description string,
	charter Charter,
	m model.Model,
	tools []tool.Tool,
	optFns ...func(o *ModelAdapterOptions),
) *ModelAdapter {
	opts := ModelAdapterOptions{MaxToolIterations: 4}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := make(map[string]tool.Tool, len(tools))
	order := make([]string, 0, len(tools))
	for _, t := range tools {
		if _, exists := registry[t.Name()]; exists {
			continue
		}
		registry[t.Name()] = t
		order = append(order, t.Name())
	}

	return &ModelAdapter{
		name:        name,
		description: description,
		charter:     charter,
		model:       m,
		tools:       registry,
		order:       order,
		opts:        opts,
	}
}

// Name implements Adapter.
func (a *ModelAdapter) Name() string { return a.name }

// Description implements Adapter.
func (a *ModelAdapter) Description() string { return a.description }

// Tools returns the persona's capability roster in declaration order.
func (a *ModelAdapter) Tools() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Invoke implements Adapter. It drives the model through tool calls
// until a plain text answer arrives or the iteration bound is hit.
func (a *ModelAdapter) Invoke(turnCtx *core.TurnContext, task string) (Contribution, error) {
	charter, err := a.charter.Render(turnCtx.Projection)
	if err != nil {
		return Contribution{}, fmt.Errorf("delegate %s: %w", a.name, err)
	}

	req := model.Request{
		Charter:  charter + "\n\n" + turnCtx.Projection.Render(),
		Messages: []model.Message{{Role: model.RoleUser, Content: task}},
		Tools:    a.definitions(),
	}

	for iteration := 0; iteration <= a.opts.MaxToolIterations; iteration++ {
		if err := turnCtx.Err(); err != nil {
			return Contribution{}, fmt.Errorf("delegate %s: %w", a.name, err)
		}

		start := time.Now()
		resp, err := a.model.Generate(turnCtx.Context, req)
		if err != nil {
			turnCtx.LogError("delegate.generate.error", "delegate", a.name, "error", err.Error())
			return Contribution{}, fmt.Errorf("delegate %s: %w", a.name, err)
		}
		turnCtx.LogDebug(
			"delegate.generate",
			"delegate", a.name,
			"iteration", iteration,
			"tool_calls", len(resp.ToolCalls),
			"duration_ms", time.Since(start).Milliseconds(),
		)

		if !resp.HasToolCalls() {
			return Contribution{Delegate: a.name, Text: resp.Content}, nil
		}

		req.Messages = append(req.Messages, model.Message{
			Role:      model.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			req.Messages = append(req.Messages, a.runToolCall(turnCtx, call))
		}
	}

	return Contribution{}, fmt.Errorf("delegate %s: tool iteration limit reached", a.name)
}

// definitions builds the tool declarations for this persona's roster.
func (a *ModelAdapter) definitions() []model.ToolDefinition {
	defs := make([]model.ToolDefinition, 0, len(a.order))
	for _, name := range a.order {
		defs = append(defs, tool.Definition(a.tools[name]))
	}
	return defs
}
