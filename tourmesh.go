// Package tourmesh provides a high-level façade over the orchestrator and
// service abstractions (profiles, delegates, capability tools & logging)
// enabling rapid construction of a Lagos trip-planning advisor. Most
// applications interact with this package by:
//  1. Creating an Advisor via New() (optionally overriding default in-memory services)
//  2. Registering one or more delegate adapters (or using NewDefaultAdvisor)
//  3. Processing traveler turns via Turn()
//
// The façade delegates coordination to orchestrator.Orchestrator while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// profile store and a structured logger.
package tourmesh

import (
	"context"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/delegate"
	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/model"
	"github.com/hupe1980/tourmesh/orchestrator"
	"github.com/hupe1980/tourmesh/tool"
)

// Options configures the Advisor instance.
type Options struct {
	// Orchestrator configuration (turn timeout, dispatch concurrency)
	OrchestratorConfig orchestrator.Config

	// Store holds tourist profiles (defaults to the in-memory store if
	// not provided).
	Store core.ProfileStore

	// Router decides which delegates handle a turn (defaults to the
	// deterministic keyword router).
	Router orchestrator.Router

	// Dataset backs the capability tools (defaults to the embedded
	// Lagos dataset).
	Dataset *tool.Dataset

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Advisor is the high-level façade aggregating the orchestrator and its
// services.
type Advisor struct {
	opts Options
	orch *orchestrator.Orchestrator
}

// New creates a new Advisor instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Advisor {
	opts := Options{
		OrchestratorConfig: orchestrator.DefaultConfig,
		Dataset:            tool.DefaultDataset(),
		Logger:             logging.NewNoOpLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	orch := orchestrator.New(func(o *orchestrator.Options) {
		o.Config = opts.OrchestratorConfig
		o.Store = opts.Store
		o.Router = opts.Router
		o.Logger = opts.Logger
	})

	return &Advisor{opts: opts, orch: orch}
}

// NewDefaultAdvisor creates an Advisor with the standard delegate lineup
// (tourism advisor, safety guide, booking assistant) wired to the given
// model and the configured dataset.
func NewDefaultAdvisor(m model.Model, optFns ...func(o *Options)) *Advisor {
	advisor := New(optFns...)
	for _, a := range delegate.DefaultAdapters(m, advisor.opts.Dataset) {
		advisor.RegisterAdapter(a)
	}

	return advisor
}

// RegisterAdapter adds a delegate adapter to the underlying orchestrator.
// Registration order determines reply merge order.
func (a *Advisor) RegisterAdapter(adapter delegate.Adapter) { a.orch.Register(adapter) }

// Adapters returns registered delegate names in registration order.
func (a *Advisor) Adapters() []string { return a.orch.Adapters() }

// Store exposes the profile store, e.g. for session clearing.
func (a *Advisor) Store() core.ProfileStore { return a.orch.Store() }

// Dataset exposes the capability dataset the default adapters use.
func (a *Advisor) Dataset() *tool.Dataset { return a.opts.Dataset }

// Turn processes one traveler utterance and returns the consolidated reply.
func (a *Advisor) Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error) {
	return a.orch.Turn(ctx, userID, utterance)
}
