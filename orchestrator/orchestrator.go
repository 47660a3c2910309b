package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/tourmesh/core"
	"github.com/hupe1980/tourmesh/delegate"
	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/profile"
)

// Config defines tuning parameters for turn processing.
type Config struct {
	// TurnTimeout bounds one complete turn including all delegate and
	// tool activity. The underlying generation calls have unbounded
	// latency, so every turn runs under a deadline.
	TurnTimeout time.Duration

	// MaxConcurrentDispatch limits how many delegates run in parallel
	// within a single turn. Set to 0 for no explicit limit.
	MaxConcurrentDispatch int
}

// DefaultConfig provides production-ready defaults.
var DefaultConfig = Config{
	TurnTimeout:           2 * time.Minute,
	MaxConcurrentDispatch: 3,
}

// Options configures an Orchestrator using the functional options
// pattern. All dependencies have in-memory defaults so a bare New()
// works for development and tests.
type Options struct {
	// Config contains operational parameters for turn processing.
	Config Config

	// Store holds tourist profiles. Defaults to the in-memory store.
	Store core.ProfileStore

	// Router decides which delegates see a turn. Defaults to the
	// deterministic keyword router.
	Router Router

	// EmergencyInfo is appended to safety-relevant replies.
	EmergencyInfo string

	// Logger defaults to NoOp so there are no logging side effects
	// unless requested.
	Logger logging.Logger
}

// Reply is the consolidated outcome of one turn.
type Reply struct {
	TurnID        string                  `json:"turn_id"`
	Text          string                  `json:"text"`
	Contributions []delegate.Contribution `json:"contributions,omitempty"`
	Failed        []string                `json:"failed,omitempty"`
}

// Partial reports whether at least one dispatched delegate failed.
func (r *Reply) Partial() bool { return len(r.Failed) > 0 }

// Orchestrator coordinates delegates over a shared profile store. It is
// safe for concurrent use across users; turns for the same user are
// expected to be serialized by the conversation driver.
type Orchestrator struct {
	config        Config
	store         core.ProfileStore
	router        Router
	emergencyInfo string
	logger        *logging.AdvisorLogger

	mu       sync.RWMutex
	adapters map[string]delegate.Adapter
	order    []string
}

// New creates an Orchestrator with sensible defaults and optional
// configuration.
func New(optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Config: DefaultConfig,
		EmergencyInfo: "Emergency contacts: Police 999, Ambulance 112, " +
			"Tourism hotline +234 700 000 0000.",
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Store == nil {
		opts.Store = profile.NewInMemoryStore()
	}
	if opts.Router == nil {
		opts.Router = NewKeywordRouter()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoOpLogger()
	}
	if opts.Config.TurnTimeout <= 0 {
		opts.Config.TurnTimeout = DefaultConfig.TurnTimeout
	}

	return &Orchestrator{
		config:        opts.Config,
		store:         opts.Store,
		router:        opts.Router,
		emergencyInfo: opts.EmergencyInfo,
		logger:        logging.NewAdvisorLogger(opts.Logger).WithComponent("orchestrator"),
		adapters:      make(map[string]delegate.Adapter),
	}
}

// WithConfig overrides the turn processing configuration.
func WithConfig(cfg Config) func(o *Options) {
	return func(o *Options) { o.Config = cfg }
}

// WithStore sets the profile store.
func WithStore(store core.ProfileStore) func(o *Options) {
	return func(o *Options) { o.Store = store }
}

// WithRouter sets the routing strategy.
func WithRouter(router Router) func(o *Options) {
	return func(o *Options) { o.Router = router }
}

// WithLogger sets the structured logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// Register adds a delegate adapter. Registration order fixes the merge
// order of contributions; re-registering a name replaces the adapter
// without changing its position.
func (o *Orchestrator) Register(a delegate.Adapter) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, exists := o.adapters[a.Name()]; !exists {
		o.order = append(o.order, a.Name())
	}
	o.adapters[a.Name()] = a
}

// Adapters returns the registered delegate names in merge order.
func (o *Orchestrator) Adapters() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

// Store exposes the profile store backing this orchestrator.
func (o *Orchestrator) Store() core.ProfileStore { return o.store }

// Turn processes one user utterance end to end: preference inference,
// routing, concurrent delegate dispatch, deterministic merge and the
// single chat_history append pair (user record, then reply record).
func (o *Orchestrator) Turn(ctx context.Context, userID, utterance string) (*Reply, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, fmt.Errorf("empty utterance")
	}
	if userID == "" {
		return nil, fmt.Errorf("missing user id")
	}

	o.mu.RLock()
	order := make([]string, len(o.order))
	copy(order, o.order)
	adapters := make(map[string]delegate.Adapter, len(o.adapters))
	for name, a := range o.adapters {
		adapters[name] = a
	}
	o.mu.RUnlock()

	if len(order) == 0 {
		return nil, fmt.Errorf("no delegates registered")
	}

	turnID := core.NewID()
	logger := o.logger.WithUser(userID).WithTurn(turnID)
	start := time.Now()

	// Preference hints land before the snapshot so delegates see them.
	if delta := InferPreferences(utterance); !delta.IsZero() {
		if err := o.store.UpdatePreferences(userID, delta); err != nil {
			return nil, fmt.Errorf("update preferences: %w", err)
		}
		logger.Debug("turn.preferences.inferred", "budget", delta.Budget != nil, "interests", len(delta.Interests))
	}

	projection, err := o.store.Snapshot(userID)
	if err != nil {
		return nil, fmt.Errorf("profile snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.TurnTimeout)
	defer cancel()

	turnCtx := core.NewTurnContext(ctx, userID, turnID, utterance, projection, o.store, logger)

	routed, err := o.router.Route(ctx, utterance, order)
	if err != nil {
		return nil, fmt.Errorf("route turn: %w", err)
	}
	routed = intersectInOrder(order, routed)
	if len(routed) == 0 {
		routed = order[:1]
	}
	logger.Info("turn.routed", "delegates", strings.Join(routed, ","))

	contributions, failed := o.dispatch(turnCtx, adapters, routed)

	reply := &Reply{
		TurnID:        turnID,
		Contributions: contributions,
		Failed:        failed,
	}
	reply.Text = o.compose(projection, routed, contributions, failed)

	// The exactly-once memory append pair happens only after the reply
	// is fully composed: user record first, then the reply record.
	if err := o.store.AppendMemory(userID, core.CategoryChatHistory, core.NewChatRecord("user", utterance)); err != nil {
		return nil, fmt.Errorf("append chat history: %w", err)
	}
	if err := o.store.AppendMemory(userID, core.CategoryChatHistory, core.NewChatRecord("agent", reply.Text)); err != nil {
		return nil, fmt.Errorf("append chat history: %w", err)
	}

	logger.LogTurn(turnID, time.Since(start), nil)

	return reply, nil
}

// dispatch invokes the routed delegates, in parallel up to the
// configured limit, and collects results back into route order so the
// merge stays deterministic. A failed delegate becomes an absent
// contribution, never a turn failure.
func (o *Orchestrator) dispatch(
	turnCtx *core.TurnContext,
	adapters map[string]delegate.Adapter,
	routed []string,
) ([]delegate.Contribution, []string) {
	n := len(routed)

	results := make([]delegate.Contribution, n)
	errs := make([]error, n)

	maxPar := o.config.MaxConcurrentDispatch
	if maxPar <= 0 || maxPar > n {
		maxPar = n
	}
	sem := make(chan struct{}, maxPar)

	var wg sync.WaitGroup
	for i, name := range routed {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, adapter delegate.Adapter) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := turnCtx.Err(); err != nil {
				errs[idx] = err
				return
			}

			func() { // panic safety: a delegate must not kill the turn
				defer func() {
					if r := recover(); r != nil {
						errs[idx] = fmt.Errorf("delegate panic: %v", r)
						turnCtx.LogError("turn.delegate.panic", "delegate", adapter.Name(), "recover", r)
					}
				}()
				results[idx], errs[idx] = adapter.Invoke(turnCtx, turnCtx.Utterance)
			}()
		}(i, adapters[name])
	}
	wg.Wait()

	var contributions []delegate.Contribution
	var failed []string
	for i, name := range routed {
		if errs[i] != nil {
			turnCtx.LogError("turn.delegate.failed", "delegate", name, "error", errs[i].Error())
			failed = append(failed, name)
			continue
		}
		if strings.TrimSpace(results[i].Text) == "" {
			// Unparsable or empty output counts as absent.
			failed = append(failed, name)
			continue
		}
		contributions = append(contributions, results[i])
	}

	return contributions, failed
}

// intersectInOrder filters routed names down to registered ones while
// preserving registration order.
func intersectInOrder(order, routed []string) []string {
	routedSet := make(map[string]bool, len(routed))
	for _, name := range routed {
		routedSet[name] = true
	}

	var out []string
	for _, name := range order {
		if routedSet[name] {
			out = append(out, name)
		}
	}
	return out
}
