package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/tourmesh/logging"
	"github.com/hupe1980/tourmesh/orchestrator"
)

// TurnEngine is the advisor surface the runner evaluates. It is satisfied by
// the orchestrator and by the root advisor facade.
type TurnEngine interface {
	Turn(ctx context.Context, userID, utterance string) (*orchestrator.Reply, error)
}

// Result captures the outcome of one golden scenario.
type Result struct {
	Scenario Scenario      `json:"scenario"`
	Reply    string        `json:"reply"`
	Score    *Score        `json:"score,omitempty"`
	Err      string        `json:"error,omitempty"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration"`
}

// Summary aggregates a full suite run.
type Summary struct {
	Timestamp    time.Time `json:"timestamp"`
	TotalTests   int       `json:"total_tests"`
	Passed       int       `json:"passed"`
	Failed       int       `json:"failed"`
	AverageScore float64   `json:"average_score"`
	Results      []Result  `json:"results"`
}

// PassRate returns the fraction of scenarios that passed, in [0, 1].
func (s *Summary) PassRate() float64 {
	if s.TotalTests == 0 {
		return 0
	}

	return float64(s.Passed) / float64(s.TotalTests)
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// Scenarios to run. Defaults to GoldenScenarios.
	Scenarios []Scenario

	// UserIDPrefix namespaces the per-scenario user IDs so each scenario
	// starts from a fresh profile. Defaults to "eval".
	UserIDPrefix string

	// Logger for per-scenario progress. Defaults to a no-op logger.
	Logger logging.Logger
}

// Runner drives the golden suite against a turn engine and scores each reply
// with a judge.
type Runner struct {
	engine    TurnEngine
	judge     Judge
	scenarios []Scenario
	prefix    string
	logger    logging.Logger
}

// NewRunner creates a runner for the given engine and judge.
func NewRunner(engine TurnEngine, judge Judge, optFns ...func(o *RunnerOptions)) *Runner {
	opts := RunnerOptions{
		Scenarios:    GoldenScenarios(),
		UserIDPrefix: "eval",
		Logger:       logging.NewNoOpLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		engine:    engine,
		judge:     judge,
		scenarios: opts.Scenarios,
		prefix:    opts.UserIDPrefix,
		logger:    opts.Logger,
	}
}

// Run executes every scenario sequentially, each under its own user ID so no
// profile state leaks between cases. A scenario that errors at the engine or
// judge stage is recorded as failed; the suite keeps going.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		Timestamp:  time.Now(),
		TotalTests: len(r.scenarios),
		Results:    make([]Result, 0, len(r.scenarios)),
	}

	var scoreSum float64
	var scored int

	for i, scenario := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		r.logger.Info("evaluation.scenario.start", "id", scenario.ID, "scenario", scenario.Name, "index", i+1, "total", len(r.scenarios))

		result := r.runScenario(ctx, scenario)
		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		if result.Score != nil {
			scoreSum += result.Score.Overall
			scored++
		}
		summary.Results = append(summary.Results, result)

		r.logger.Info("evaluation.scenario.done", "id", scenario.ID, "passed", result.Passed, "duration", result.Duration)
	}

	if scored > 0 {
		summary.AverageScore = scoreSum / float64(scored)
	}

	return summary, nil
}

func (r *Runner) runScenario(ctx context.Context, scenario Scenario) Result {
	start := time.Now()
	result := Result{Scenario: scenario}

	userID := fmt.Sprintf("%s-%s", r.prefix, scenario.ID)

	reply, err := r.engine.Turn(ctx, userID, scenario.Input)
	if err != nil {
		result.Err = fmt.Sprintf("turn: %v", err)
		result.Duration = time.Since(start)
		return result
	}
	result.Reply = reply.Text

	score, err := r.judge.Evaluate(ctx, scenario, reply.Text)
	if err != nil {
		result.Err = fmt.Sprintf("judge: %v", err)
		result.Duration = time.Since(start)
		return result
	}
	result.Score = score

	// The judge's own pass flag is advisory; the minimum score bar decides.
	result.Passed = score.Overall >= scenario.MinScore
	result.Duration = time.Since(start)

	return result
}
