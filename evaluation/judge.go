package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/tourmesh/model"
)

// Score is the judge's verdict for a single scenario reply.
type Score struct {
	TestID        string   `json:"test_id"`
	Relevance     float64  `json:"relevance"`
	Safety        float64  `json:"safety"`
	Actionability float64  `json:"actionability"`
	Completeness  float64  `json:"completeness"`
	CulturalFit   float64  `json:"cultural_fit"`
	Tone          float64  `json:"tone"`
	Overall       float64  `json:"overall_score"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	Passed        bool     `json:"passed"`
	Reasoning     string   `json:"reasoning"`
}

// Judge scores an advisor reply against a golden scenario.
type Judge interface {
	Evaluate(ctx context.Context, scenario Scenario, reply string) (*Score, error)
}

// ModelJudge uses a model as an LLM judge. The rubric scores each criterion
// 1-10; replies under 4 are poor, 4-6 fair, 7-8 good, 9-10 excellent.
type ModelJudge struct {
	model model.Model
}

// NewModelJudge creates a judge backed by the given model.
func NewModelJudge(m model.Model) *ModelJudge {
	return &ModelJudge{model: m}
}

// Evaluate asks the judge model to grade the reply and parses its JSON
// verdict. The model may wrap the JSON in prose; only the outermost object
// is decoded.
func (j *ModelJudge) Evaluate(ctx context.Context, scenario Scenario, reply string) (*Score, error) {
	prompt, err := buildJudgePrompt(scenario, reply)
	if err != nil {
		return nil, err
	}

	resp, err := j.model.Generate(ctx, model.Request{
		Messages: []model.Message{{Role: model.RoleUser, Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("judge model: %w", err)
	}

	score, err := parseScore(resp.Content)
	if err != nil {
		return nil, err
	}
	if score.TestID == "" {
		score.TestID = scenario.ID
	}

	return score, nil
}

func buildJudgePrompt(scenario Scenario, reply string) (string, error) {
	behaviors, err := json.Marshal(scenario.ExpectedBehaviors)
	if err != nil {
		return "", fmt.Errorf("marshal expected behaviors: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are an expert evaluator of AI tourism agents for Lagos, Nigeria.\n\n")
	sb.WriteString("EVALUATION CRITERIA:\n")
	sb.WriteString("1. Relevance (1-10): Does response address the query directly?\n")
	sb.WriteString("2. Safety Priority (1-10): Is safety appropriately emphasized?\n")
	sb.WriteString("3. Actionability (1-10): Are recommendations specific and actionable?\n")
	sb.WriteString("4. Completeness (1-10): Does it cover main aspects without gaps?\n")
	sb.WriteString("5. Cultural Appropriateness (1-10): Respect for local culture and norms?\n")
	sb.WriteString("6. Tone (1-10): Warm, helpful, professional tone?\n\n")
	fmt.Fprintf(&sb, "TEST CASE:\n- ID: %s\n- Scenario: %s\n- User Query: %s\n- Expected Behaviors: %s\n\n", scenario.ID, scenario.Name, scenario.Input, behaviors)
	fmt.Fprintf(&sb, "AGENT RESPONSE:\n%s\n\n", reply)
	sb.WriteString("Provide:\n")
	sb.WriteString("1. Score for each criterion (1-10)\n")
	sb.WriteString("2. Overall score (1-10)\n")
	sb.WriteString("3. Key strengths (2-3 bullet points)\n")
	sb.WriteString("4. Areas for improvement (2-3 bullet points)\n")
	fmt.Fprintf(&sb, "5. Pass/Fail (based on minimum score of %.1f)\n\n", scenario.MinScore)
	sb.WriteString(`Format as JSON:
{
    "test_id": "...",
    "relevance": ...,
    "safety": ...,
    "actionability": ...,
    "completeness": ...,
    "cultural_fit": ...,
    "tone": ...,
    "overall_score": ...,
    "strengths": [...],
    "improvements": [...],
    "passed": true/false,
    "reasoning": "..."
}`)

	return sb.String(), nil
}

func parseScore(text string) (*Score, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("judge reply contains no JSON object: %q", truncate(text, 120))
	}

	var score Score
	if err := json.Unmarshal([]byte(text[start:end+1]), &score); err != nil {
		return nil, fmt.Errorf("decode judge verdict: %w", err)
	}

	return &score, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
