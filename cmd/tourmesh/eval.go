package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tourmesh"
	"github.com/hupe1980/tourmesh/evaluation"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the golden scenario suite with an LLM judge",
	Long: `Run the golden scenario suite with an LLM judge.

Each of the 15 golden scenarios is sent to a fresh advisor session and
the reply is scored across relevance, safety, actionability,
completeness, cultural fit and tone. The same model provider answers
and judges unless you point --provider at a stronger judge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		m, err := newModel(cmd)
		if err != nil {
			return err
		}

		advisor := tourmesh.NewDefaultAdvisor(m, func(o *tourmesh.Options) {
			o.Logger = logger
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		runner := evaluation.NewRunner(advisor, evaluation.NewModelJudge(m), func(o *evaluation.RunnerOptions) {
			o.Logger = logger
		})

		summary, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		printSummary(summary)

		if output != "" {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing results: %w", err)
			}
			fmt.Printf("Results saved to %s\n", output)
		}

		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", summary.Failed, summary.TotalTests)
		}
		return nil
	},
}

func printSummary(summary *evaluation.Summary) {
	for _, result := range summary.Results {
		status := "FAIL"
		if result.Passed {
			status = "PASS"
		}
		score := 0.0
		if result.Score != nil {
			score = result.Score.Overall
		}
		fmt.Printf("%s  %-40s %.1f/10  %s\n", result.Scenario.ID, result.Scenario.Name, score, status)
		if result.Err != "" {
			fmt.Printf("        error: %s\n", result.Err)
		}
	}

	fmt.Println()
	fmt.Printf("Total: %d  Passed: %d  Failed: %d  Pass rate: %.1f%%  Average score: %.1f/10\n",
		summary.TotalTests, summary.Passed, summary.Failed, summary.PassRate()*100, summary.AverageScore)
}

func init() {
	evalCmd.Flags().String("output", "", "write the full results as JSON to this file")
}
