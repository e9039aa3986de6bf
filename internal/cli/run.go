package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

// runCommand creates the run command for the full pipeline.
func (c *CLI) runCommand() *cobra.Command {
	var (
		output    string
		objective string
		skipCheck bool
		noCache   bool
		refresh   bool
	)

	cmd := &cobra.Command{
		Use:   "run [problem.txt]",
		Short: "Encode, solve, and check a permutation pair in one step",
		Long: `Encode, solve, and check a permutation pair in one step.

The problem file holds one permutation per line with an optional objective
expression on a third line. Use "-" to read from stdin.

With --output BASE the pipeline writes BASE.lp.json, BASE.solution.json,
and BASE.report.json. Without it, a summary is printed and the solver
result goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, fileObjective, err := readProblem(args[0])
			if err != nil {
				return err
			}
			if objective == "" {
				objective = fileObjective
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts := pipeline.Options{
				P1:        p1,
				P2:        p2,
				Objective: objective,
				SkipCheck: skipCheck,
				Refresh:   refresh,
			}

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Encoding and solving n=%d system...", len(p1)))
			spinner.Start()

			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Pipeline failed")
				return err
			}
			spinner.Stop()

			printRunSummary(result)

			if output != "" {
				return writeRunArtifacts(result, output)
			}
			if result.Solution != nil {
				return result.Solution.WriteJSON(os.Stdout)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "base path for lp/solution/report files")
	cmd.Flags().StringVar(&objective, "objective", "", "objective expression (overrides the problem file)")
	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "skip the feasibility check stage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")

	return cmd
}

// printRunSummary prints the outcome of a full pipeline run.
func printRunSummary(result *pipeline.Result) {
	printStats(result.Stats.VariableCount, result.Stats.ConstraintCount, result.CacheInfo.EncodeHit)

	if result.Solution == nil {
		return
	}
	if !result.Solution.Success {
		printWarning("%s", result.Solution.Message)
		return
	}

	if result.Solution.ObjectiveValue != nil {
		printKeyValue("objective", strconv.FormatFloat(*result.Solution.ObjectiveValue, 'g', -1, 64))
	}
	if result.Report != nil {
		if result.Report.AllSatisfied {
			printSuccess("Solution verified against all %d constraints", result.Stats.ConstraintCount)
		} else {
			printError("Solution violates %d constraint(s)", len(result.Report.Violations))
		}
	}
}

// writeRunArtifacts writes the pipeline outputs next to the given base path.
func writeRunArtifacts(result *pipeline.Result, base string) error {
	base = strings.TrimSuffix(base, ".json")

	write := func(suffix string, v any) error {
		path := base + suffix
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		return nil
	}

	if err := write(".lp.json", result.Document); err != nil {
		return err
	}
	if result.Solution != nil {
		if err := write(".solution.json", result.Solution); err != nil {
			return err
		}
	}
	if result.Report != nil {
		if err := write(".report.json", result.Report); err != nil {
			return err
		}
	}
	return nil
}
